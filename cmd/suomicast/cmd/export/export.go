package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"suomicast/internal/app"
	appexport "suomicast/internal/app/export"
	"suomicast/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the episode archive to excel",
	Long: `Export the episode archive to excel

- Writes one sheet of episode metadata and one sheet with the full transcripts`,
	Run: func(cmd *cobra.Command, args []string) {
		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			log.Fatal(err)
		}

		application, err := app.InitializeApplication(apiKeys)
		if err != nil {
			log.Fatal(err)
		}
		defer application.Close()

		episodes, err := application.DAO.GetAll()
		if err != nil {
			log.Fatal(err)
		}

		if err := appexport.ToExcel(episodes, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
