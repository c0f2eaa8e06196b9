package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"suomicast/cmd/suomicast/cmd/backup"
	"suomicast/cmd/suomicast/cmd/export"
	"suomicast/cmd/suomicast/cmd/generate"
	"suomicast/cmd/suomicast/cmd/serve"
	"suomicast/cmd/suomicast/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "suomicast",
	Short: "A daily Finnish-language news podcast, generated and served from one binary",
	Long: `A daily Finnish-language news podcast, generated and served from one binary.
- Episodes are generated with Gemini (script and multi-speaker speech) once per content day
- Generated audio and transcripts are cached in sqlite or postgres, keyed by date
- The serve command exposes the player API: episodes, transcript sync and segment translation.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(backup.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
