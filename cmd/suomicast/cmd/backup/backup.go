package backup

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"suomicast/internal/app"
	appbackup "suomicast/internal/app/backup"
	"suomicast/internal/config"
)

// Cmd represents the backup command
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the episode archive to S3-compatible object storage",
	Long: `Copy the episode archive to S3-compatible object storage

- Uploads each stored episode's metadata and WAV audio
- Requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}

		application, err := app.InitializeApplication(apiKeys)
		if err != nil {
			return err
		}
		defer application.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		target, err := appbackup.NewMinioBackup(ctx, application.Settings, application.Logger)
		if err != nil {
			return err
		}

		uploaded, err := target.UploadAll(ctx, application.DAO)
		if err != nil {
			return err
		}

		fmt.Printf("backup finished: %d episodes uploaded\n", uploaded)
		return nil
	},
}
