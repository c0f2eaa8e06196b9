package generate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"suomicast/internal/app"
	appgenerate "suomicast/internal/app/generate"
	"suomicast/internal/config"
)

var (
	days       int
	force      bool
	progress   bool
	timeoutSec int
	retries    int
)

func init() {
	Cmd.Flags().IntVarP(&days, "days", "d", 1, "how many content days to generate, counting back from today")
	Cmd.Flags().BoolVarP(&force, "force", "f", false, "regenerate days that are already stored")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress display even without a TTY")
	Cmd.Flags().IntVar(&timeoutSec, "timeout", int(config.DefaultGenerationTimeout/time.Second), "per-day generation timeout in seconds")
	Cmd.Flags().IntVar(&retries, "retries", config.DefaultRetries, "retries per day on generation failure")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store episodes ahead of time",
	Long: `Generate and store episodes ahead of time

- Produces the script and multi-speaker audio for each content day
- Stores the result keyed by date so the server answers from cache
- Days whose generation fails or yields empty audio are skipped, not stored`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := time.Duration(timeoutSec) * time.Second
		if err := config.ValidateTimeout(timeout, "generation"); err != nil {
			return err
		}
		if err := config.ValidateRetries(retries, "generation"); err != nil {
			return err
		}

		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}
		if err := config.RequireGeminiKey(apiKeys); err != nil {
			return err
		}

		application, err := app.InitializeApplication(apiKeys)
		if err != nil {
			return err
		}
		defer application.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		backfiller := appgenerate.NewBackfiller(application.Provider, application.DAO, application.Logger).
			WithTimeout(timeout).
			WithRetryPolicy(retries, config.DefaultRetryDelayMs*time.Millisecond)
		result, err := backfiller.Run(ctx, days, force, appgenerate.ProgressConfig{
			Enabled: appgenerate.ShouldShowProgress(progress),
		})
		if err != nil {
			return err
		}

		fmt.Printf("generation finished: %d generated, %d skipped, %d failed\n",
			result.Generated, result.Skipped, result.Failed)
		return nil
	},
}
