package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"suomicast/internal/api/server"
	"suomicast/internal/app"
	"suomicast/internal/config"
)

var (
	host        string
	port        string
	environment string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (default from SUOMICAST_HOST)")
	Cmd.Flags().StringVar(&port, "port", "", "listen port (default from SUOMICAST_PORT)")
	Cmd.Flags().StringVarP(&environment, "env", "e", "production", "environment: production or development")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the podcast API server",
	Long: `Start the podcast API server

- Presents the freshest cached episode immediately and refreshes in the background
- Serves episode audio, transcript synchronization and segment translation
- Publishes refresh events over a websocket at /ws/events`,
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

		if host != "" {
			application.Settings.Host = host
		}
		if port != "" {
			application.Settings.Port = port
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Present a cached episode right away; generation reconciles in the
		// background.
		application.Controller.Start(ctx)

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		srv := server.NewServer(server.Config{
			Host:         application.Settings.Host,
			Port:         application.Settings.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
			Environment:  environment,
		}, application.Controller, application.Player, application.Translator, logger)

		if err := srv.Start(); err != nil {
			return err
		}

		<-ctx.Done()
		log.Println("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
