package commands

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/content"
	"github.com/RMTN1/silicon-prairie/internal/entry"
	"github.com/RMTN1/silicon-prairie/internal/handlers"
	"github.com/RMTN1/silicon-prairie/internal/leads"
	"github.com/RMTN1/silicon-prairie/internal/logger"
	"github.com/RMTN1/silicon-prairie/internal/server"
	"github.com/RMTN1/silicon-prairie/internal/theme"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadEnv()
			fx.New(appOptions()).Run()
			return nil
		},
	}
}

// loadEnv reads .env then lets .env.local override it. Load never
// overwrites variables already set in the environment.
func loadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		modules(),
	)
}

func modules() fx.Option {
	return fx.Options(
		// Infrastructure
		logger.Module,
		config.Module,

		// Site
		content.Module,
		theme.Module,
		leads.Module,
		entry.Module,
		handlers.Module,

		server.Module,
	)
}
