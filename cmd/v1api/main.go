// Command v1api runs the V1 API server and talks to a running one.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/v1-api/internal/config"
	loggerPkg "github.com/deppfellow/v1-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "v1api",
	Short: "V1 API server and client",
	Long: `V1 API serves product search, orders, shipping quotes, users,
usage metrics and newsletter subscriptions over HTTP/JSON.

Configuration is read from V1API_* environment variables and an optional
.env file, e.g. V1API_SERVER__PORT=8080.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, clientCmd)
}

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *zerolog.Logger, *loggerPkg.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService, err := loggerPkg.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to start New Relic: %w", err)
	}

	logger := loggerPkg.NewLogger(cfg.Observability, loggerService)

	return cfg, &logger, loggerService, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
