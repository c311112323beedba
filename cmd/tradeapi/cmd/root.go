// Package cmd holds the tradeapi CLI commands
package cmd

import (
	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/spf13/cobra"
)

const (
	serviceName    = "tradeapi"
	serviceVersion = "1.0.0"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tradeapi",
	Short: "Trade data list API",
	Long: `Trade data list API

Usage:
    go run ./cmd/tradeapi [command]

Commands:
    serve         - HTTP API server
    healthcheck   - Probe a running server's readiness endpoint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthcheckCmd)
}

// initConfig loads the env file given by --config, or .env when present
func initConfig() error {
	loaded, err := config.LoadFile(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}
	cfg = loaded
	return nil
}
