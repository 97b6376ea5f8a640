// Package cmd contains CLI command definitions
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	flagDataDir string
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "handover-report",
		Short: "Handover Report - LTE simulation results analyzer",
		Long: `Handover Report summarizes the CSV output of an LTE handover simulation:
measurement reports, RRC events, signal quality, throughput and packet captures.

Run without arguments to launch interactive mode, or use subcommands for direct reports.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flagVerbose {
				Logger.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInteractive()
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Initialize the shared logger
	Logger = logrus.New()

	// Set log level from environment variable
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // Default to info
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Can't use Logger here since it might not be set up yet
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	rootCmd.PersistentFlags().StringVar(&flagDataDir, "dir", "", "data directory holding the simulation output (overrides DATA_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
