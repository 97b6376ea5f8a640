package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var signalCmd = &cobra.Command{
	Use:   "signal",
	Short: "Analyze RSRP/RSRQ signal quality measurements",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSignal()
	},
}

func init() {
	rootCmd.AddCommand(signalCmd)
}

func runSignal() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	s.formatter.PrintSignal(s.analyzer.Signal())

	return nil
}
