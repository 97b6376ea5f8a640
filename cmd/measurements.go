package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var measurementsCmd = &cobra.Command{
	Use:   "measurements",
	Short: "Analyze RRC measurement reports",
	Long: `Summarize the measurement reports file: report counts by trigger
(A3 vs periodic), unique UEs and cells, and serving RSRP/RSRQ statistics,
followed by the per-UE breakdown.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMeasurements()
	},
}

func init() {
	rootCmd.AddCommand(measurementsCmd)
}

func runMeasurements() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	s.formatter.PrintMeasurements(s.analyzer.Measurements())
	s.formatter.PrintPerUE(s.analyzer.PerUE())

	return nil
}
