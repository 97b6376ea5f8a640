package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis report",
	Long: `Run every report section in order: data files overview, measurement
reports, RRC events, signal quality, throughput, per-UE breakdown, packet
captures and the closing load summary.

Missing data files are reported per section and never abort the run.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runAnalyze()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	rep := s.analyzer.Analyze(s.scan)
	s.formatter.PrintReport(rep, s.collector.GetSummary())

	return nil
}
