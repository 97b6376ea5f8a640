package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var throughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Analyze per-flow throughput, delay and packet loss",
	Long: `Summarize the throughput analysis file. Flows with zero throughput
count as inactive and are excluded; delay values outside (0, 1000) ms are
sentinels and excluded from the delay average.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runThroughput()
	},
}

func init() {
	rootCmd.AddCommand(throughputCmd)
}

func runThroughput() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	s.formatter.PrintThroughput(s.analyzer.Throughput())

	return nil
}
