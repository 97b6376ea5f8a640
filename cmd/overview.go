package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the data files overview and packet capture summary",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runOverview()
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	s.formatter.PrintHeader(time.Now())
	s.formatter.PrintOverview(s.analyzer.Overview(), s.scan)
	s.formatter.PrintCaptures(s.scan.Captures)

	return nil
}
