package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rrcCmd = &cobra.Command{
	Use:   "rrc",
	Short: "Analyze RRC connection and handover events",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRRC()
	},
}

func init() {
	rootCmd.AddCommand(rrcCmd)
}

func runRRC() error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer s.close()

	s.formatter.PrintRRC(s.analyzer.RRC())

	return nil
}
