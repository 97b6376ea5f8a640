package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltelabs/handover-report/internal/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches the interactive menu for browsing report sections.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive() error {
	fmt.Println("Handover Report - Interactive Mode")
	fmt.Println("==================================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Full Report",
				Description: "Run every analysis section",
				Action:      pausing(runAnalyze),
			},
			{
				Name:        "Overview",
				Description: "Data files overview and packet captures",
				Action:      pausing(runOverview),
			},
			{
				Name:        "Measurements",
				Description: "Measurement reports and per-UE breakdown",
				Action:      pausing(runMeasurements),
			},
			{
				Name:        "RRC Events",
				Description: "Connection and handover events",
				Action:      pausing(runRRC),
			},
			{
				Name:        "Signal Quality",
				Description: "RSRP/RSRQ statistics",
				Action:      pausing(runSignal),
			},
			{
				Name:        "Throughput",
				Description: "Per-flow throughput, delay and packet loss",
				Action:      pausing(runThroughput),
			},
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action:      pausing(showConfig),
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return nil
			}
			return err
		}

		fmt.Println()
	}
}

// pausing runs an action, prints its error instead of propagating it so
// the menu loop survives, and waits for Enter.
func pausing(action func() error) func() error {
	return func() error {
		if err := action(); err != nil {
			fmt.Printf("\nError: %v\n", err)
		}
		interactive.PauseForEnter()
		return nil
	}
}
