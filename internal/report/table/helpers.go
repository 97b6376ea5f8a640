package table

import (
	"fmt"

	"github.com/ltelabs/handover-report/internal/stats"
)

// signalSummaryTable renders RSRP/RSRQ statistics side by side.
func signalSummaryTable(r *Renderer, label string, rsrp, rsrq stats.Summary) string {
	headers := []string{label, "RSRP (dBm)", "RSRQ (dB)"}
	rows := [][]string{
		{"Samples", fmt.Sprintf("%d", rsrp.Count), fmt.Sprintf("%d", rsrq.Count)},
		{"Mean", fmt.Sprintf("%.2f", rsrp.Mean), fmt.Sprintf("%.2f", rsrq.Mean)},
		{"Min", fmt.Sprintf("%.2f", rsrp.Min), fmt.Sprintf("%.2f", rsrq.Min)},
		{"Max", fmt.Sprintf("%.2f", rsrp.Max), fmt.Sprintf("%.2f", rsrq.Max)},
		{"Std Dev", fmt.Sprintf("%.2f", rsrp.StdDev), fmt.Sprintf("%.2f", rsrq.StdDev)},
	}

	return r.RenderToString(headers, rows)
}
