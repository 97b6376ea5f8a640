package table

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
)

// PerUEFormatter formats the per-UE breakdown section.
type PerUEFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewPerUEFormatter creates a new per-UE breakdown formatter.
func NewPerUEFormatter(log logrus.FieldLogger, renderer *Renderer) *PerUEFormatter {
	return &PerUEFormatter{
		log:      log.WithField("component", "table.perue_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the per-UE result into a formatted table string.
func (f *PerUEFormatter) Format(res analysis.PerUEResult) string {
	header := "\n" + f.colors.Header("▸ Per-UE Breakdown") + "\n\n"

	if !res.Available {
		return header + f.colors.Muted("measurement reports file not found, section skipped") + "\n"
	}

	if len(res.UEs) == 0 {
		return header + f.colors.Muted("no UEs observed") + "\n"
	}

	var (
		headers = []string{"IMSI", "Reports", "A3 Events", "Avg RSRP (dBm)", "RSRP Range (dBm)"}
		rows    = make([][]string, 0, len(res.UEs))
	)

	for _, ue := range res.UEs {
		avgRsrp := f.colors.Muted("no data")
		rsrpRange := f.colors.Muted("-")

		if !ue.Rsrp.Empty() {
			avgRsrp = fmt.Sprintf("%.2f", ue.Rsrp.Mean)
			rsrpRange = fmt.Sprintf("%.2f to %.2f", ue.Rsrp.Min, ue.Rsrp.Max)
		}

		rows = append(rows, []string{
			ue.IMSI,
			fmt.Sprintf("%d", ue.Reports),
			f.colors.FormatCount(ue.A3Events),
			avgRsrp,
			rsrpRange,
		})
	}

	return header + f.renderer.RenderToString(headers, rows)
}
