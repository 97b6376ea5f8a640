package table

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
)

// MeasurementsFormatter formats the measurement-reports section.
type MeasurementsFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewMeasurementsFormatter creates a new measurement-reports formatter.
func NewMeasurementsFormatter(log logrus.FieldLogger, renderer *Renderer) *MeasurementsFormatter {
	return &MeasurementsFormatter{
		log:      log.WithField("component", "table.measurements_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the measurements result into a formatted table string.
func (f *MeasurementsFormatter) Format(res analysis.MeasurementsResult) string {
	header := "\n" + f.colors.Header("▸ Measurement Reports") + "\n\n"

	if !res.Available {
		return header + f.colors.Muted("measurement reports file not found, section skipped") + "\n"
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Total Reports", f.colors.Bold(fmt.Sprintf("%d", res.TotalReports))},
			{"A3 Events (handover triggers)", f.colors.FormatCount(res.A3Events)},
			{"Periodic Reports", f.colors.FormatCount(res.PeriodicEvents)},
			{"Unique UEs (IMSIs)", formatIDList(res.IMSIs)},
			{"Unique eNBs (Cell IDs)", formatIDList(res.CellIDs)},
		}
	)

	var builder strings.Builder
	builder.WriteString(header)
	builder.WriteString(f.renderer.RenderToString(headers, rows))

	if !res.Rsrp.Empty() {
		builder.WriteString("\n")
		builder.WriteString(signalSummaryTable(f.renderer, "Serving", res.Rsrp, res.Rsrq))
	}

	return builder.String()
}

// formatIDList renders "count - id, id, ..." like the analysis overview.
func formatIDList(ids []string) string {
	if len(ids) == 0 {
		return "0"
	}
	return fmt.Sprintf("%d - %s", len(ids), strings.Join(ids, ", "))
}
