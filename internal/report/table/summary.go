package table

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/format"
	"github.com/ltelabs/handover-report/internal/metrics"
)

// SummaryFormatter formats the closing load summary as a table.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer *Renderer) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "table.summary_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the load summary into a formatted table string.
func (f *SummaryFormatter) Format(summary metrics.SummaryMetric) string {
	var loadRate float64
	if summary.TotalFiles > 0 {
		loadRate = float64(summary.LoadedFiles) / float64(summary.TotalFiles) * 100.0
	}

	loadedValue := fmt.Sprintf("%d/%d (%s)",
		summary.LoadedFiles, summary.TotalFiles, f.colors.FormatPercentage(loadRate))

	missingValue := f.colors.Success("0")
	if summary.MissingFiles > 0 {
		missingValue = f.colors.Warning(fmt.Sprintf("%d", summary.MissingFiles))
	}

	skippedValue := f.colors.Success("0")
	if summary.SkippedRows > 0 {
		skippedValue = f.colors.Warning(fmt.Sprintf("%d", summary.SkippedRows))
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Files Loaded", loadedValue},
			{"Files Missing", missingValue},
			{"Total Records", f.colors.Bold(fmt.Sprintf("%d", summary.TotalRecords))},
			{"Malformed Rows Skipped", skippedValue},
			{"Data Loaded", format.Bytes(summary.TotalDataSize)},
			{"Elapsed", format.Duration(summary.TotalDuration)},
		}
	)

	return "\n" + f.colors.Header("▸ Summary") + "\n\n" + f.renderer.RenderToString(headers, rows)
}
