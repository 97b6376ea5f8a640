package table

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
	"github.com/ltelabs/handover-report/internal/format"
)

// OverviewFormatter formats the data-files overview as a table.
type OverviewFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewOverviewFormatter creates a new overview table formatter.
func NewOverviewFormatter(log logrus.FieldLogger, renderer *Renderer) *OverviewFormatter {
	return &OverviewFormatter{
		log:      log.WithField("component", "table.overview_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the overview result into a formatted table string.
func (f *OverviewFormatter) Format(res analysis.OverviewResult, scan analysis.DirScan) string {
	var (
		headers = []string{"Data File", "Description", "Records", "Size"}
		rows    = make([][]string, 0, len(res.Files))
	)

	for _, file := range res.Files {
		if file.Missing {
			rows = append(rows, []string{
				file.Name,
				file.Description,
				f.colors.Muted("file not found"),
				f.colors.Muted("-"),
			})
			continue
		}

		rows = append(rows, []string{
			file.Name,
			file.Description,
			f.colors.FormatCount(file.Records),
			format.Bytes(file.SizeBytes),
		})
	}

	var builder strings.Builder

	builder.WriteString("\n" + f.colors.Header("▸ Data Files Overview") + "\n\n")
	builder.WriteString(f.renderer.RenderToString(headers, rows))
	builder.WriteString(fmt.Sprintf("\nFound %d CSV files and %d pcap files in the data directory\n",
		scan.CSVFiles, scan.Captures.Files))
	builder.WriteString(fmt.Sprintf("Total data records: %s\n",
		f.colors.Bold(fmt.Sprintf("%d", res.TotalRecords))))

	if res.HasDuration {
		builder.WriteString(fmt.Sprintf("Simulation duration: %s\n",
			f.colors.Bold(format.Seconds(res.SimulationDuration))))
	}

	return builder.String()
}
