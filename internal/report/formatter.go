// Package report writes the analysis sections to a writer in a fixed,
// deterministic order. Each section is independent so a missing data file
// never blocks the ones after it.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
	"github.com/ltelabs/handover-report/internal/metrics"
	"github.com/ltelabs/handover-report/internal/report/table"
)

// Formatter provides clean, human-friendly report output
type Formatter interface {
	PrintHeader(generatedAt time.Time)
	PrintOverview(res analysis.OverviewResult, scan analysis.DirScan)
	PrintMeasurements(res analysis.MeasurementsResult)
	PrintRRC(res analysis.RRCResult)
	PrintSignal(res analysis.SignalResult)
	PrintThroughput(res analysis.ThroughputResult)
	PrintPerUE(res analysis.PerUEResult)
	PrintCaptures(res analysis.CaptureResult)
	PrintSummary(summary metrics.SummaryMetric)
	PrintReport(r *analysis.Report, summary metrics.SummaryMetric)
}

type formatter struct {
	writer io.Writer
	colors *table.ColorHelper

	overview     *table.OverviewFormatter
	measurements *table.MeasurementsFormatter
	rrc          *table.RRCFormatter
	signal       *table.SignalFormatter
	throughput   *table.ThroughputFormatter
	perUE        *table.PerUEFormatter
	captures     *table.CaptureFormatter
	summary      *table.SummaryFormatter
}

// NewFormatter creates a new report formatter writing to w.
func NewFormatter(log logrus.FieldLogger, w io.Writer) Formatter {
	renderer := table.NewRenderer(log)

	return &formatter{
		writer:       w,
		colors:       table.NewColorHelper(),
		overview:     table.NewOverviewFormatter(log, renderer),
		measurements: table.NewMeasurementsFormatter(log, renderer),
		rrc:          table.NewRRCFormatter(log, renderer),
		signal:       table.NewSignalFormatter(log, renderer),
		throughput:   table.NewThroughputFormatter(log, renderer),
		perUE:        table.NewPerUEFormatter(log, renderer),
		captures:     table.NewCaptureFormatter(log, renderer),
		summary:      table.NewSummaryFormatter(log, renderer),
	}
}

// PrintHeader prints the report banner with the generation timestamp.
func (f *formatter) PrintHeader(generatedAt time.Time) {
	fmt.Fprintln(f.writer, f.colors.Bold("=== Handover Mobility Analysis ==="))
	fmt.Fprintf(f.writer, "Generated on: %s\n", generatedAt.Format(time.RFC1123))
}

func (f *formatter) PrintOverview(res analysis.OverviewResult, scan analysis.DirScan) {
	fmt.Fprint(f.writer, f.overview.Format(res, scan))
}

func (f *formatter) PrintMeasurements(res analysis.MeasurementsResult) {
	fmt.Fprint(f.writer, f.measurements.Format(res))
}

func (f *formatter) PrintRRC(res analysis.RRCResult) {
	fmt.Fprint(f.writer, f.rrc.Format(res))
}

func (f *formatter) PrintSignal(res analysis.SignalResult) {
	fmt.Fprint(f.writer, f.signal.Format(res))
}

func (f *formatter) PrintThroughput(res analysis.ThroughputResult) {
	fmt.Fprint(f.writer, f.throughput.Format(res))
}

func (f *formatter) PrintPerUE(res analysis.PerUEResult) {
	fmt.Fprint(f.writer, f.perUE.Format(res))
}

func (f *formatter) PrintCaptures(res analysis.CaptureResult) {
	fmt.Fprint(f.writer, f.captures.Format(res))
}

func (f *formatter) PrintSummary(summary metrics.SummaryMetric) {
	fmt.Fprint(f.writer, f.summary.Format(summary))
}

// PrintReport writes every section in fixed order followed by the
// closing summary.
func (f *formatter) PrintReport(r *analysis.Report, summary metrics.SummaryMetric) {
	f.PrintHeader(time.Now())
	f.PrintOverview(r.Overview, r.Scan)
	f.PrintMeasurements(r.Measurements)
	f.PrintRRC(r.RRC)
	f.PrintSignal(r.Signal)
	f.PrintThroughput(r.Throughput)
	f.PrintPerUE(r.PerUE)
	f.PrintCaptures(r.Scan.Captures)
	f.PrintSummary(summary)
}

// Compile-time interface compliance check
var _ Formatter = (*formatter)(nil)
