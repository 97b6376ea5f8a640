package table

import (
	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
)

// SignalFormatter formats the RSRP/RSRQ signal-quality section.
type SignalFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewSignalFormatter creates a new signal-quality formatter.
func NewSignalFormatter(log logrus.FieldLogger, renderer *Renderer) *SignalFormatter {
	return &SignalFormatter{
		log:      log.WithField("component", "table.signal_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the signal result into a formatted table string.
func (f *SignalFormatter) Format(res analysis.SignalResult) string {
	header := "\n" + f.colors.Header("▸ Signal Quality (RSRP/RSRQ)") + "\n\n"

	if !res.Available {
		return header + f.colors.Muted("signal measurements file not found, section skipped") + "\n"
	}

	if res.Rsrp.Empty() {
		return header + f.colors.Muted("no signal samples recorded") + "\n"
	}

	return header + signalSummaryTable(f.renderer, "Signal", res.Rsrp, res.Rsrq)
}
