package table

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
	"github.com/ltelabs/handover-report/internal/format"
)

// CaptureFormatter formats the pcap captures section.
type CaptureFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewCaptureFormatter creates a new pcap captures formatter.
func NewCaptureFormatter(log logrus.FieldLogger, renderer *Renderer) *CaptureFormatter {
	return &CaptureFormatter{
		log:      log.WithField("component", "table.capture_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the captures result into a formatted table string.
func (f *CaptureFormatter) Format(res analysis.CaptureResult) string {
	header := "\n" + f.colors.Header("▸ Packet Captures") + "\n\n"

	if res.Files == 0 {
		return header + f.colors.Muted("no pcap files found") + "\n"
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Total Files", fmt.Sprintf("%d", res.Files)},
			{"Non-Empty Files", f.colors.FormatCount(res.NonEmpty)},
			{"Total Size", format.Bytes(res.TotalSizeByte)},
		}
	)

	return header + f.renderer.RenderToString(headers, rows)
}
