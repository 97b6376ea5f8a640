package table

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
)

// ThroughputFormatter formats the throughput/QoS section.
type ThroughputFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewThroughputFormatter creates a new throughput formatter.
func NewThroughputFormatter(log logrus.FieldLogger, renderer *Renderer) *ThroughputFormatter {
	return &ThroughputFormatter{
		log:      log.WithField("component", "table.throughput_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the throughput result into a formatted table string.
func (f *ThroughputFormatter) Format(res analysis.ThroughputResult) string {
	header := "\n" + f.colors.Header("▸ Throughput Analysis") + "\n\n"

	if !res.Available {
		return header + f.colors.Muted("throughput file not found, section skipped") + "\n"
	}

	if res.Throughput.Empty() {
		return header + fmt.Sprintf("Total samples: %d\n", res.TotalSamples) +
			f.colors.Muted("no active flows recorded") + "\n"
	}

	avgDelay := f.colors.Muted("no valid samples")
	if !res.Delay.Empty() {
		avgDelay = fmt.Sprintf("%.3f ms", res.Delay.Mean)
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Total Samples", fmt.Sprintf("%d", res.TotalSamples)},
			{"Active Samples", fmt.Sprintf("%d", res.ActiveSamples)},
			{"Active Flows", f.colors.Bold(fmt.Sprintf("%d", res.ActiveFlows))},
			{"Average Throughput", fmt.Sprintf("%.3f Mbps", res.Throughput.Mean)},
			{"Max Throughput", fmt.Sprintf("%.3f Mbps", res.Throughput.Max)},
			{"Average Delay", avgDelay},
			{"Average Packet Loss", fmt.Sprintf("%.2f%%", res.PacketLoss.Mean)},
		}
	)

	return header + f.renderer.RenderToString(headers, rows)
}
