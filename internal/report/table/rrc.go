package table

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/analysis"
)

// RRCFormatter formats the RRC events section.
type RRCFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewRRCFormatter creates a new RRC events formatter.
func NewRRCFormatter(log logrus.FieldLogger, renderer *Renderer) *RRCFormatter {
	return &RRCFormatter{
		log:      log.WithField("component", "table.rrc_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the RRC result into a formatted table string.
func (f *RRCFormatter) Format(res analysis.RRCResult) string {
	var builder strings.Builder

	builder.WriteString("\n" + f.colors.Header("▸ RRC Events") + "\n\n")

	if !res.EnbAvailable && !res.UeAvailable {
		builder.WriteString(f.colors.Muted("RRC event files not found, section skipped") + "\n")
		return builder.String()
	}

	builder.WriteString(f.eventTable("eNB RRC Events", res.EnbAvailable, res.EnbEvents))
	builder.WriteString("\n")
	builder.WriteString(f.eventTable("UE RRC Events", res.UeAvailable, res.UeEvents))

	if res.EnbAvailable {
		builder.WriteString(fmt.Sprintf("\nConnection establishments: %s\n",
			f.colors.Bold(fmt.Sprintf("%d", res.ConnEstablishments))))
		builder.WriteString(fmt.Sprintf("Handover starts: %d, successes: %d\n",
			res.HandoverStarts, res.HandoverSuccesses))

		if res.HasSuccessRate {
			builder.WriteString(fmt.Sprintf("Handover success rate: %s\n",
				f.colors.FormatPercentage(res.HandoverSuccessRate)))
		}
	}

	return builder.String()
}

func (f *RRCFormatter) eventTable(title string, available bool, events []analysis.EventCount) string {
	if !available {
		return f.colors.Muted(title+": file not found") + "\n"
	}

	if len(events) == 0 {
		return f.colors.Muted(title+": no events recorded") + "\n"
	}

	var (
		headers = []string{title, "Count"}
		rows    = make([][]string, 0, len(events))
	)

	for _, ec := range events {
		rows = append(rows, []string{ec.Event, f.colors.FormatCount(ec.Count)})
	}

	return f.renderer.RenderToString(headers, rows)
}
