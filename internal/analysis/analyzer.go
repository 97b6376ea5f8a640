// Package analysis computes descriptive statistics over a loaded dataset.
// Every section is an independent read-only fold: a missing table marks its
// section unavailable and never blocks the others.
package analysis

import (
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ltelabs/handover-report/internal/dataset"
	"github.com/ltelabs/handover-report/internal/stats"
)

// RRC event labels emitted by the simulator.
const (
	eventConnEstablished = "CONN_EST"
	eventHandoverStart   = "HO_START"
	eventHandoverEndOK   = "HO_END_OK"
)

// Measurement report trigger types.
const (
	eventA3       = "A3"
	eventPeriodic = "PERIODIC"
)

// Delay values at or beyond this bound are sentinel/invalid and excluded
// from delay averaging.
const maxValidDelayMs = 1000.0

// Analyzer computes report sections from a loaded dataset.
type Analyzer struct {
	log logrus.FieldLogger
	ds  *dataset.Dataset
}

// New creates an analyzer over a loaded dataset.
func New(log logrus.FieldLogger, ds *dataset.Dataset) *Analyzer {
	return &Analyzer{
		log: log.WithField("component", "analyzer"),
		ds:  ds,
	}
}

// Analyze runs every section in order and bundles the results.
// The directory scan is supplied by the caller (see ScanDir).
func (a *Analyzer) Analyze(scan DirScan) *Report {
	return &Report{
		Overview:     a.Overview(),
		Scan:         scan,
		Measurements: a.Measurements(),
		RRC:          a.RRC(),
		Signal:       a.Signal(),
		Throughput:   a.Throughput(),
		PerUE:        a.PerUE(),
	}
}

// Overview summarizes record counts per manifest file and derives the
// simulation duration as the max timestamp across the measurement and
// throughput tables.
func (a *Analyzer) Overview() OverviewResult {
	res := OverviewResult{}

	for _, spec := range a.ds.Manifest().Files {
		fc := FileCount{
			Description: spec.Description,
			Name:        spec.Name,
		}

		if t, ok := a.ds.Table(spec.Key); ok {
			fc.Records = t.Len()
			fc.SizeBytes = t.SizeBytes
			res.TotalRecords += t.Len()
		} else {
			fc.Missing = true
		}

		res.Files = append(res.Files, fc)
	}

	if t, ok := a.ds.Table(dataset.FileMeasReports); ok {
		reports, _ := t.MeasurementReports()
		for _, r := range reports {
			if !res.HasDuration || r.Time > res.SimulationDuration {
				res.SimulationDuration = r.Time
				res.HasDuration = true
			}
		}
	}

	if t, ok := a.ds.Table(dataset.FileThroughput); ok {
		samples, _ := t.ThroughputSamples()
		for _, s := range samples {
			if !res.HasDuration || s.Time > res.SimulationDuration {
				res.SimulationDuration = s.Time
				res.HasDuration = true
			}
		}
	}

	return res
}

// Measurements analyzes the measurement-report table: trigger counts,
// unique UEs and cells, and serving RSRP/RSRQ statistics.
func (a *Analyzer) Measurements() MeasurementsResult {
	t, ok := a.ds.Table(dataset.FileMeasReports)
	if !ok {
		return MeasurementsResult{}
	}

	reports, skipped := t.MeasurementReports()
	if skipped > 0 {
		a.log.WithField("skipped", skipped).Debug("dropped malformed measurement rows")
	}

	res := MeasurementsResult{
		Available:    true,
		TotalReports: t.Len(),
	}

	imsis := make(map[string]bool)
	cells := make(map[string]bool)
	rsrp := make([]float64, 0, len(reports))
	rsrq := make([]float64, 0, len(reports))

	for _, r := range reports {
		switch r.Event {
		case eventA3:
			res.A3Events++
		case eventPeriodic:
			res.PeriodicEvents++
		}

		imsis[r.IMSI] = true
		cells[r.CellID] = true
		rsrp = append(rsrp, r.ServingRsrpDbm)
		rsrq = append(rsrq, r.ServingRsrqDb)
	}

	res.IMSIs = sortedIdentifiers(imsis)
	res.CellIDs = sortedIdentifiers(cells)
	res.Rsrp = stats.Describe(rsrp)
	res.Rsrq = stats.Describe(rsrq)

	return res
}

// RRC counts event labels on both RRC logs and derives connection and
// handover figures from the network-side log.
func (a *Analyzer) RRC() RRCResult {
	res := RRCResult{}

	if t, ok := a.ds.Table(dataset.FileEnbRrcEvents); ok {
		res.EnbAvailable = true
		events, _ := t.RRCEvents()
		counts := countEvents(events)
		res.EnbEvents = sortedEventCounts(counts)

		res.ConnEstablishments = counts[eventConnEstablished]
		res.HandoverStarts = counts[eventHandoverStart]
		res.HandoverSuccesses = counts[eventHandoverEndOK]

		if res.HandoverStarts > 0 {
			res.HandoverSuccessRate = float64(res.HandoverSuccesses) / float64(res.HandoverStarts) * 100.0
			res.HasSuccessRate = true
		}
	}

	if t, ok := a.ds.Table(dataset.FileUeRrcEvents); ok {
		res.UeAvailable = true
		events, _ := t.RRCEvents()
		res.UeEvents = sortedEventCounts(countEvents(events))
	}

	return res
}

// Signal computes RSRP/RSRQ statistics over the signal-quality samples.
func (a *Analyzer) Signal() SignalResult {
	t, ok := a.ds.Table(dataset.FileRsrpSamples)
	if !ok {
		return SignalResult{}
	}

	samples, _ := t.RsrpSamples()

	rsrp := make([]float64, 0, len(samples))
	rsrq := make([]float64, 0, len(samples))
	for _, s := range samples {
		rsrp = append(rsrp, s.RsrpDbm)
		rsrq = append(rsrq, s.RsrqDb)
	}

	return SignalResult{
		Available: true,
		Samples:   t.Len(),
		Rsrp:      stats.Describe(rsrp),
		Rsrq:      stats.Describe(rsrq),
	}
}

// Throughput analyzes per-flow QoS samples. A sample with throughput of
// zero or below belongs to an inactive flow and is excluded; delay values
// outside (0, 1000) ms are sentinels and excluded from delay averaging.
func (a *Analyzer) Throughput() ThroughputResult {
	t, ok := a.ds.Table(dataset.FileThroughput)
	if !ok {
		return ThroughputResult{}
	}

	samples, _ := t.ThroughputSamples()

	res := ThroughputResult{
		Available:    true,
		TotalSamples: t.Len(),
	}

	flows := make(map[string]bool)
	tput := make([]float64, 0, len(samples))
	delay := make([]float64, 0, len(samples))
	loss := make([]float64, 0, len(samples))

	for _, s := range samples {
		if s.ThroughputMbps <= 0 {
			continue
		}

		res.ActiveSamples++
		flows[s.FlowID] = true
		tput = append(tput, s.ThroughputMbps)
		loss = append(loss, s.PacketLossPercent)

		if s.DelayMs > 0 && s.DelayMs < maxValidDelayMs {
			delay = append(delay, s.DelayMs)
		}
	}

	res.ActiveFlows = len(flows)
	res.Throughput = stats.Describe(tput)
	res.Delay = stats.Describe(delay)
	res.PacketLoss = stats.Describe(loss)

	return res
}

// PerUE builds the per-IMSI breakdown from measurement reports and
// signal samples, ordered by ascending IMSI.
func (a *Analyzer) PerUE() PerUEResult {
	t, ok := a.ds.Table(dataset.FileMeasReports)
	if !ok {
		return PerUEResult{}
	}

	reports, _ := t.MeasurementReports()

	type ueAgg struct {
		reports  int
		a3Events int
		rsrp     []float64
	}

	byIMSI := make(map[string]*ueAgg)
	for _, r := range reports {
		agg := byIMSI[r.IMSI]
		if agg == nil {
			agg = &ueAgg{}
			byIMSI[r.IMSI] = agg
		}

		agg.reports++
		if r.Event == eventA3 {
			agg.a3Events++
		}
	}

	if rt, ok := a.ds.Table(dataset.FileRsrpSamples); ok {
		samples, _ := rt.RsrpSamples()
		for _, s := range samples {
			if agg, ok := byIMSI[s.IMSI]; ok {
				agg.rsrp = append(agg.rsrp, s.RsrpDbm)
			}
		}
	}

	imsis := make(map[string]bool, len(byIMSI))
	for imsi := range byIMSI {
		imsis[imsi] = true
	}

	res := PerUEResult{Available: true}
	for _, imsi := range sortedIdentifiers(imsis) {
		agg := byIMSI[imsi]
		res.UEs = append(res.UEs, UEBreakdown{
			IMSI:     imsi,
			Reports:  agg.reports,
			A3Events: agg.a3Events,
			Rsrp:     stats.Describe(agg.rsrp),
		})
	}

	return res
}

func countEvents(events []dataset.RRCEvent) map[string]int {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Event]++
	}
	return counts
}

func sortedEventCounts(counts map[string]int) []EventCount {
	out := make([]EventCount, 0, len(counts))
	for event, count := range counts {
		out = append(out, EventCount{Event: event, Count: count})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })

	return out
}

// sortedIdentifiers sorts opaque identifiers ascending. All-digit
// identifiers order numerically as a block before everything else, so
// UE "10" follows "2"; non-numeric identifiers follow in lexicographic
// order. The key is total, so the result is stable across runs.
func sortedIdentifiers(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseUint(ids[i], 10, 64)
		b, errB := strconv.ParseUint(ids[j], 10, 64)
		switch {
		case errA == nil && errB == nil:
			if a != b {
				return a < b
			}
			return ids[i] < ids[j]
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})

	return ids
}
