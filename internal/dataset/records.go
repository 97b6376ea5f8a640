package dataset

import "strconv"

// Identifier fields (IMSI, cell IDs, flow IDs, node IDs) are kept as opaque
// strings: they are labels, never arithmetic inputs.

// MeasurementReport is one RRC measurement report logged by an eNB.
type MeasurementReport struct {
	Time           float64
	IMSI           string
	CellID         string
	Event          string // A3 or PERIODIC
	ServingRsrpDbm float64
	ServingRsrqDb  float64
}

// RRCEvent is one RRC signaling event (connection establishment,
// handover start/end) from the eNB-side or UE-side log.
type RRCEvent struct {
	Event  string
	Time   float64
	IMSI   string
	CellID string
}

// RsrpSample is one signal-quality sample.
type RsrpSample struct {
	Time    float64
	IMSI    string
	CellID  string
	RsrpDbm float64
	RsrqDb  float64
}

// ThroughputSample is one per-flow QoS sample.
type ThroughputSample struct {
	Time              float64
	FlowID            string
	ThroughputMbps    float64
	DelayMs           float64
	JitterMs          float64
	PacketLossPercent float64
}

// MobilityPoint is one UE position/velocity sample.
type MobilityPoint struct {
	Time   float64
	NodeID string
	PosX   float64
	PosY   float64
	PosZ   float64
}

// HandoverStat is one handover timing record.
type HandoverStat struct {
	Event        string
	Time         float64
	IMSI         string
	SourceCellID string
	TargetCellID string
}

// MeasurementReports decodes the table into typed records.
// Rows with malformed numeric fields are skipped individually; the
// returned count says how many were dropped.
func (t *Table) MeasurementReports() ([]MeasurementReport, int) {
	reports := make([]MeasurementReport, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		tm, errTime := strconv.ParseFloat(rec["time"], 64)
		rsrp, errRsrp := strconv.ParseFloat(rec["servingRsrpDbm"], 64)
		rsrq, errRsrq := strconv.ParseFloat(rec["servingRsrqDb"], 64)

		if errTime != nil || errRsrp != nil || errRsrq != nil {
			skipped++
			continue
		}

		reports = append(reports, MeasurementReport{
			Time:           tm,
			IMSI:           rec["imsi"],
			CellID:         rec["enbCellId"],
			Event:          rec["event"],
			ServingRsrpDbm: rsrp,
			ServingRsrqDb:  rsrq,
		})
	}

	return reports, skipped
}

// RRCEvents decodes the table into typed records. Only the event label is
// required; an unparseable timestamp zeroes the field rather than dropping
// the row since event counting never needs it.
func (t *Table) RRCEvents() ([]RRCEvent, int) {
	events := make([]RRCEvent, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		if rec["event"] == "" {
			skipped++
			continue
		}

		tm, err := strconv.ParseFloat(rec["time"], 64)
		if err != nil {
			tm = 0
		}

		events = append(events, RRCEvent{
			Event:  rec["event"],
			Time:   tm,
			IMSI:   rec["imsi"],
			CellID: rec["cellId"],
		})
	}

	return events, skipped
}

// RsrpSamples decodes the table into typed records.
func (t *Table) RsrpSamples() ([]RsrpSample, int) {
	samples := make([]RsrpSample, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		tm, errTime := strconv.ParseFloat(rec["time"], 64)
		rsrp, errRsrp := strconv.ParseFloat(rec["rsrpDbm"], 64)
		rsrq, errRsrq := strconv.ParseFloat(rec["rsrqDb"], 64)

		if errTime != nil || errRsrp != nil || errRsrq != nil {
			skipped++
			continue
		}

		samples = append(samples, RsrpSample{
			Time:    tm,
			IMSI:    rec["imsi"],
			CellID:  rec["cellId"],
			RsrpDbm: rsrp,
			RsrqDb:  rsrq,
		})
	}

	return samples, skipped
}

// ThroughputSamples decodes the table into typed records.
func (t *Table) ThroughputSamples() ([]ThroughputSample, int) {
	samples := make([]ThroughputSample, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		tm, errTime := strconv.ParseFloat(rec["time"], 64)
		tput, errTput := strconv.ParseFloat(rec["throughputMbps"], 64)
		delay, errDelay := strconv.ParseFloat(rec["delayMs"], 64)
		loss, errLoss := strconv.ParseFloat(rec["packetLossPercent"], 64)

		if errTime != nil || errTput != nil || errDelay != nil || errLoss != nil {
			skipped++
			continue
		}

		// jitter is informational and missing from older traces
		jitter, err := strconv.ParseFloat(rec["jitterMs"], 64)
		if err != nil {
			jitter = 0
		}

		samples = append(samples, ThroughputSample{
			Time:              tm,
			FlowID:            rec["flowId"],
			ThroughputMbps:    tput,
			DelayMs:           delay,
			JitterMs:          jitter,
			PacketLossPercent: loss,
		})
	}

	return samples, skipped
}

// MobilityPoints decodes the table into typed records.
func (t *Table) MobilityPoints() ([]MobilityPoint, int) {
	points := make([]MobilityPoint, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		tm, errTime := strconv.ParseFloat(rec["time"], 64)
		x, errX := strconv.ParseFloat(rec["posX"], 64)
		y, errY := strconv.ParseFloat(rec["posY"], 64)
		z, errZ := strconv.ParseFloat(rec["posZ"], 64)

		if errTime != nil || errX != nil || errY != nil || errZ != nil {
			skipped++
			continue
		}

		points = append(points, MobilityPoint{
			Time:   tm,
			NodeID: rec["nodeId"],
			PosX:   x,
			PosY:   y,
			PosZ:   z,
		})
	}

	return points, skipped
}

// HandoverStats decodes the table into typed records.
func (t *Table) HandoverStats() ([]HandoverStat, int) {
	hos := make([]HandoverStat, 0, t.Len())
	skipped := 0

	for _, rec := range t.Records {
		if rec["event"] == "" {
			skipped++
			continue
		}

		tm, err := strconv.ParseFloat(rec["time"], 64)
		if err != nil {
			skipped++
			continue
		}

		hos = append(hos, HandoverStat{
			Event:        rec["event"],
			Time:         tm,
			IMSI:         rec["imsi"],
			SourceCellID: rec["sourceCellId"],
			TargetCellID: rec["targetCellId"],
		})
	}

	return hos, skipped
}
