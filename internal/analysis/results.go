package analysis

import "github.com/ltelabs/handover-report/internal/stats"

// FileCount summarizes one manifest file in the data-files overview.
type FileCount struct {
	Description string
	Name        string
	Records     int
	SizeBytes   int64
	Missing     bool
}

// OverviewResult is the data-files overview section.
type OverviewResult struct {
	Files              []FileCount
	TotalRecords       int
	SimulationDuration float64 // seconds, max timestamp across measurement and throughput tables
	HasDuration        bool
}

// MeasurementsResult is the measurement-reports section.
type MeasurementsResult struct {
	Available      bool
	TotalReports   int
	A3Events       int
	PeriodicEvents int
	IMSIs          []string // ascending
	CellIDs        []string // ascending
	Rsrp           stats.Summary
	Rsrq           stats.Summary
}

// EventCount is one RRC event label with its occurrence count.
type EventCount struct {
	Event string
	Count int
}

// RRCResult is the RRC events section, covering both the network-side
// and device-side logs.
type RRCResult struct {
	EnbAvailable bool
	UeAvailable  bool
	EnbEvents    []EventCount // ascending by label
	UeEvents     []EventCount // ascending by label

	ConnEstablishments  int
	HandoverStarts      int
	HandoverSuccesses   int
	HandoverSuccessRate float64 // percentage, valid only when HasSuccessRate
	HasSuccessRate      bool
}

// SignalResult is the RSRP/RSRQ signal-quality section.
type SignalResult struct {
	Available bool
	Samples   int
	Rsrp      stats.Summary
	Rsrq      stats.Summary
}

// ThroughputResult is the throughput/QoS section. Only samples with
// throughput above zero count as active; delay averaging additionally
// drops sentinel values outside (0, 1000) ms.
type ThroughputResult struct {
	Available     bool
	TotalSamples  int
	ActiveSamples int
	ActiveFlows   int
	Throughput    stats.Summary
	Delay         stats.Summary
	PacketLoss    stats.Summary
}

// UEBreakdown is the per-UE slice of the breakdown section.
type UEBreakdown struct {
	IMSI     string
	Reports  int
	A3Events int
	Rsrp     stats.Summary
}

// PerUEResult is the per-UE breakdown section, ordered by ascending IMSI.
type PerUEResult struct {
	Available bool
	UEs       []UEBreakdown
}

// CaptureResult summarizes the pcap files found in the data directory.
type CaptureResult struct {
	Files         int
	NonEmpty      int
	TotalSizeByte int64
}

// DirScan counts the raw files present in the data directory.
type DirScan struct {
	CSVFiles int
	Captures CaptureResult
}

// Report bundles every section of a full analysis run.
type Report struct {
	Overview     OverviewResult
	Scan         DirScan
	Measurements MeasurementsResult
	RRC          RRCResult
	Signal       SignalResult
	Throughput   ThroughputResult
	PerUE        PerUEResult
}
