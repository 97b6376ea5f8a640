// Package dataset loads LTE simulation CSV output into in-memory tables.
// The set of known files and their expected column schemas comes from a
// manifest: a built-in one matching the simulator's output, optionally
// overridden by a YAML file.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Well-known file keys used by the analyzers.
const (
	FileMeasReports   = "meas_reports"
	FileEnbRrcEvents  = "enb_rrc_events"
	FileUeRrcEvents   = "ue_rrc_events"
	FileRsrpSamples   = "rsrp_measurements"
	FileThroughput    = "throughput"
	FileMobilityTrace = "mobility_trace"
	FileHandoverStats = "handover_statistics"
)

var (
	errFileKeyRequired  = errors.New("file key is required")
	errFileKeyDuplicate = errors.New("duplicate file key")
	errFileNameRequired = errors.New("file name is required")
	errColumnsRequired  = errors.New("at least one column is required")
)

// FileSpec describes one expected data file: its name on disk, a
// human-readable description and the ordered column schema.
type FileSpec struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"file"`
	Description string   `yaml:"description"`
	Columns     []string `yaml:"columns"`
}

// Manifest is the ordered set of data files a report run looks for.
type Manifest struct {
	Files []FileSpec `yaml:"files"`
}

// BuiltinManifest returns the manifest matching the simulator's CSV output.
func BuiltinManifest() *Manifest {
	return &Manifest{
		Files: []FileSpec{
			{
				Key:         FileMeasReports,
				Name:        "handover_meas_reports.csv",
				Description: "Measurement Reports",
				Columns: []string{
					"time", "imsi", "enbCellId", "rnti", "measId", "event",
					"servingRsrpQ", "servingRsrqQ", "servingRsrpDbm", "servingRsrqDb",
					"neighborCells",
				},
			},
			{
				Key:         FileEnbRrcEvents,
				Name:        "handover_enb_rrc_events.csv",
				Description: "eNB RRC Events",
				Columns:     []string{"event", "time", "imsi", "cellId", "rnti", "info"},
			},
			{
				Key:         FileUeRrcEvents,
				Name:        "handover_ue_rrc_events.csv",
				Description: "UE RRC Events",
				Columns:     []string{"event", "time", "imsi", "cellId", "rnti", "info"},
			},
			{
				Key:         FileRsrpSamples,
				Name:        "rsrp_measurements.csv",
				Description: "RSRP Measurements",
				Columns:     []string{"time", "imsi", "cellId", "rsrpDbm", "rsrqDb"},
			},
			{
				Key:         FileThroughput,
				Name:        "throughput_analysis.csv",
				Description: "Throughput Analysis",
				Columns: []string{
					"time", "flowId", "throughputMbps", "delayMs", "jitterMs",
					"packetLossPercent", "rxPackets", "txPackets",
				},
			},
			{
				Key:         FileMobilityTrace,
				Name:        "ue_mobility_trace.csv",
				Description: "UE Mobility Trace",
				Columns:     []string{"time", "nodeId", "posX", "posY", "posZ", "velX", "velY", "velZ"},
			},
			{
				Key:         FileHandoverStats,
				Name:        "handover_statistics.csv",
				Description: "Handover Statistics",
				Columns:     []string{"event", "time", "imsi", "sourceCellId", "targetCellId"},
			},
		},
	}
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Reading manifest from trusted paths
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest yaml: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}

	return &manifest, nil
}

// Validate ensures the manifest is usable. A bad manifest is a
// configuration error, not a skippable data error.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Files))

	for i, spec := range m.Files {
		if spec.Key == "" {
			return fmt.Errorf("%w at index %d", errFileKeyRequired, i)
		}

		if seen[spec.Key] {
			return fmt.Errorf("%w: %s", errFileKeyDuplicate, spec.Key)
		}
		seen[spec.Key] = true

		if spec.Name == "" {
			return fmt.Errorf("%w: %s", errFileNameRequired, spec.Key)
		}

		if len(spec.Columns) == 0 {
			return fmt.Errorf("%w: %s", errColumnsRequired, spec.Key)
		}
	}

	return nil
}

// Lookup returns the spec for a file key.
func (m *Manifest) Lookup(key string) (FileSpec, bool) {
	for _, spec := range m.Files {
		if spec.Key == key {
			return spec, true
		}
	}
	return FileSpec{}, false
}
