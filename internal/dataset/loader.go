package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ltelabs/handover-report/internal/metrics"
)

// ErrNotFound signals a manifest file that is absent from the data
// directory. A missing file is non-fatal: the run reports it and moves on.
var ErrNotFound = errors.New("file not found")

// Loader loads simulation data files.
type Loader interface {
	Load(spec FileSpec) (*Table, error)
	LoadAll(ctx context.Context, manifest *Manifest) (*Dataset, error)
}

type loader struct {
	dir       string
	log       logrus.FieldLogger
	collector metrics.Collector
}

// NewLoader creates a loader reading from the given data directory.
func NewLoader(log logrus.FieldLogger, dir string, collector metrics.Collector) Loader {
	return &loader{
		dir:       dir,
		log:       log.WithField("component", "dataset_loader"),
		collector: collector,
	}
}

// Load opens and parses one CSV file. The header row is required; a file
// holding only a header yields an empty table, not an error. The handle is
// released before Load returns, even on parse failure.
func (l *loader) Load(spec FileSpec) (*Table, error) {
	path := filepath.Join(l.dir, spec.Name)

	f, err := os.Open(path) //nolint:gosec // G304: Reading data files from the configured directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, spec.Name)
		}
		return nil, fmt.Errorf("opening %s: %w", spec.Name, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", spec.Name, err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// Completely empty file, treat like header-only
		return &Table{Spec: spec, Records: []Record{}, SizeBytes: info.Size()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", spec.Name, err)
	}

	l.warnMissingColumns(spec, header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", spec.Name, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	return &Table{Spec: spec, Records: records, SizeBytes: info.Size()}, nil
}

// LoadAll loads every manifest file concurrently, recording a load metric
// per file. Missing files are recorded and skipped; any other error aborts
// the load.
func (l *loader) LoadAll(ctx context.Context, manifest *Manifest) (*Dataset, error) {
	ds := newDataset(manifest)

	g, _ := errgroup.WithContext(ctx)

	for _, spec := range manifest.Files {
		g.Go(func() error {
			start := time.Now()

			table, err := l.Load(spec)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					l.log.WithField("file", spec.Name).Debug("data file not found")
					ds.setMissing(spec.Key)
					l.collector.RecordFileLoad(metrics.FileLoadMetric{
						File:      spec.Name,
						Missing:   true,
						Duration:  time.Since(start),
						Timestamp: time.Now(),
					})

					return nil
				}

				return err
			}

			skipped := countSkippedRows(spec.Key, table)
			ds.setTable(spec.Key, table, skipped)

			l.collector.RecordFileLoad(metrics.FileLoadMetric{
				File:        spec.Name,
				Records:     table.Len(),
				SkippedRows: skipped,
				SizeBytes:   table.SizeBytes,
				Duration:    time.Since(start),
				Timestamp:   time.Now(),
			})

			l.log.WithFields(logrus.Fields{
				"file":    spec.Name,
				"records": table.Len(),
				"skipped": skipped,
			}).Debug("loaded data file")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ds, nil
}

func (l *loader) warnMissingColumns(spec FileSpec, header []string) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	for _, col := range spec.Columns {
		if !present[col] {
			l.log.WithFields(logrus.Fields{
				"file":   spec.Name,
				"column": col,
			}).Warn("expected column missing from header")
		}
	}
}

// countSkippedRows runs the typed decoder for a known file key and returns
// how many rows it drops. Unknown keys carry no typed schema to enforce.
func countSkippedRows(key string, t *Table) int {
	switch key {
	case FileMeasReports:
		_, n := t.MeasurementReports()
		return n
	case FileEnbRrcEvents, FileUeRrcEvents:
		_, n := t.RRCEvents()
		return n
	case FileRsrpSamples:
		_, n := t.RsrpSamples()
		return n
	case FileThroughput:
		_, n := t.ThroughputSamples()
		return n
	case FileMobilityTrace:
		_, n := t.MobilityPoints()
		return n
	case FileHandoverStats:
		_, n := t.HandoverStats()
		return n
	default:
		return 0
	}
}

// Compile-time interface compliance check
var _ Loader = (*loader)(nil)
