// Package metrics provides dataset load metrics collection and aggregation.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FileLoadMetric captures metrics about loading a single data file
type FileLoadMetric struct {
	File        string
	Missing     bool
	Records     int
	SkippedRows int
	SizeBytes   int64
	Duration    time.Duration
	Timestamp   time.Time
}

// SummaryMetric provides aggregate statistics across all file loads
type SummaryMetric struct {
	TotalDuration time.Duration
	TotalFiles    int
	LoadedFiles   int
	MissingFiles  int
	TotalRecords  int
	SkippedRows   int
	TotalDataSize int64 // bytes
}

// Collector interface for metrics collection
type Collector interface {
	Start(ctx context.Context) error
	Stop() error
	RecordFileLoad(metric FileLoadMetric)
	GetFileMetrics() []FileLoadMetric
	GetSummary() SummaryMetric
}

// collector implements Collector interface
type collector struct {
	log         logrus.FieldLogger
	mu          sync.RWMutex
	fileMetrics []FileLoadMetric
	startTime   time.Time
}

// NewCollector creates a new metrics collector
func NewCollector(log logrus.FieldLogger) Collector {
	return &collector{
		log:         log.WithField("component", "metrics_collector"),
		fileMetrics: make([]FileLoadMetric, 0, 16), // capacity hint
	}
}

func (c *collector) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = time.Now()

	c.log.Debug("metrics collector started")

	return nil
}

func (c *collector) Stop() error {
	c.log.Debug("metrics collector stopped")

	return nil
}

func (c *collector) RecordFileLoad(metric FileLoadMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileMetrics = append(c.fileMetrics, metric)
}

func (c *collector) GetFileMetrics() []FileLoadMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()
	// Return copy to avoid race conditions
	result := make([]FileLoadMetric, len(c.fileMetrics))
	copy(result, c.fileMetrics)
	return result
}

func (c *collector) GetSummary() SummaryMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := SummaryMetric{
		TotalDuration: time.Since(c.startTime),
		TotalFiles:    len(c.fileMetrics),
	}

	for _, fm := range c.fileMetrics {
		if fm.Missing {
			summary.MissingFiles++
			continue
		}
		summary.LoadedFiles++
		summary.TotalRecords += fm.Records
		summary.SkippedRows += fm.SkippedRows
		summary.TotalDataSize += fm.SizeBytes
	}

	return summary
}

// Compile-time interface compliance check
var _ Collector = (*collector)(nil)
