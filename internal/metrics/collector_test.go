package metrics

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCollector_GetSummary(t *testing.T) {
	collector := NewCollector(testLogger())
	require.NoError(t, collector.Start(context.Background()))

	collector.RecordFileLoad(FileLoadMetric{
		File:        "handover_meas_reports.csv",
		Records:     120,
		SkippedRows: 2,
		SizeBytes:   4096,
		Duration:    3 * time.Millisecond,
	})
	collector.RecordFileLoad(FileLoadMetric{
		File:    "rsrp_measurements.csv",
		Missing: true,
	})
	collector.RecordFileLoad(FileLoadMetric{
		File:      "throughput_analysis.csv",
		Records:   30,
		SizeBytes: 1024,
	})

	summary := collector.GetSummary()

	assert.Equal(t, 3, summary.TotalFiles)
	assert.Equal(t, 2, summary.LoadedFiles)
	assert.Equal(t, 1, summary.MissingFiles)
	assert.Equal(t, 150, summary.TotalRecords)
	assert.Equal(t, 2, summary.SkippedRows)
	assert.Equal(t, int64(5120), summary.TotalDataSize)
	assert.Len(t, collector.GetFileMetrics(), 3)
}

func TestCollector_EmptySummary(t *testing.T) {
	collector := NewCollector(testLogger())
	require.NoError(t, collector.Start(context.Background()))

	summary := collector.GetSummary()

	assert.Equal(t, 0, summary.TotalFiles)
	assert.Equal(t, 0, summary.TotalRecords)
}
