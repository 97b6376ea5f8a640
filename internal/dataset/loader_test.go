package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltelabs/handover-report/internal/metrics"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func rsrpSpec() FileSpec {
	spec, ok := BuiltinManifest().Lookup(FileRsrpSamples)
	if !ok {
		panic("builtin manifest missing rsrp spec")
	}
	return spec
}

func TestLoader_Load(t *testing.T) {
	log := testLogger()

	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		loader := NewLoader(log, dir, metrics.NewCollector(log))

		_, err := loader.Load(rsrpSpec())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("header only file yields zero records", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "rsrp_measurements.csv", "time,imsi,cellId,rsrpDbm,rsrqDb\n")
		loader := NewLoader(log, dir, metrics.NewCollector(log))

		table, err := loader.Load(rsrpSpec())
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("completely empty file yields zero records", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "rsrp_measurements.csv", "")
		loader := NewLoader(log, dir, metrics.NewCollector(log))

		table, err := loader.Load(rsrpSpec())
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("rows map columns by header name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "rsrp_measurements.csv",
			"time,imsi,cellId,rsrpDbm,rsrqDb\n"+
				"1.5,1,2,-85.2,-10.1\n")
		loader := NewLoader(log, dir, metrics.NewCollector(log))

		table, err := loader.Load(rsrpSpec())
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Equal(t, "1", table.Records[0]["imsi"])
		assert.Equal(t, "-85.2", table.Records[0]["rsrpDbm"])
	})
}

func TestLoader_LoadAll(t *testing.T) {
	log := testLogger()

	t.Run("all files missing is not an error", func(t *testing.T) {
		dir := t.TempDir()
		collector := metrics.NewCollector(log)
		require.NoError(t, collector.Start(context.Background()))
		loader := NewLoader(log, dir, collector)

		ds, err := loader.LoadAll(context.Background(), BuiltinManifest())
		require.NoError(t, err)

		for _, spec := range BuiltinManifest().Files {
			assert.True(t, ds.Missing(spec.Key), "expected %s to be missing", spec.Key)
		}

		summary := collector.GetSummary()
		assert.Equal(t, len(BuiltinManifest().Files), summary.MissingFiles)
		assert.Equal(t, 0, summary.LoadedFiles)
	})

	t.Run("malformed rows are skipped per row", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "rsrp_measurements.csv",
			"time,imsi,cellId,rsrpDbm,rsrqDb\n"+
				"1.0,1,2,-85.2,-10.1\n"+
				"bogus,1,2,not-a-number,-10.0\n"+
				"2.0,2,2,-90.0,-11.5\n")
		collector := metrics.NewCollector(log)
		require.NoError(t, collector.Start(context.Background()))
		loader := NewLoader(log, dir, collector)

		ds, err := loader.LoadAll(context.Background(), BuiltinManifest())
		require.NoError(t, err)

		table, ok := ds.Table(FileRsrpSamples)
		require.True(t, ok)
		assert.Equal(t, 3, table.Len())

		samples, skipped := table.RsrpSamples()
		assert.Len(t, samples, 2)
		assert.Equal(t, 1, skipped)
		assert.Equal(t, 1, ds.SkippedRows(FileRsrpSamples))
	})

	t.Run("load metrics are recorded per file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "rsrp_measurements.csv",
			"time,imsi,cellId,rsrpDbm,rsrqDb\n1.0,1,2,-85.2,-10.1\n")
		collector := metrics.NewCollector(log)
		require.NoError(t, collector.Start(context.Background()))
		loader := NewLoader(log, dir, collector)

		_, err := loader.LoadAll(context.Background(), BuiltinManifest())
		require.NoError(t, err)

		summary := collector.GetSummary()
		assert.Equal(t, 1, summary.LoadedFiles)
		assert.Equal(t, len(BuiltinManifest().Files)-1, summary.MissingFiles)
		assert.Equal(t, 1, summary.TotalRecords)
		assert.Positive(t, summary.TotalDataSize)
	})
}
