package report

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltelabs/handover-report/internal/analysis"
	"github.com/ltelabs/handover-report/internal/dataset"
	"github.com/ltelabs/handover-report/internal/metrics"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFormatter_PrintReport_EmptyDirectory(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := testLogger()
	collector := metrics.NewCollector(log)
	require.NoError(t, collector.Start(context.Background()))

	loader := dataset.NewLoader(log, t.TempDir(), collector)
	ds, err := loader.LoadAll(context.Background(), dataset.BuiltinManifest())
	require.NoError(t, err)

	analyzer := analysis.New(log, ds)
	rep := analyzer.Analyze(analysis.DirScan{})

	buf := &bytes.Buffer{}
	formatter := NewFormatter(log, buf)
	formatter.PrintReport(rep, collector.GetSummary())

	out := buf.String()

	// Every file gets a not-found diagnostic and the run still renders
	// all sections in order.
	assert.Contains(t, out, "file not found")
	assert.Contains(t, out, "no pcap files found")

	sections := []string{
		"▸ Data Files Overview",
		"▸ Measurement Reports",
		"▸ RRC Events",
		"▸ Signal Quality (RSRP/RSRQ)",
		"▸ Throughput Analysis",
		"▸ Per-UE Breakdown",
		"▸ Packet Captures",
		"▸ Summary",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestFormatter_PrintReport_WithData(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := testLogger()
	collector := metrics.NewCollector(log)
	require.NoError(t, collector.Start(context.Background()))

	dir := t.TempDir()
	writeTestCSV(t, dir)

	loader := dataset.NewLoader(log, dir, collector)
	ds, err := loader.LoadAll(context.Background(), dataset.BuiltinManifest())
	require.NoError(t, err)

	scan, err := analysis.ScanDir(dir)
	require.NoError(t, err)

	analyzer := analysis.New(log, ds)
	rep := analyzer.Analyze(scan)

	buf := &bytes.Buffer{}
	formatter := NewFormatter(log, buf)
	formatter.PrintReport(rep, collector.GetSummary())

	out := buf.String()

	assert.Contains(t, out, "handover_meas_reports.csv")
	assert.Contains(t, out, "A3 Events")
	assert.Contains(t, out, "Simulation duration")
	assert.Contains(t, out, "Total Records")
	assert.NotContains(t, out, "%!")
}

func writeTestCSV(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"handover_meas_reports.csv": "time,imsi,enbCellId,rnti,measId,event,servingRsrpQ,servingRsrqQ,servingRsrpDbm,servingRsrqDb,neighborCells\n" +
			"1.0,1,1,1,1,A3,50,20,-85.0,-10.0,\n" +
			"2.0,2,1,2,1,PERIODIC,50,20,-95.0,-12.0,\n",
		"rsrp_measurements.csv": "time,imsi,cellId,rsrpDbm,rsrqDb\n" +
			"1.0,1,1,-84.0,-10.0\n",
		"throughput_analysis.csv": "time,flowId,throughputMbps,delayMs,jitterMs,packetLossPercent,rxPackets,txPackets\n" +
			"3.5,1,5.0,50.0,0.1,0.5,100,101\n",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}
