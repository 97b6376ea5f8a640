package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ltelabs/handover-report/internal/analysis"
	"github.com/ltelabs/handover-report/internal/config"
	"github.com/ltelabs/handover-report/internal/dataset"
	"github.com/ltelabs/handover-report/internal/metrics"
	"github.com/ltelabs/handover-report/internal/report"
)

// session wires together one report run: config, loaded dataset,
// analyzer and output formatter.
type session struct {
	cfg       *config.Config
	collector metrics.Collector
	analyzer  *analysis.Analyzer
	formatter report.Formatter
	scan      analysis.DirScan
}

// newSession loads configuration and the dataset. Missing data files are
// recorded and reported, never fatal; a bad manifest or unreadable file is.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	manifest := dataset.BuiltinManifest()
	if cfg.ManifestPath != "" {
		manifest, err = dataset.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
	}

	collector := metrics.NewCollector(Logger)
	if err := collector.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting metrics collector: %w", err)
	}

	loader := dataset.NewLoader(Logger, cfg.DataDir, collector)

	ds, err := loader.LoadAll(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	scan, err := analysis.ScanDir(cfg.DataDir)
	if err != nil {
		// An unreadable directory still yields a report of missing files
		Logger.WithError(err).Warn("could not scan data directory")
		scan = analysis.DirScan{}
	}

	return &session{
		cfg:       cfg,
		collector: collector,
		analyzer:  analysis.New(Logger, ds),
		formatter: report.NewFormatter(Logger, os.Stdout),
		scan:      scan,
	}, nil
}

func (s *session) close() {
	if err := s.collector.Stop(); err != nil {
		Logger.WithError(err).Warn("stopping metrics collector")
	}
}
