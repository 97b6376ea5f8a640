package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanDir counts the CSV files and pcap captures sitting in the data
// directory. Capture contents are not decoded, only counted and sized.
func ScanDir(dir string) (DirScan, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DirScan{}, fmt.Errorf("reading data directory %s: %w", dir, err)
	}

	scan := DirScan{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv":
			scan.CSVFiles++
		case ".pcap":
			scan.Captures.Files++

			info, err := entry.Info()
			if err != nil {
				continue
			}

			if info.Size() > 0 {
				scan.Captures.NonEmpty++
			}
			scan.Captures.TotalSizeByte += info.Size()
		}
	}

	return scan, nil
}
