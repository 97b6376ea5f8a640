package dataset

import (
	"sort"
	"sync"
)

// Dataset is the loaded contents of one simulation run directory.
// Tables are written once during LoadAll and read-only afterwards.
type Dataset struct {
	manifest *Manifest

	mu      sync.RWMutex
	tables  map[string]*Table
	missing map[string]bool
	skipped map[string]int
}

func newDataset(manifest *Manifest) *Dataset {
	return &Dataset{
		manifest: manifest,
		tables:   make(map[string]*Table, len(manifest.Files)),
		missing:  make(map[string]bool),
		skipped:  make(map[string]int),
	}
}

func (d *Dataset) setTable(key string, t *Table, skipped int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[key] = t
	d.skipped[key] = skipped
}

func (d *Dataset) setMissing(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.missing[key] = true
}

// Manifest returns the manifest this dataset was loaded against.
func (d *Dataset) Manifest() *Manifest {
	return d.manifest
}

// Table returns the loaded table for a file key.
func (d *Dataset) Table(key string) (*Table, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.tables[key]
	return t, ok
}

// Missing reports whether the file for a key was absent at load time.
func (d *Dataset) Missing(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.missing[key]
}

// SkippedRows returns how many malformed rows were dropped for a key.
func (d *Dataset) SkippedRows(key string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.skipped[key]
}

// LoadedKeys returns the keys of all loaded tables in ascending order.
func (d *Dataset) LoadedKeys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.tables))
	for key := range d.tables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
