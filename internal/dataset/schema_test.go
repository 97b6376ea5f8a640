package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinManifest(t *testing.T) {
	manifest := BuiltinManifest()

	require.NoError(t, manifest.Validate())

	spec, ok := manifest.Lookup(FileThroughput)
	require.True(t, ok)
	assert.Equal(t, "throughput_analysis.csv", spec.Name)
	assert.Contains(t, spec.Columns, "throughputMbps")

	_, ok = manifest.Lookup("nope")
	assert.False(t, ok)
}

func TestManifest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  error
	}{
		{
			name: "missing key",
			manifest: Manifest{Files: []FileSpec{
				{Name: "a.csv", Columns: []string{"x"}},
			}},
			wantErr: errFileKeyRequired,
		},
		{
			name: "duplicate key",
			manifest: Manifest{Files: []FileSpec{
				{Key: "a", Name: "a.csv", Columns: []string{"x"}},
				{Key: "a", Name: "b.csv", Columns: []string{"x"}},
			}},
			wantErr: errFileKeyDuplicate,
		},
		{
			name: "missing file name",
			manifest: Manifest{Files: []FileSpec{
				{Key: "a", Columns: []string{"x"}},
			}},
			wantErr: errFileNameRequired,
		},
		{
			name: "missing columns",
			manifest: Manifest{Files: []FileSpec{
				{Key: "a", Name: "a.csv"},
			}},
			wantErr: errColumnsRequired,
		},
		{
			name: "valid",
			manifest: Manifest{Files: []FileSpec{
				{Key: "a", Name: "a.csv", Columns: []string{"x"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	t.Run("valid manifest file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "manifest.yaml")
		content := `files:
  - key: rsrp_measurements
    file: custom_rsrp.csv
    description: Custom RSRP
    columns: [time, imsi, cellId, rsrpDbm, rsrqDb]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		manifest, err := LoadManifest(path)
		require.NoError(t, err)
		require.Len(t, manifest.Files, 1)
		assert.Equal(t, "custom_rsrp.csv", manifest.Files[0].Name)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "manifest.yaml")
		require.NoError(t, os.WriteFile(path, []byte("files: [\n"), 0o600))

		_, err := LoadManifest(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
