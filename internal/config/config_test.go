package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: /data/in
keyword_file: /data/keywords.csv
min_source_len: 80
ocr_enabled: true
log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "/data/keywords.csv", cfg.KeywordFile)
	assert.Equal(t, 80, cfg.MinSourceLen)
	assert.True(t, cfg.OCREnabled)
	assert.False(t, cfg.VisionEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Untouched keys keep their defaults.
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
}

func TestLoadRejectsNegativeMinSourceLen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_source_len: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
