package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apopiak/hyrise/pkg/errors"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.Table.MaxChunkSize)
	assert.Positive(t, cfg.Compression.Workers)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Table.MaxChunkSize = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	cfg = Default()
	cfg.Compression.Workers = -2
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Encoding = "xml"
	require.Error(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Table.MaxChunkSize = 1234
	cfg.Compression.Parallel = true
	cfg.Compression.Workers = 7
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
