package swatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "Results", cfg.Results)
	assert.Equal(t, ":8000", cfg.Server.Addr)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(``+
		"results = \"out/results\"\n"+
		"\n"+
		"[server]\n"+
		"addr = \":9911\"\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "out/results", cfg.Results)
	assert.Equal(t, ":9911", cfg.Server.Addr)
	assert.Equal(t, ".", cfg.Server.Docroot, "unset fields keep their defaults")
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile),
		[]byte("results = \"not closed\n"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Results = ""
	cfg.Server.Addr = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "results must not be empty")
	assert.Contains(t, err.Error(), "server.addr must not be empty")
}
