package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "items.csv", cfg.File)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, int64(10), cfg.RestockThreshold)
	assert.Equal(t, 7, cfg.ExpiryDays)
	assert.Equal(t, 5, cfg.TopN)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file: pantry.csv\nformat: json\ntop_n: 3\n"), 0o644))
	t.Setenv("STOCKMGR_TOP_N", "8")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "pantry.csv", cfg.File)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 8, cfg.TopN)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{File: "items.csv", LogLevel: "info", Format: "yaml"}
	assert.NoError(t, valid.Validate())

	testCases := map[string]Config{
		"unknown format": {File: "items.csv", LogLevel: "info", Format: "xml"},
		"empty file":     {File: "", LogLevel: "info", Format: "text"},
		"bad log level":  {File: "items.csv", LogLevel: "loud", Format: "text"},
		"negative top":   {File: "items.csv", LogLevel: "info", Format: "text", TopN: -1},
	}
	for name, cfg := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}
