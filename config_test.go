package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/wrwatch/records"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, records.DefaultKey, cfg.DefaultCategory)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "https://www.speedrun.com/outlast", cfg.Source)
	assert.Empty(t, cfg.ExportDir)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("WRWATCH_BASE_URL", "https://records.example.com")
	t.Setenv("WRWATCH_DEFAULT_CATEGORY", "insane")
	t.Setenv("WRWATCH_TIMEOUT", "5s")

	cfg, err := loadConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, "https://records.example.com", cfg.BaseURL)
	assert.Equal(t, records.Key("insane"), cfg.DefaultCategory)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"no scheme", keyBaseURL, "localhost:5000"},
		{"ftp", keyBaseURL, "ftp://example.com"},
		{"no host", keyBaseURL, "http://"},
		{"negative timeout", keyTimeout, -time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.val)
			_, err := loadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EmptyCategoryFallsBack(t *testing.T) {
	v := newViper()
	v.Set(keyDefaultCategory, "")
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, records.DefaultKey, cfg.DefaultCategory)
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: https://records.example.com\n"+
			"default_category: glitchless\n"+
			"timeout: 3s\n"+
			"export_dir: /tmp/exports\n"), 0o644))

	v := newViper()
	require.NoError(t, readConfigFile(v, path))
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "https://records.example.com", cfg.BaseURL)
	assert.Equal(t, records.Key("glitchless"), cfg.DefaultCategory)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
}

func TestReadConfigFile_ExplicitMissingFails(t *testing.T) {
	err := readConfigFile(newViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadConfigFile_DefaultMissingIsFine(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, readConfigFile(newViper(), ""))
}
