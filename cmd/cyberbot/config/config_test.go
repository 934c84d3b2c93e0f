package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.UserName)
	assert.Equal(t, "dark", cfg.Theme)
	assert.False(t, cfg.Logging.DebugMode)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := Config{
		UserName: "Alex",
		Theme:    "light",
		Logging: LoggingConfig{
			DebugMode:  true,
			Level:      "debug",
			Categories: map[string]bool{"quiz": false},
		},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".cyberbot")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "corrupt config degrades to defaults")
}

func TestFilePath(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	path, err := File()
	require.NoError(t, err)
	assert.Equal(t, "/home/someone/.cyberbot/config.json", path)
}
