package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	def := DefaultAppConfig()
	assert.Equal(t, def.Database.Path, cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Addr)
	assert.Equal(t, TitleMaxLength, cfg.Journal.TitleMaxLength)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `database:
  path: /tmp/j.db
log:
  level: debug
web:
  addr: ":9000"
journal:
  title_max_length: 80
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/j.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9000", cfg.Web.Addr)
	assert.Equal(t, 80, cfg.Journal.TitleMaxLength)
	// Unset keys keep their defaults.
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("YOURNAL_DATABASE_PATH", "/srv/env.db")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/env.db", cfg.Database.Path)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: ~/journal.db\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "journal.db"), cfg.Database.Path)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultAppConfig()
	cfg.Database.Path = "/data/journal.db"
	cfg.Journal.TitleMaxLength = 64

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/journal.db", loaded.Database.Path)
	assert.Equal(t, 64, loaded.Journal.TitleMaxLength)
}

func TestFormatEntryDate(t *testing.T) {
	e := JournalEntry{Date: FormatEntryDate(time.Date(2023, time.December, 31, 23, 0, 0, 0, time.Local))}
	assert.Equal(t, "31-12-2023", e.Date)

	parsed, err := e.ParsedDate()
	require.NoError(t, err)
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
}
