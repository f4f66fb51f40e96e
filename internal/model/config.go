package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds where the journal database lives.
type DatabaseConfig struct {
	// Path is the SQLite file. ":memory:" is accepted for throwaway runs.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// File, when set, sends log output to a rotating file instead of stderr.
	File string `mapstructure:"file" yaml:"file"`

	MaxSizeMB  int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// WebConfig holds settings for the optional HTTP variant.
type WebConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// JournalConfig holds presentation-side journal rules.
type JournalConfig struct {
	TitleMaxLength int `mapstructure:"title_max_length" yaml:"title_max_length"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Web      WebConfig      `mapstructure:"web" yaml:"web"`
	Journal  JournalConfig  `mapstructure:"journal" yaml:"journal"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/yournal/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "yournal", "config.yaml")
}

// DefaultDatabasePath returns ~/.local/share/yournal/journal.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.db"
	}
	return filepath.Join(home, ".local", "share", "yournal", "journal.db")
}

// DefaultLogPath returns ~/.local/state/yournal/yournal.log.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "yournal.log"
	}
	return filepath.Join(home, ".local", "state", "yournal", "yournal.log")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Web:     WebConfig{Addr: "127.0.0.1:8080"},
		Journal: JournalConfig{TitleMaxLength: TitleMaxLength},
		Display: DisplayConfig{Theme: "default"},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns the default configuration.
// Environment variables prefixed with YOURNAL_ override file values,
// e.g. YOURNAL_DATABASE_PATH.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("yournal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultAppConfig()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("web.addr", def.Web.Addr)
	v.SetDefault("journal.title_max_length", def.Journal.TitleMaxLength)
	v.SetDefault("display.theme", def.Display.Theme)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Journal.TitleMaxLength <= 0 {
		cfg.Journal.TitleMaxLength = TitleMaxLength
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("log", cfg.Log)
	v.Set("web", cfg.Web)
	v.Set("journal", cfg.Journal)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
