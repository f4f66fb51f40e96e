// Package logging holds the application logger. Terminal sessions log to
// a rotating file because stdout belongs to the UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nhle/yournal/internal/model"
)

// L is the package-level logger shared by the store callers and the
// presentation layers.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "yournal",
})

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup applies cfg to L. When cfg.File is set, output goes to a
// lumberjack-rotated file and the returned Closer releases it.
func Setup(cfg model.LogConfig) (io.Closer, error) {
	level := clog.InfoLevel
	if cfg.Level != "" {
		parsed, err := clog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	L.SetLevel(level)

	if cfg.File == "" {
		L.SetOutput(os.Stderr)
		L.SetFormatter(clog.TextFormatter)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := NewFileWriter(cfg)
	L.SetOutput(w)
	L.SetFormatter(clog.LogfmtFormatter)
	return w, nil
}

// NewFileWriter returns a rotating writer for cfg.File.
func NewFileWriter(cfg model.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

// New returns a logger writing to w, used where a component needs its own
// sink (tests, the web access log).
func New(w io.Writer) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{Prefix: "yournal"})
}
