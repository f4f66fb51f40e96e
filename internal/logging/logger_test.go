package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/yournal/internal/model"
)

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup(model.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "yournal.log")

	closer, err := Setup(model.LogConfig{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = closer.Close()
		_, _ = Setup(model.LogConfig{Level: "info"})
	})

	assert.Equal(t, clog.DebugLevel, L.GetLevel())
	L.Info("entry added", "number", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entry added")
	assert.Contains(t, string(data), "number=3")
}

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Info("hello", "number", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "number=1")
}
