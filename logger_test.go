package viz

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger must be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("projection pass", "points", 12)
	if !strings.Contains(buf.String(), "projection pass") {
		t.Errorf("log output %q missing the message", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
