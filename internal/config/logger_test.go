package config

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Debug("debug", "k", 1)
	l.Info("info")
	l.Warn("warn", "k", "v")
	l.Error("error", "err", nil)
}

func TestWrapZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := WrapZap(zap.New(core))

	l.Debug("requesting artifact", "url", "https://example.invalid/a", "depth", 2)
	l.Info("installed", "bytes", int64(1048576))
	l.Warn("could not remove partial download", "path", "/tmp/x.tmp")
	l.Error("download failed", "error", "boom")

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
	}

	fields := entries[0].ContextMap()
	if fields["url"] != "https://example.invalid/a" {
		t.Errorf("url field = %v", fields["url"])
	}
	if fields["depth"] != int64(2) {
		t.Errorf("depth field = %v (%T)", fields["depth"], fields["depth"])
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("empty level is silent", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := NewLogger("", &buf)
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		l.Error("should not appear")
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := NewLogger("warn", &buf)
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		l.Info("hidden message")
		l.Warn("visible message", "key", "value")

		out := buf.String()
		if strings.Contains(out, "hidden message") {
			t.Errorf("info logged at warn level: %q", out)
		}
		if !strings.Contains(out, "visible message") || !strings.Contains(out, "value") {
			t.Errorf("output = %q, want warn entry with fields", out)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewLogger("loud", &bytes.Buffer{})
		if !ConfigError.Has(err) {
			t.Errorf("NewLogger() error = %v, want ConfigError", err)
		}
	})
}
