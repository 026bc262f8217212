package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"minigrep/internal/config"
)

func TestProvideLoggerLocal(t *testing.T) {
	cfg := config.Default()

	l, err := ProvideLogger(cfg)
	if err != nil {
		t.Fatalf("ProvideLogger failed: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be disabled at the default warn level")
	}
}

func TestProvideLoggerProdWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Env = "prod"
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := ProvideLogger(cfg)
	if err != nil {
		t.Fatalf("ProvideLogger failed: %v", err)
	}
	l.Info("search finished")
	_ = l.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"search finished"`) {
		t.Fatalf("expected JSON entry in log file, got %q", data)
	}
}

func TestProvideLoggerBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"

	if _, err := ProvideLogger(cfg); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
