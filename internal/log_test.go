package internal

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestLoggerLevels(t *testing.T) {
	t.Run("warn level suppresses info", func(t *testing.T) {
		logger := NewLogger(LogLevelWarn)
		out := captureLog(t, func() {
			logger.Error("broke: %d", 1)
			logger.Warn("degraded")
			logger.Info("routine")
		})
		if !strings.Contains(out, "[ERROR] broke: 1") {
			t.Errorf("Expected error line, got %q", out)
		}
		if !strings.Contains(out, "[WARN] degraded") {
			t.Errorf("Expected warn line, got %q", out)
		}
		if strings.Contains(out, "routine") {
			t.Errorf("Info should be suppressed at warn level, got %q", out)
		}
	})

	t.Run("lines carry the service name", func(t *testing.T) {
		logger := NewLogger(LogLevelInfo)
		out := captureLog(t, func() {
			logger.Info("listening")
		})
		if !strings.Contains(out, "copulagof [INFO] listening") {
			t.Errorf("Expected prefixed line, got %q", out)
		}
	})
}

func TestNewDefaultLogger(t *testing.T) {
	t.Run("LOG_LEVEL selects the level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "ERROR")
		logger := NewDefaultLogger()
		out := captureLog(t, func() {
			logger.Warn("quiet")
		})
		if out != "" {
			t.Errorf("Warn should be suppressed at error level, got %q", out)
		}
	})

	t.Run("defaults to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		logger := NewDefaultLogger()
		out := captureLog(t, func() {
			logger.Info("up")
		})
		if !strings.Contains(out, "[INFO] up") {
			t.Errorf("Expected info line at default level, got %q", out)
		}
	})
}
