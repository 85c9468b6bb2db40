package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("  ", true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("nop logger should not enable debug")
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recetas.log")

	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("open recipe")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"open recipe"`) {
		t.Fatalf("log output = %q, want it to contain the message", out)
	}
	if !strings.Contains(out, `"logger":"recetas"`) {
		t.Fatalf("log output = %q, want named logger", out)
	}
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recetas.log")

	logger, err := New(path, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug entry written at info level: %q", data)
	}
	if !strings.Contains(string(data), "shown") {
		t.Fatalf("info entry missing: %q", data)
	}
}
