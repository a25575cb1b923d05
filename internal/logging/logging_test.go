package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("New(\"\") should return a no-op logger")
	}
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hstr.log")

	logger, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("loaded history", zap.Int("entries", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	line := strings.TrimSpace(string(data))

	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if rec["msg"] != "loaded history" {
		t.Errorf("msg = %v, want %q", rec["msg"], "loaded history")
	}
	if rec["entries"] != float64(3) {
		t.Errorf("entries = %v, want 3", rec["entries"])
	}
}
