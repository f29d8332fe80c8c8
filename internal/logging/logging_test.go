package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "overlay.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := useTempLog(t)

	Trace("ignored.before", nil)
	SetTraceEnabled(true)
	Trace("menu.open", map[string]interface{}{"items": 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single trace line, got %d: %q", len(lines), data)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "menu.open" {
		t.Fatalf("expected menu.open, got %q", entry.Event)
	}
	if entry.Payload["items"] != float64(3) {
		t.Fatalf("expected items payload 3, got %v", entry.Payload["items"])
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("input closed"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "input closed") {
		t.Fatalf("expected error text in log, got %q", data)
	}
}

func TestConfigureEmptyPathRestoresDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected default path, got %q", got)
	}
}
