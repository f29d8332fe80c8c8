package main

import (
	"testing"

	"github.com/atomicstack/menu-overlay/internal/app"
	"github.com/atomicstack/menu-overlay/internal/config"
	"github.com/atomicstack/menu-overlay/internal/menu"
)

func TestCollectTTYDetailsProbesStandardDescriptors(t *testing.T) {
	probes := collectTTYDetails()
	expected := []string{"stdin", "stdout", "stderr"}
	if len(probes) != len(expected) {
		t.Fatalf("expected %d probes, got %d", len(expected), len(probes))
	}
	for i, name := range expected {
		if probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			InputPath:       "/tmp/menu.fifo",
			Width:           50,
			MaxVisibleItems: 5,
			Align:           menu.AlignCenter,
			Interactive:     true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"input":       "/tmp/menu.fifo",
			"width":       "50",
			"maxVisible":  "5",
			"align":       "center",
			"interactive": "true",
		},
		Args: []string{"--input", "/tmp/menu.fifo", "--interactive"},
	}

	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["input"] != "/tmp/menu.fifo" {
		t.Fatalf("expected input flag, got %v", flags["input"])
	}
	if flags["maxVisible"] != "5" {
		t.Fatalf("expected maxVisible 5, got %v", flags["maxVisible"])
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flags["logFile"])
	}
	if payload["hostInput"] != "/tmp/menu.fifo" {
		t.Fatalf("expected host input path, got %v", payload["hostInput"])
	}
	if _, ok := payload["tty"].([]ttyProbe); !ok {
		t.Fatalf("expected tty probes in payload")
	}
	if got, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if got.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, got.App)
	}
}

func TestStartupTracePayloadDefaultsToStdin(t *testing.T) {
	payload := startupTracePayload(config.Config{})
	if payload["hostInput"] != "stdin" {
		t.Fatalf("expected stdin host input, got %v", payload["hostInput"])
	}
}
