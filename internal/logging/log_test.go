package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// These tests mutate package state and must not run in parallel.

func TestLoggerNeverNil(t *testing.T) {
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
}

func TestSetLoggerRoutesRecords(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("found file in path", "path", "/usr/bin/tool")

	if !strings.Contains(buf.String(), "path=/usr/bin/tool") {
		t.Errorf("log output %q missing path attribute", buf.String())
	}
}

func TestDefaultLoggerIsCached(t *testing.T) {
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() != Logger() {
		t.Error("default logger should be cached between calls")
	}
}

func TestSetLoggerNilFollowsSlogDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		SetLogger(nil)
	})

	Logger() // cache a tagged default derived from prev

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)

	Logger().Debug("path variable not set", "env", "SEARCHPATH")

	out := buf.String()
	if !strings.Contains(out, "component=procenv") || !strings.Contains(out, "env=SEARCHPATH") {
		t.Errorf("log output %q, want a record tagged component=procenv", out)
	}
}
