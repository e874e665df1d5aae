package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type logCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *logCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"", false, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			capture := &logCapture{}
			logger, err := New(capture, tt.level)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Debug("debug line")
			logger.Info("info line")
			out := capture.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v: %s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v: %s", got, tt.wantInfo, out)
			}
		})
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New(&logCapture{}, "loud"); err == nil {
		t.Error("New(loud) succeeded")
	}
	if ValidLevel("loud") || !ValidLevel(" Warn ") {
		t.Error("ValidLevel() misclassified")
	}
}

func TestStructuredFields(t *testing.T) {
	capture := &logCapture{}
	logger, err := New(capture, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.With("tab", "intro.ipynb").Info("saved", "cells", 3)

	out := capture.String()
	for _, want := range []string{`"tab":"intro.ipynb"`, `"cells":3`, "saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %s", out, want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nbterm.log")
	logger, closer, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("hello file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	logger, closer, err := Open("", "debug")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if _, _, err := Open("", "loud"); err == nil {
		t.Error("Open with bad level succeeded")
	}
}

func TestContextRoundTrip(t *testing.T) {
	capture := &logCapture{}
	logger, _ := New(capture, "info")
	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info("from context")
	if !strings.Contains(capture.String(), "from context") {
		t.Error("logger not recovered from context")
	}
}
