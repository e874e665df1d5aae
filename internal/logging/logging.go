// Package logging builds the structured logger used across nbterm.
//
// The terminal belongs to the editor, so log lines never go to stdout or
// stderr while the UI runs: they go to a file, or nowhere.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ValidLevel reports whether name is an accepted level.
func ValidLevel(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range Levels {
		if l == name {
			return true
		}
	}
	return false
}

// New returns a structured JSON logger writing to w at the given level.
// An empty level means "info".
func New(w io.Writer, level string) (pslog.Logger, error) {
	opts := pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "", "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
	return pslog.NewWithOptions(w, opts), nil
}

// Nop returns a logger that discards everything.
func Nop() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
}

// Open returns a logger appending to path, creating parent directories as
// needed. An empty path yields Nop. The returned closer releases the file.
func Open(path, level string) (pslog.Logger, io.Closer, error) {
	if path == "" {
		if !ValidLevel(level) && level != "" {
			return nil, nil, fmt.Errorf("unknown log level %q", level)
		}
		return Nop(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger pslog.Logger) context.Context {
	return pslog.ContextWithLogger(ctx, logger)
}

// FromContext returns the logger stored in ctx.
func FromContext(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}
