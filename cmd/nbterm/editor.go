package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Hina-Kagiyama/nbterm/internal/app"
	"github.com/Hina-Kagiyama/nbterm/internal/logging"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
)

type editorOptions struct {
	files      []string
	configPath string
	logLevel   string
	logFile    string
	readOnly   bool
	noScript   bool
}

// errNotTerminal is returned when stdin or stdout is redirected.
var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func runEditor(cmd *cobra.Command, opts editorOptions) error {
	if opts.logLevel != "" && !logging.ValidLevel(opts.logLevel) {
		return fmt.Errorf("invalid log level %q (must be one of trace, debug, info, warn, error)", opts.logLevel)
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	level, file := cfg.Log.Level, cfg.Log.File
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if opts.logFile != "" {
		file = opts.logFile
	}
	logger, closer, err := logging.Open(file, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := backend.NewTerminal()
	if err != nil {
		return app.NewComponentError("backend", "create terminal", err)
	}

	a, err := app.New(app.Options{
		Config:   cfg,
		Files:    opts.files,
		NoScript: opts.noScript,
		ReadOnly: opts.readOnly,
		Backend:  screen,
		Logger:   logger.With("component", "nbterm"),
	})
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}
	if err := a.Run(); err != nil {
		logger.Error("editor failed", "err", err)
		return err
	}
	logger.Info("editor exited")
	return nil
}
