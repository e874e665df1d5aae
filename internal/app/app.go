// Package app runs the editor: it loads the configuration and init
// script, opens the requested notebooks, then drives the control loop
// that polls the terminal, translates keys, applies commands and redraws.
package app

import (
	"errors"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/Hina-Kagiyama/nbterm/internal/config"
	"github.com/Hina-Kagiyama/nbterm/internal/input"
	"github.com/Hina-Kagiyama/nbterm/internal/logging"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
	"github.com/Hina-Kagiyama/nbterm/internal/script"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
	"pkt.systems/pslog"
)

// DefaultPollTimeout bounds each wait for a terminal event.
const DefaultPollTimeout = 250 * time.Millisecond

// Application owns the session and the terminal for one run.
type Application struct {
	session    *session.Session
	translator *input.Translator
	renderer   *renderer.Renderer
	backend    backend.Backend
	log        pslog.Logger

	poll    time.Duration
	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the decoded configuration. Nil means the built-in defaults.
	Config *config.Config

	// Files are opened in order, one tab each.
	Files []string

	// ScriptPath is the Lua file run at startup. Empty means init.lua next
	// to the configuration file.
	ScriptPath string

	// NoScript skips the init script.
	NoScript bool

	// ReadOnly opens every tab read-only.
	ReadOnly bool

	// Backend is the terminal. Required.
	Backend backend.Backend

	Logger pslog.Logger

	// PollTimeout overrides DefaultPollTimeout.
	PollTimeout time.Duration

	// Session options applied after the configured ones.
	SessionOptions []session.Option
}

// LoadConfig reads the configuration file at path, or the default path
// when empty, and applies NBTERM_* environment overrides.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, NewOperationError("load config", path, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, NewOperationError("load config", path, err).WithContext("environment")
	}
	return cfg, nil
}

// New builds the session from opts. A notebook that exists but cannot be
// loaded fails startup before the terminal is touched.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, NewComponentError("backend", "", errors.New("no backend"))
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	keys, err := cfg.Keymaps()
	if err != nil {
		return nil, NewOperationError("load config", cfg.Path, err).WithContext("keys")
	}
	settings := cfg.Settings()

	var startup script.Result
	startup.Keys, startup.Settings = keys, settings
	if !opts.NoScript {
		if path := scriptPath(opts.ScriptPath, cfg); path != "" {
			// Script errors are logged and leave the configuration as it was.
			startup, _ = script.Run(path, keys, settings, script.WithLogger(log))
		}
	}
	if opts.ReadOnly {
		startup.Settings.ReadOnly = true
	}

	sopts := []session.Option{
		session.WithLogger(log),
		session.WithSettings(startup.Settings),
	}
	s := session.New(append(sopts, opts.SessionOptions...)...)
	for _, f := range opts.Files {
		if err := s.Open(f); err != nil {
			return nil, NewOperationError("open", f, err)
		}
	}
	for _, cmd := range startup.Commands {
		s.Execute(cmd)
	}

	poll := opts.PollTimeout
	if poll <= 0 {
		poll = DefaultPollTimeout
	}
	return &Application{
		session:    s,
		translator: input.NewTranslator(startup.Keys),
		renderer:   renderer.New(opts.Backend, cfg.ResolvedTheme()),
		backend:    opts.Backend,
		log:        log,
		poll:       poll,
	}, nil
}

func scriptPath(path string, cfg *config.Config) string {
	if path != "" {
		return path
	}
	if cfg.Path != "" {
		return filepath.Join(filepath.Dir(cfg.Path), config.ScriptName)
	}
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, config.ScriptName)
}

// Session returns the editor session.
func (a *Application) Session() *session.Session {
	return a.session
}

// Renderer returns the renderer drawing the session.
func (a *Application) Renderer() *renderer.Renderer {
	return a.renderer
}

// Run initializes the terminal and runs the control loop until the session
// quits. The terminal is restored on every exit path, panics included.
func (a *Application) Run() (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer a.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			perr := newRecoveredPanic(r)
			a.log.Error("event loop panic", "err", perr.Value, "stack", perr.Stack)
			err = perr
		}
	}()

	stop := a.watchSignals()
	defer stop()

	a.log.Info("editor started", "tabs", len(a.session.Tabs()))
	err = a.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Running reports whether Run is active.
func (a *Application) Running() bool {
	return a.running.Load()
}
