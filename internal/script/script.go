package script

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/keymap"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/logging"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
	lua "github.com/yuin/gopher-lua"
	"pkt.systems/pslog"
)

// DefaultTimeout bounds the run time of a script.
const DefaultTimeout = 5 * time.Second

// Error wraps a failure while running a script.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the state produced by a script.
type Result struct {
	Keys     *keymap.Set
	Settings session.Settings

	// Commands are applied to the session in order once it starts.
	Commands []command.Command
}

// Runner executes init scripts against a key set and settings.
//
// A Runner owns a single Lua state and is not safe for concurrent use.
type Runner struct {
	L       *lua.LState
	result  Result
	log     pslog.Logger
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used by nbterm.log and for script errors.
func WithLogger(l pslog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTimeout bounds the run time of each script.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// New creates a runner starting from keys and settings.
func New(keys *keymap.Set, st session.Settings, opts ...Option) *Runner {
	if keys == nil {
		keys = keymap.Default()
	}
	r := &Runner{
		result:  Result{Keys: keys, Settings: st},
		log:     logging.Nop(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.install()
	return r
}

// openSafeLibraries opens only the Lua libraries without system access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.L.Close()
}

// Result returns the keys, settings and commands produced so far.
func (r *Runner) Result() Result {
	return r.result
}

// DoString runs code. name is used in error messages.
func (r *Runner) DoString(name, code string) error {
	return r.do(name, func() error { return r.L.DoString(code) })
}

// DoFile runs the script at path. A missing file is not an error.
func (r *Runner) DoFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return r.do(path, func() error { return r.L.DoFile(path) })
}

func (r *Runner) do(name string, fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if p := recover(); p != nil {
			err = &Error{Path: name, Err: fmt.Errorf("lua panic: %v", p)}
		}
		if err != nil {
			r.log.Warn("script failed", "script", name, "err", err)
		}
	}()
	if err := fn(); err != nil {
		return &Error{Path: name, Err: err}
	}
	r.log.Debug("script done", "script", name, "commands", len(r.result.Commands))
	return nil
}

// Run executes the script at path and returns its result.
func Run(path string, keys *keymap.Set, st session.Settings, opts ...Option) (Result, error) {
	r := New(keys, st, opts...)
	defer r.Close()
	if err := r.DoFile(path); err != nil {
		return Result{Keys: keys, Settings: st}, err
	}
	return r.Result(), nil
}

func (r *Runner) install() {
	api := r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"bind":    r.bind,
		"unbind":  r.unbind,
		"set":     r.set,
		"get":     r.get,
		"command": r.command,
		"options": r.options,
		"log":     r.logLine,
	})
	r.L.SetGlobal("nbterm", api)
}

func checkMode(L *lua.LState, n int) mode.Mode {
	name := L.CheckString(n)
	m, ok := mode.ParseMode(name)
	if !ok {
		L.ArgError(n, fmt.Sprintf("unknown mode %q", name))
	}
	return m
}

func (r *Runner) bind(L *lua.LState) int {
	m := checkMode(L, 1)
	keys := L.CheckString(2)
	action := L.CheckString(3)
	next, err := r.result.Keys.Rebind(m, keys, action)
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}
	r.result.Keys = next
	return 0
}

func (r *Runner) unbind(L *lua.LState) int {
	m := checkMode(L, 1)
	next, err := r.result.Keys.Unbind(m, L.CheckString(2))
	if err != nil {
		L.RaiseError("unbind: %v", err)
		return 0
	}
	r.result.Keys = next
	return 0
}

func (r *Runner) set(L *lua.LState) int {
	name := L.CheckString(1)
	on := L.OptBool(2, true)
	if err := r.result.Settings.Set(name, on); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (r *Runner) get(L *lua.LState) int {
	v, ok := r.result.Settings.Get(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LBool(v))
	return 1
}

func (r *Runner) command(L *lua.LState) int {
	text := L.CheckString(1)
	cmd, err := command.ParseEx(text)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	r.result.Commands = append(r.result.Commands, cmd)
	return 0
}

func (r *Runner) options(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range command.Options() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

func (r *Runner) logLine(L *lua.LState) int {
	r.log.Info("script", "message", L.CheckString(1))
	return 0
}
