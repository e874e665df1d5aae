package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/config"
	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
)

type nopClipboard struct{}

func (nopClipboard) ReadAll() (string, error) { return "", nil }
func (nopClipboard) WriteAll(string) error    { return nil }

func newApp(t *testing.T, b backend.Backend, opts Options) *Application {
	t.Helper()
	opts.Backend = b
	opts.PollTimeout = 10 * time.Millisecond
	if opts.ScriptPath == "" {
		opts.NoScript = true
	}
	opts.SessionOptions = append(opts.SessionOptions,
		session.WithClipboard(nopClipboard{}),
		session.WithPickerDir(t.TempDir()),
	)
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return a
}

func keys(b backend.Backend, specs ...string) {
	for _, s := range specs {
		b.PostEvent(backend.Event{Type: backend.EventKey, Key: key.MustParse(s)})
	}
}

func runApp(t *testing.T, a *Application) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
		return nil
	}
}

func TestNewRequiresBackend(t *testing.T) {
	_, err := New(Options{NoScript: true})
	var ce *ComponentError
	if !errors.As(err, &ce) || ce.Component != "backend" {
		t.Fatalf("New() error = %v, want backend ComponentError", err)
	}
}

func TestRunQuit(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{})
	keys(b, "<C-q>")

	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if !a.Session().Quitting() {
		t.Error("session is not quitting")
	}
	if !b.IsShutdown() {
		t.Error("backend was not shut down")
	}
	if a.Running() {
		t.Error("Running() = true after Run returned")
	}
	if a.Renderer().FrameCount() == 0 {
		t.Error("no frame was drawn")
	}
}

func TestRunEditAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.ipynb")
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{Files: []string{path}})

	keys(b, "i", "a", "b", "Esc", ":", "w", "Enter", "<C-q>")
	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	nb, err := notebook.Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if nb.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", nb.Len())
	}
	if got := nb.Cell(0).Common().Text(); got != "ab" {
		t.Errorf("cell text = %q, want %q", got, "ab")
	}
	if a.Session().Focused().Dirty {
		t.Error("tab still dirty after :w")
	}
	if a.Session().Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal", a.Session().Mode())
	}
}

func TestRunPaste(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{})

	keys(b, "i")
	b.PostEvent(backend.Event{Type: backend.EventPaste, Text: "x = 1\ny = 2"})
	keys(b, "Esc", "<C-q>")
	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if got := a.Session().Focused().Cell().Common().Text(); got != "x = 1\ny = 2" {
		t.Errorf("cell text = %q", got)
	}
}

func TestRunInterrupt(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{})
	b.PostEvent(backend.Event{Type: backend.EventInterrupt})

	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !a.Session().Quitting() {
		t.Error("interrupt did not quit")
	}
}

func TestRunDrawsFrame(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{})
	keys(b, "<C-q>")
	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if got := b.Row(8); !strings.HasPrefix(got, "[Nor]") {
		t.Errorf("status row = %q, want mode label first", got)
	}
}

type failingBackend struct {
	*backend.NullBackend
	err error
}

func (f failingBackend) Init() error { return f.err }

func TestRunInitFailure(t *testing.T) {
	initErr := errors.New("no tty")
	b := failingBackend{NullBackend: backend.NewNullBackend(10, 5), err: initErr}
	a := newApp(t, b, Options{})

	err := a.Run()
	if !errors.Is(err, initErr) {
		t.Fatalf("Run() = %v, want %v", err, initErr)
	}
	var ce *ComponentError
	if !errors.As(err, &ce) || ce.Action != "init" {
		t.Errorf("Run() error = %#v, want init ComponentError", err)
	}
}

type panickingBackend struct {
	*backend.NullBackend
}

func (panickingBackend) PollEvent(time.Duration) backend.Event {
	panic("poll exploded")
}

func TestRunPanicRestoresTerminal(t *testing.T) {
	b := panickingBackend{backend.NewNullBackend(20, 5)}
	a := newApp(t, b, Options{})

	err := runApp(t, a)
	var pe *RecoveredPanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Run() = %v, want RecoveredPanicError", err)
	}
	if pe.Value != "poll exploded" {
		t.Errorf("panic value = %v", pe.Value)
	}
	if !b.IsShutdown() {
		t.Error("backend was not shut down after panic")
	}
}

func TestResizeSetsPageSize(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = "x\n"
	}
	nb := notebook.New()
	nb.PushCodeCell(lines, nil, nil)
	path := filepath.Join(t.TempDir(), "long.ipynb")
	if err := notebook.Save(nb, path); err != nil {
		t.Fatal(err)
	}

	b := backend.NewNullBackend(40, 10)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	a := newApp(t, b, Options{Files: []string{path}})
	b.Resize(40, 30)
	if err := a.handleBackendEvent(backend.Event{Type: backend.EventResize, Width: 40, Height: 30}); err != nil {
		t.Fatalf("handleBackendEvent() = %v", err)
	}

	a.Session().Execute(command.MustParse("navigate page-down"))
	want := renderer.EditorHeight(a.Session(), 30)
	if got := a.Session().Focused().Cursor.Line; got != want {
		t.Errorf("cursor line after page-down = %d, want %d", got, want)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{})
	before := a.Session().Focused().Cell().Common().Text()

	err := a.handleBackendEvent(backend.Event{Type: backend.EventKey, Key: key.MustParse("<C-w>")})
	if err != nil {
		t.Fatalf("handleBackendEvent() = %v", err)
	}
	if got := a.Session().Focused().Cell().Common().Text(); got != before {
		t.Errorf("text changed to %q", got)
	}
	if a.Session().Mode() != mode.Normal {
		t.Errorf("mode = %v", a.Session().Mode())
	}
}

func TestNewOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ipynb")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{Backend: backend.NewNullBackend(10, 5), NoScript: true, Files: []string{path}})
	var oe *OperationError
	if !errors.As(err, &oe) {
		t.Fatalf("New() = %v, want OperationError", err)
	}
	if oe.Op != "open" || oe.Target != path {
		t.Errorf("OperationError = %+v", oe)
	}
	if !errors.Is(err, notebook.ErrParse) {
		t.Errorf("errors.Is(err, ErrParse) = false for %v", err)
	}
}

func TestNewReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ipynb")
	a := newApp(t, backend.NewNullBackend(10, 5), Options{Files: []string{path}, ReadOnly: true})
	if !a.Session().Focused().ReadOnly {
		t.Error("tab is not read-only")
	}
}

func TestStartupScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, config.ScriptName)
	code := `
nbterm.bind("normal", "q", "quit")
nbterm.set("line_numbers", false)
nbterm.command("set wrap")
`
	if err := os.WriteFile(script, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{ScriptPath: script})
	st := a.Session().Settings()
	if st.LineNumbers {
		t.Error("line_numbers still on")
	}
	if !st.WordWrap {
		t.Error("startup command did not enable wrap")
	}

	keys(b, "q")
	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !a.Session().Quitting() {
		t.Error("script binding did not quit")
	}
}

func TestStartupScriptError(t *testing.T) {
	script := filepath.Join(t.TempDir(), config.ScriptName)
	code := `nbterm.set("line_numbers", false)
error("boom")`
	if err := os.WriteFile(script, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newApp(t, backend.NewNullBackend(10, 5), Options{ScriptPath: script})
	if !a.Session().Settings().LineNumbers {
		t.Error("failed script changed settings")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	data := "[editor]\ntab_width = 8\n\n[keys.normal]\n\"q\" = \"quit\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}

	b := backend.NewNullBackend(40, 10)
	a := newApp(t, b, Options{Config: cfg})
	keys(b, "q")
	if err := runApp(t, a); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !a.Session().Quitting() {
		t.Error("configured binding did not quit")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("[editor]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	var oe *OperationError
	if !errors.As(err, &oe) || oe.Op != "load config" {
		t.Fatalf("LoadConfig() = %v, want load config OperationError", err)
	}
	var pe *config.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("LoadConfig() error does not wrap config.ParseError: %v", err)
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Editor.TabWidth != config.Default().Editor.TabWidth {
		t.Errorf("TabWidth = %d, want default", cfg.Editor.TabWidth)
	}
}
