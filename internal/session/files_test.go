package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

func writeNotebook(t *testing.T, path string, cells ...string) {
	t.Helper()
	nb := notebook.New()
	for _, c := range cells {
		nb.PushCodeCell(notebook.SplitLines(c), nil, nil)
	}
	if err := notebook.Save(nb, path); err != nil {
		t.Fatal(err)
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ipynb")
	writeNotebook(t, path, "x = 1", "y = 2")

	s := New(WithClipboard(nil))
	s.Execute(command.Open(path))
	if len(s.Tabs()) != 1 {
		t.Fatalf("len(Tabs()) = %d, want the blank tab replaced", len(s.Tabs()))
	}
	tab := s.Focused()
	if tab.Name != "a.ipynb" || tab.Path != path || tab.Notebook.Len() != 2 || tab.Dirty {
		t.Errorf("tab = %q %q cells=%d dirty=%v", tab.Name, tab.Path, tab.Notebook.Len(), tab.Dirty)
	}

	s.Execute(command.New(command.NewFile))
	s.Execute(command.Open(filepath.Join(dir, ".", "a.ipynb")))
	if len(s.Tabs()) != 2 || s.FocusIndex() != 0 {
		t.Errorf("reopen: tabs=%d focus=%d, want focus on the open tab", len(s.Tabs()), s.FocusIndex())
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "b.ipynb")
	s := New(WithClipboard(nil))
	s.Execute(command.Open(path))
	tab := s.Focused()
	if tab.Path != path || tab.Notebook.Len() != 1 || tab.Dirty {
		t.Fatalf("tab = %q cells=%d dirty=%v", tab.Path, tab.Notebook.Len(), tab.Dirty)
	}

	run(s, "save-file")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("save did not create the file: %v", err)
	}
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ipynb")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(WithClipboard(nil))
	if err := s.Open(path); !errors.Is(err, notebook.ErrParse) {
		t.Errorf("Open() error = %v, want ErrParse", err)
	}
	s.Execute(command.Open(path))
	if s.Status() == "" || s.Focused().Path != "" {
		t.Errorf("Status() = %q, focused path %q", s.Status(), s.Focused().Path)
	}
}

func TestOpenReadOnlySetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.ipynb")
	st := DefaultSettings()
	st.ReadOnly = true
	s := New(WithClipboard(nil), WithSettings(st))
	s.Execute(command.Open(path))
	if !s.Focused().ReadOnly {
		t.Error("tab opened without the read-only flag")
	}
	run(s, "save-file")
	if s.Status() != "read-only" {
		t.Errorf("Status() = %q", s.Status())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ipynb")
	writeNotebook(t, path, "x")

	s := New(WithClipboard(nil))
	s.Execute(command.Open(path))
	run(s, "switch-to-insert-mode", `input "y"`, "switch-to-normal-mode")
	if !s.Focused().Dirty {
		t.Fatal("not dirty after edit")
	}
	run(s, "save-file")
	if s.Focused().Dirty {
		t.Error("still dirty after save")
	}

	nb, err := notebook.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !nb.Equal(s.Focused().Notebook) {
		t.Error("saved notebook differs from the tab")
	}
}

func TestSaveAs(t *testing.T) {
	s := newTestSession(t, "x")
	run(s, "save-file")
	if s.Status() != "no file name" {
		t.Errorf("Status() = %q", s.Status())
	}
	path := filepath.Join(t.TempDir(), "sub", "out.ipynb")
	s.Execute(command.SaveAs(path))
	if s.Focused().Path != path || s.Focused().Name != "out.ipynb" {
		t.Errorf("tab = %q %q", s.Focused().Path, s.Focused().Name)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestSaveAndQuit(t *testing.T) {
	s := newTestSession(t, "x")
	run(s, "save-and-quit")
	if s.Quitting() {
		t.Error("quit although the save failed")
	}
	s.Focused().setPath(filepath.Join(t.TempDir(), "q.ipynb"))
	run(s, "save-and-quit")
	if !s.Quitting() {
		t.Error("not quitting after a successful save")
	}
}

func TestFilePicker(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ipynb", "a.ipynb", "notes.txt", ".hidden.ipynb"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := NewFilePicker(dir)
	if err := p.Refresh(); err != nil {
		t.Fatal(err)
	}
	want := []string{"../", "sub/", "a.ipynb", "b.ipynb"}
	if len(p.Entries) != len(want) {
		t.Fatalf("Entries = %v, want %v", p.Entries, want)
	}
	for i := range want {
		if p.Entries[i] != want[i] {
			t.Errorf("Entries[%d] = %q, want %q", i, p.Entries[i], want[i])
		}
	}
	if path, isDir := p.Path(1); !isDir || path != filepath.Join(dir, "sub") {
		t.Errorf("Path(1) = %q, %v", path, isDir)
	}
	if path, isDir := p.Path(2); isDir || path != filepath.Join(dir, "a.ipynb") {
		t.Errorf("Path(2) = %q, %v", path, isDir)
	}
}

func TestPickerActivation(t *testing.T) {
	dir := t.TempDir()
	writeNotebook(t, filepath.Join(dir, "a.ipynb"), "x")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	s := New(WithClipboard(nil), WithPickerDir(dir))
	run(s, "toggle-file-picker", "switch-to-ui-cursor-mode")
	if s.Panes().Focus != FocusLeft {
		t.Fatalf("Focus = %v, want left", s.Panes().Focus)
	}
	run(s, "to-lower-pane", "execute-command-line")
	if s.Picker().Dir != filepath.Join(dir, "sub") {
		t.Fatalf("Dir = %q, want sub", s.Picker().Dir)
	}

	run(s, "execute-command-line")
	if s.Picker().Dir != dir {
		t.Fatalf("Dir = %q after ../", s.Picker().Dir)
	}
	run(s, "to-lower-pane", "to-lower-pane", "execute-command-line")
	if s.Focused().Name != "a.ipynb" {
		t.Errorf("focused = %q, want a.ipynb", s.Focused().Name)
	}
	if s.Panes().Focus != FocusEditor {
		t.Errorf("Focus = %v after opening", s.Panes().Focus)
	}
}
