package session

import (
	"testing"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

func TestPaneFocus(t *testing.T) {
	s := newTestSession(t, "")
	run(s, "toggle-outline", "toggle-symbols", "switch-to-ui-cursor-mode")
	if s.Panes().Focus != FocusLeft {
		t.Fatalf("Focus = %v, want left", s.Panes().Focus)
	}
	want := []Focus{FocusEditor, FocusRight, FocusRight}
	for i, w := range want {
		run(s, "to-right-pane")
		if got := s.Panes().Focus; got != w {
			t.Errorf("to-right-pane #%d: Focus = %v, want %v", i+1, got, w)
		}
	}
	run(s, "to-left-pane", "to-upper-pane")
	if got := s.Panes().Focus; got != FocusTabline {
		t.Errorf("Focus = %v, want tabline", got)
	}
	run(s, "to-lower-pane")
	if got := s.Panes().Focus; got != FocusEditor {
		t.Errorf("Focus = %v, want editor", got)
	}
	run(s, "switch-to-normal-mode")
	if got := s.Panes().Focus; got != FocusEditor {
		t.Errorf("Focus = %v after leaving ui-cursor mode", got)
	}
}

func TestPaneFocusFromNormal(t *testing.T) {
	s := newTestSession(t, "")
	run(s, "to-left-pane")
	if s.Mode() != mode.Normal || s.Panes().Focus != FocusEditor {
		t.Fatalf("without panes: Mode() = %v, Focus = %v", s.Mode(), s.Panes().Focus)
	}

	run(s, "toggle-outline", "to-left-pane")
	if s.Mode() != mode.UICursor || s.Panes().Focus != FocusLeft {
		t.Errorf("Mode() = %v, Focus = %v; want ui-cursor on the left pane", s.Mode(), s.Panes().Focus)
	}
	run(s, "switch-to-normal-mode", "to-upper-pane")
	if s.Mode() != mode.UICursor || s.Panes().Focus != FocusTabline {
		t.Errorf("Mode() = %v, Focus = %v; want ui-cursor on the tabline", s.Mode(), s.Panes().Focus)
	}
}

func TestOutlineActivation(t *testing.T) {
	s := New(WithClipboard(nil))
	nb := notebook.New()
	nb.PushMarkdownCell(notebook.SplitLines("# One"))
	nb.PushCodeCell(notebook.SplitLines("x = 1"), nil, nil)
	nb.PushMarkdownCell(notebook.SplitLines("text\n## Two"))
	s.AddTab(NewTab(nb, ""))

	run(s, "toggle-outline", "switch-to-ui-cursor-mode", "to-lower-pane", "to-lower-pane", "execute-command-line")
	if got := s.Focused().Cursor; got != (Cursor{Cell: 2, Line: 1}) {
		t.Errorf("Cursor = %+v, want the second heading", got)
	}
	if s.Mode() != mode.Normal {
		t.Errorf("Mode() = %v, want normal", s.Mode())
	}
}

func TestSettingsActivation(t *testing.T) {
	s := newTestSession(t, "")
	run(s, "toggle-settings", "switch-to-ui-cursor-mode")
	for range SettingNames {
		if SettingNames[s.Panes().LeftIndex] == "word_wrap" {
			break
		}
		run(s, "to-lower-pane")
	}
	run(s, "execute-command-line")
	if !s.Settings().WordWrap {
		t.Error("WordWrap not toggled")
	}
	if s.Mode() != mode.UICursor {
		t.Errorf("Mode() = %v, want to stay in ui-cursor mode", s.Mode())
	}
}

func TestVariablesActivation(t *testing.T) {
	s := newTestSession(t, "import os", "a = 1\nb = 2")
	run(s, "toggle-variables", "switch-to-ui-cursor-mode", "to-lower-pane", "execute-command-line")
	if got := s.Focused().Cursor; got != (Cursor{Cell: 1, Line: 1}) {
		t.Errorf("Cursor = %+v, want b", got)
	}
}
