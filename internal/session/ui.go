package session

import (
	"strings"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// executeCommandLine runs the submitted command line after returning to
// Normal mode.
func (s *Session) executeCommandLine() {
	if s.Mode() != mode.Command {
		return
	}
	prefix, text := s.cmdline.submit()
	s.switchMode(mode.Normal, "")
	if prefix == "/" {
		s.search(text)
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	cmd, err := command.ParseEx(text)
	if err != nil {
		s.log.Debug("unknown command", "input", text, "err", err)
		s.setStatus(err.Error())
		return
	}
	s.apply(cmd)
}

// SettingNames lists the options shown by the settings pane, in order.
var SettingNames = command.Options()

// paneRows returns the number of selectable rows of the focused side pane.
func (s *Session) paneRows() int {
	switch s.panes.Focus {
	case FocusLeft:
		switch s.panes.Left {
		case LeftFilePicker:
			return len(s.picker.Entries)
		case LeftOutline:
			return len(Outline(s.Focused().Notebook))
		case LeftSettings:
			return len(SettingNames)
		}
	case FocusRight:
		switch s.panes.Right {
		case RightSymbols:
			return len(Symbols(s.Focused().Notebook))
		case RightVariables:
			return len(Variables(s.Focused().Notebook))
		}
	}
	return 0
}

// moveVertical moves the highlighted row of the focused side pane, or the
// focus between the tab line and the editor.
func (s *Session) moveVertical(dir int) {
	p := &s.panes
	switch p.Focus {
	case FocusLeft:
		p.LeftIndex = clamp(p.LeftIndex+dir, 0, s.paneRows()-1)
	case FocusRight:
		p.RightIndex = clamp(p.RightIndex+dir, 0, s.paneRows()-1)
	case FocusEditor:
		if dir < 0 && p.Tabline {
			p.Focus = FocusTabline
		}
	case FocusTabline:
		if dir > 0 {
			p.Focus = FocusEditor
		}
	}
}

// activatePane acts on the highlighted row of the focused pane and
// returns to Normal mode unless a directory was entered.
func (s *Session) activatePane() {
	p := &s.panes
	t := s.Focused()
	switch p.Focus {
	case FocusLeft:
		switch p.Left {
		case LeftFilePicker:
			path, dir := s.picker.Path(p.LeftIndex)
			if path == "" {
				break
			}
			if dir {
				if err := s.picker.Enter(path); err != nil {
					s.setStatus(err.Error())
				}
				p.LeftIndex = 0
				return
			}
			s.switchMode(mode.Normal, "")
			s.openFile(path)
			return
		case LeftOutline:
			if items := Outline(t.Notebook); p.LeftIndex < len(items) {
				it := items[p.LeftIndex]
				t.Cursor = Cursor{Cell: it.Cell, Line: it.Line}
			}
		case LeftSettings:
			if p.LeftIndex < len(SettingNames) {
				name := SettingNames[p.LeftIndex]
				if name == command.OptReadOnly {
					t.ReadOnly = !t.ReadOnly
				} else {
					s.settings.toggle(name)
				}
			}
			return
		}
	case FocusRight:
		var syms []Symbol
		if p.Right == RightSymbols {
			syms = Symbols(t.Notebook)
		} else {
			syms = Variables(t.Notebook)
		}
		if p.RightIndex < len(syms) {
			sym := syms[p.RightIndex]
			t.Cursor = Cursor{Cell: sym.Cell, Line: sym.Line}
		}
	}
	s.switchMode(mode.Normal, "")
}
