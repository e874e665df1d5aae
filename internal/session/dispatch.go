package session

import (
	"fmt"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// Execute applies cmd to the session. Commands are applied in call order
// and never fail; see Status for feedback.
func (s *Session) Execute(cmd command.Command) {
	s.status = ""
	s.apply(cmd)
}

func (s *Session) apply(cmd command.Command) {
	t := s.Focused()
	if cmd.Kind != command.CloseFile {
		t.closeArmed = false
	}
	if cmd.Kind != command.CompleteCommandLine {
		s.cmdline.resetCompletion()
	}

	if cmd.Kind.Mutating() && s.Mode() != mode.Command && t.ReadOnly {
		s.setStatus("read-only")
		return
	}

	switch cmd.Kind {
	case command.None:

	case command.Quit:
		s.requestQuit()

	// Panes
	case command.ToggleFilePicker:
		s.panes.showLeft(LeftFilePicker)
		if s.panes.Left == LeftFilePicker {
			s.refreshPicker()
		}
	case command.ToggleOutline:
		s.panes.showLeft(LeftOutline)
	case command.ToggleSettings:
		s.panes.showLeft(LeftSettings)
	case command.ToggleSymbols:
		s.panes.showRight(RightSymbols)
	case command.ToggleVariables:
		s.panes.showRight(RightVariables)
	case command.ToggleLeftPane:
		s.panes.toggleLeft()
		if s.panes.Left == LeftFilePicker {
			s.refreshPicker()
		}
	case command.ToggleRightPane:
		s.panes.toggleRight()
	case command.ToggleSearch:
		s.panes.Search = !s.panes.Search
	case command.ToggleTabline:
		s.panes.Tabline = !s.panes.Tabline
	case command.ToggleStatusBar:
		s.panes.StatusBar = !s.panes.StatusBar
	case command.ToggleDiff:
		s.panes.Diff = !s.panes.Diff

	// Settings
	case command.ToggleLineNumbers:
		s.toggleSetting(command.OptLineNumbers)
	case command.ToggleWordWrap:
		s.toggleSetting(command.OptWordWrap)
	case command.ToggleAutoIndent:
		s.toggleSetting(command.OptAutoIndent)
	case command.ToggleSyntaxHighlighting:
		s.toggleSetting(command.OptSyntaxHighlighting)
	case command.ToggleAutoComplete:
		s.toggleSetting(command.OptAutoComplete)
	case command.ToggleAutoCloseBrackets:
		s.toggleSetting(command.OptAutoCloseBrackets)
	case command.ToggleAutoCloseQuotes:
		s.toggleSetting(command.OptAutoCloseQuotes)
	case command.SetOption:
		s.setOption(cmd.Text, cmd.N != 0)

	// Files
	case command.OpenFile:
		s.openFile(cmd.Text)
	case command.SaveFile:
		s.save(t, "")
	case command.SaveFileAs:
		s.save(t, cmd.Text)
	case command.SaveAndQuit:
		if s.save(t, "") {
			s.requestQuit()
		}
	case command.CloseFile:
		s.closeTab()
	case command.NewFile:
		s.AddTab(newUntitled())

	case command.Undo, command.Redo:
		s.setStatus("undo is not available")

	case command.Navigate:
		s.navigate(cmd.Motion)
	case command.Repeat:
		if cmd.Inner == nil {
			return
		}
		for range clamp(cmd.N, 0, maxRepeat) {
			s.apply(*cmd.Inner)
		}
	case command.Input:
		s.input(cmd.Text, cmd.Typed)

	// Pane focus
	case command.ToLeftPane:
		s.panes.moveFocus(-1)
		s.followFocus()
	case command.ToRightPane:
		s.panes.moveFocus(1)
		s.followFocus()
	case command.ToUpperPane:
		s.moveVertical(-1)
		s.followFocus()
	case command.ToLowerPane:
		s.moveVertical(1)
		s.followFocus()

	// Tabs
	case command.ToNextTab:
		s.focus = (s.focus + 1) % len(s.tabs)
	case command.ToPreviousTab:
		s.focus = (s.focus - 1 + len(s.tabs)) % len(s.tabs)
	case command.ToTab:
		s.focus = ((cmd.N-1)%len(s.tabs) + len(s.tabs)) % len(s.tabs)

	case command.Search:
		s.search(cmd.Text)
	case command.Replace:
		s.replace(cmd.Text)
	case command.Substitute:
		s.substitute(cmd.Pattern, cmd.Text)

	// Text
	case command.DeleteText, command.DeletePreviousChar, command.DeleteLine,
		command.DeleteWord, command.DeletePreviousWord,
		command.DeleteToEndOfLine, command.DeleteToStartOfLine,
		command.DeleteToEndOfFile, command.DeleteToStartOfFile:
		if s.Mode() == mode.Command {
			s.cmdline.delete(cmd.Kind)
			return
		}
		s.deleteText(cmd.Kind)
	case command.Copy:
		s.copySelection(false)
	case command.Cut:
		s.copySelection(true)
	case command.Paste:
		if s.Mode() == mode.Command {
			text, _ := s.register.load()
			s.cmdline.insert(text)
			return
		}
		s.paste()
	case command.Concatenate:
		s.concatenate()

	case command.Skip:
		s.skip()
	case command.Deselect:
		t.selections = nil
		t.anchor = t.Cursor

	// Cells
	case command.InsertCellAbove:
		s.insertCell(t.Cursor.Cell, cmd.Cell)
	case command.InsertCellBelow:
		below := t.Cursor.Cell + 1
		if t.Notebook.IsEmpty() {
			below = 0
		}
		s.insertCell(below, cmd.Cell)
	case command.DeleteCell:
		s.deleteCell()
	case command.ToggleCollapsed:
		s.toggleCollapsed()
	case command.ToggleBookmark:
		if t.toggleBookmark() {
			s.setStatus(fmt.Sprintf("bookmark set at line %d", t.Cursor.Line+1))
		} else {
			s.setStatus("bookmark removed")
		}

	// Modes
	case command.SwitchToNormalMode, command.SwitchToInsertMode,
		command.SwitchToVisualMode, command.SwitchToVisualLineMode,
		command.SwitchToVisualBlockMode, command.SwitchToReplaceMode,
		command.SwitchToCommandMode, command.SwitchToUICursorMode:
		target, _ := cmd.TargetMode()
		s.switchMode(target, cmd.Text)

	case command.ExecuteCommandLine:
		if s.Mode() == mode.UICursor {
			s.activatePane()
			return
		}
		s.executeCommandLine()
	case command.CompleteCommandLine:
		s.cmdline.complete()

	default:
		s.log.Debug("unhandled command", "command", cmd.String())
	}
}

func (s *Session) requestQuit() {
	if s.quit {
		return
	}
	s.quit = true
	dirty := 0
	for _, t := range s.tabs {
		if t.Dirty {
			dirty++
		}
	}
	s.log.Info("quit requested", "tabs", len(s.tabs), "unsaved", dirty)
}

func (s *Session) toggleSetting(name string) {
	on := s.settings.toggle(name)
	s.setStatus(fmt.Sprintf("%s: %s", name, onOff(on)))
}

func (s *Session) setOption(name string, on bool) {
	if name == command.OptReadOnly {
		s.Focused().ReadOnly = on
		s.setStatus(fmt.Sprintf("%s: %s", name, onOff(on)))
		return
	}
	if err := s.settings.Set(name, on); err != nil {
		s.setStatus(err.Error())
		return
	}
	s.setStatus(fmt.Sprintf("%s: %s", name, onOff(on)))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// followFocus enters UICursor mode when a pane move from another mode
// left the editor, so keys reach the focused pane.
func (s *Session) followFocus() {
	if s.Mode() != mode.UICursor && s.panes.Focus != FocusEditor {
		s.switchMode(mode.UICursor, "")
	}
}

// switchMode enters target and keeps the selection and command line in
// step with it.
func (s *Session) switchMode(target mode.Mode, prefix string) {
	t := s.Focused()
	from := s.Mode()

	if target == mode.Command {
		if prefix == "" {
			prefix = ":"
		}
		s.cmdline.start(prefix)
	}
	if !s.modes.Switch(target) {
		return
	}
	switch {
	case target.IsVisual() && !from.IsVisual():
		t.anchor = t.Cursor
	case !target.IsVisual() && from.IsVisual():
		t.anchor = t.Cursor
	}
	if from == mode.Command {
		s.cmdline.clear()
	}
	if target == mode.UICursor && s.panes.Focus == FocusEditor {
		switch {
		case s.panes.Left != LeftNone:
			s.panes.Focus = FocusLeft
		case s.panes.Right != RightNone:
			s.panes.Focus = FocusRight
		}
	}
	if from == mode.UICursor {
		s.panes.Focus = FocusEditor
	}
}
