package app

import (
	"runtime/debug"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
)

// eventLoop alternates between a bounded poll and a full redraw. Commands
// are applied in the order their events were read. It returns ErrQuit once
// the session has quit.
func (a *Application) eventLoop() error {
	a.resize()
	a.redraw()
	for {
		ev := a.backend.PollEvent(a.poll)
		if err := a.handleBackendEvent(ev); err != nil {
			return err
		}
		a.redraw()
	}
}

// handleBackendEvent applies one backend event to the session.
// Returns ErrQuit if the session should exit.
func (a *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		a.handleKeyEvent(ev)
	case backend.EventPaste:
		a.handlePasteEvent(ev)
	case backend.EventResize:
		a.resize()
	case backend.EventInterrupt:
		a.log.Debug("interrupt received")
		a.session.Execute(command.New(command.Quit))
	}
	if a.session.Quitting() {
		return ErrQuit
	}
	return nil
}

// handleKeyEvent translates the key in the current mode and applies the
// bound command. Unbound keys are ignored.
func (a *Application) handleKeyEvent(ev backend.Event) {
	m := a.session.Mode()
	cmd, ok := a.translator.Translate(m, ev.Key)
	if !ok {
		a.log.Trace("unbound key", "mode", m.String(), "key", ev.Key.String())
		return
	}
	a.log.Trace("command", "mode", m.String(), "key", ev.Key.String(), "command", cmd.String())
	a.session.Execute(cmd)
}

// handlePasteEvent inserts bracketed-paste text as one Input command.
func (a *Application) handlePasteEvent(ev backend.Event) {
	if ev.Text == "" {
		return
	}
	a.session.Execute(command.InputText(ev.Text))
}

// resize sizes page motions to the editor area.
func (a *Application) resize() {
	_, h := a.backend.Size()
	if h <= 0 {
		return
	}
	a.session.SetPageSize(renderer.EditorHeight(a.session, h))
}

func (a *Application) redraw() {
	a.renderer.Render(a.session)
}

func newRecoveredPanic(v any) *RecoveredPanicError {
	return &RecoveredPanicError{Value: v, Stack: string(debug.Stack())}
}
