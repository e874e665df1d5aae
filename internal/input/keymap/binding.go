package keymap

import (
	"fmt"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
)

// Trigger is the exact key press a binding matches.
type Trigger struct {
	Key  key.Key
	Rune rune
	Mods key.Modifier
}

// TriggerOf returns the trigger for a key event.
func TriggerOf(ev key.Event) Trigger {
	ev = ev.Normalize()
	return Trigger{Key: ev.Key, Rune: ev.Rune, Mods: ev.Mods}
}

// ParseTrigger parses a key specification such as "<C-w>" or "Ctrl+W".
func ParseTrigger(spec string) (Trigger, error) {
	ev, err := key.Parse(spec)
	if err != nil {
		return Trigger{}, err
	}
	return TriggerOf(ev), nil
}

// Event returns the key event the trigger matches.
func (t Trigger) Event() key.Event {
	return key.Event{Key: t.Key, Rune: t.Rune, Mods: t.Mods}
}

// String returns the Vim-style spec, e.g. "<C-w>".
func (t Trigger) String() string {
	return t.Event().String()
}

// Binding represents a single key-to-command mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "j", "<C-s>", "Ctrl+Shift+A", "PageDown"
	Keys string

	// Action is the command in textual form.
	// Examples: "navigate down", "save-file", "switch-to-insert-mode"
	Action string

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// resolved is a binding with its trigger and command parsed.
type resolved struct {
	Binding
	Trigger Trigger
	Command command.Command
}

func (b Binding) resolve() (resolved, error) {
	tr, err := ParseTrigger(b.Keys)
	if err != nil {
		return resolved{}, fmt.Errorf("binding %s: %w", b.Keys, err)
	}
	cmd, err := command.Parse(b.Action)
	if err != nil {
		return resolved{}, fmt.Errorf("binding %s (%s): %w", b.Keys, b.Action, err)
	}
	return resolved{Binding: b, Trigger: tr, Command: cmd}, nil
}
