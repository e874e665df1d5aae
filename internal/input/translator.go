package input

import (
	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/keymap"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// Translator turns key events into commands using per-mode binding tables.
// It never changes the mode.
type Translator struct {
	keys *keymap.Set
}

// NewTranslator creates a translator over keys. A nil set uses the default
// bindings.
func NewTranslator(keys *keymap.Set) *Translator {
	if keys == nil {
		keys = keymap.Default()
	}
	return &Translator{keys: keys}
}

// Keys returns the binding set in use.
func (t *Translator) Keys() *keymap.Set {
	return t.keys
}

// SetKeys replaces the binding set. A nil set is ignored.
func (t *Translator) SetKeys(keys *keymap.Set) {
	if keys != nil {
		t.keys = keys
	}
}

// Translate returns the command for ev in mode m.
//
// A bound key yields its command. An unbound printable character yields
// Input of that character in the modes that accept text. Anything else
// reports false and should be ignored. Input produced here is marked
// typed.
func (t *Translator) Translate(m mode.Mode, ev key.Event) (command.Command, bool) {
	ev = ev.Normalize()
	if cmd, ok := t.keys.Lookup(m, ev); ok {
		if cmd.Kind == command.Input {
			cmd.Typed = true
		}
		return cmd, true
	}
	if m.AcceptsText() && ev.IsChar() {
		return command.TypedText(string(ev.Rune)), true
	}
	return command.Command{}, false
}
