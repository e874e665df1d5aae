package key

import (
	"strings"
	"unicode"
)

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewRuneEvent creates a character event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mods: mods}.Normalize()
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mods: mods}
}

// Normalize returns the canonical form of e: character events drop Shift
// and Ctrl combinations use the lower-case letter.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	if e.Mods.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
		return e
	}
	if e.Mods.Has(ModShift) && unicode.IsLower(e.Rune) {
		e.Rune = unicode.ToUpper(e.Rune)
	}
	e.Mods = e.Mods.Without(ModShift)
	return e
}

// IsRune reports whether e is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar reports whether e types a printable character, i.e. a rune with
// no Ctrl, Alt or Meta held.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		!e.Mods.Has(ModCtrl) && !e.Mods.Has(ModAlt) && !e.Mods.Has(ModMeta)
}

// String returns the Vim-style spec for e, e.g. "a", "<C-w>", "<CR>".
// Parse(e.String()) yields e again.
func (e Event) String() string {
	if e.IsRune() && e.Mods == ModNone {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var name string
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			name = "Space"
		case '-':
			name = "minus"
		case '<':
			name = "lt"
		default:
			name = string(e.Rune)
		}
	case KeyEnter:
		name = "CR"
	default:
		name = e.Key.String()
	}
	return "<" + e.Mods.short() + name + ">"
}

// Equals reports whether two events are the same key press.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// Matches reports whether e matches a key specification.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// Describe returns a human readable form like "Ctrl+W" for status lines.
func (e Event) Describe() string {
	name := e.Key.String()
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune && e.Mods == ModNone:
		return string(e.Rune)
	case e.Key == KeyRune:
		name = strings.ToUpper(string(e.Rune))
	}
	if e.Mods == ModNone {
		return name
	}
	return e.Mods.String() + "+" + name
}
