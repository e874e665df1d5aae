package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// runeAliases are names accepted for characters that are awkward to write
// inside a spec.
var runeAliases = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
	"minus":  '-',
	"plus":   '+',
}

// Parse parses a key specification into a normalized Event.
//
// Supported formats:
//   - Single character: "a", "V", ":", "$"
//   - Key names: "Enter", "Esc", "Tab", "BS", "F5", "PageDown"
//   - Modifier style: "Ctrl+W", "Alt+Shift+Left"
//   - Vim style: "<C-w>", "<A-o>", "<CR>", "<S-Tab>", "<lt>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVim(spec[1 : len(spec)-1])
	}
	if len(spec) > 1 && strings.Contains(spec[:len(spec)-1], "+") {
		return parseModifierStyle(spec)
	}
	return parseKey(spec, ModNone)
}

// MustParse is like Parse but panics on error.
// Use only for known-valid specs in table construction.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}

// parseVim parses the inside of "<...>" notation, e.g. "C-w" or "CR".
func parseVim(inner string) (Event, error) {
	var mods Modifier
	for {
		prefix, rest, found := strings.Cut(inner, "-")
		if !found || rest == "" || len(prefix) != 1 {
			break
		}
		mod := ModifierFromName(prefix)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, prefix)
		}
		mods = mods.With(mod)
		inner = rest
	}
	return parseKey(inner, mods)
}

// parseModifierStyle parses "Ctrl+S" notation.
func parseModifierStyle(spec string) (Event, error) {
	var mods Modifier
	rest := spec
	for {
		i := strings.Index(rest[:len(rest)-1], "+")
		if i < 0 {
			break
		}
		mod := ModifierFromName(rest[:i])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, rest[:i])
		}
		mods = mods.With(mod)
		rest = rest[i+1:]
	}
	return parseKey(rest, mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrInvalidSpec
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods), nil
	}
	lower := strings.ToLower(name)
	if r, ok := runeAliases[lower]; ok {
		return NewRuneEvent(r, mods), nil
	}
	if k := KeyFromName(lower); k != KeyNone {
		if k == KeyBacktab {
			mods = mods.Without(ModShift)
		}
		if k == KeyTab && mods.Has(ModShift) {
			return NewSpecialEvent(KeyBacktab, mods.Without(ModShift)), nil
		}
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}
