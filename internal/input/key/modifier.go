package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS).
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a representation like "Ctrl+Alt".
func (m Modifier) String() string {
	return strings.Join(m.names(false), "+")
}

// short returns the Vim prefix letters, e.g. "C-A-".
func (m Modifier) short() string {
	var b strings.Builder
	for _, n := range m.names(true) {
		b.WriteString(n)
		b.WriteByte('-')
	}
	return b.String()
}

func (m Modifier) names(short bool) []string {
	var parts []string
	add := func(mod Modifier, long, abbr string) {
		if m.Has(mod) {
			if short {
				parts = append(parts, abbr)
			} else {
				parts = append(parts, long)
			}
		}
	}
	add(ModCtrl, "Ctrl", "C")
	add(ModAlt, "Alt", "A")
	add(ModShift, "Shift", "S")
	add(ModMeta, "Meta", "M")
	return parts
}

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"a":       ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"super":   ModMeta,
	"m":       ModMeta,
	"d":       ModMeta,
}

// ModifierFromName returns the modifier for a case-insensitive name, or
// ModNone.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(strings.TrimSpace(name))]
}
