package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeSpec holds the [theme] section as hex strings.
type ThemeSpec struct {
	StatusFG    string `toml:"status_fg"`
	StatusBG    string `toml:"status_bg"`
	TabActiveFG string `toml:"tab_active_fg"`
	TabActiveBG string `toml:"tab_active_bg"`
	SelectionBG string `toml:"selection_bg"`
	Accent      string `toml:"accent"`
}

// DefaultThemeSpec returns the built-in colors.
func DefaultThemeSpec() ThemeSpec {
	return ThemeSpec{
		StatusFG:    "#ffffff",
		StatusBG:    "#444444",
		TabActiveFG: "#000000",
		TabActiveBG: "#ffffff",
		SelectionBG: "#3a5f8f",
		Accent:      "#e5c07b",
	}
}

// Theme is a resolved color scheme.
type Theme struct {
	StatusFG    colorful.Color
	StatusBG    colorful.Color
	TabActiveFG colorful.Color
	TabActiveBG colorful.Color
	SelectionBG colorful.Color
	Accent      colorful.Color

	// Dim is the status foreground blended halfway into the background, used
	// for inactive tab titles.
	Dim colorful.Color
}

// Resolve parses every color. An empty value keeps the default.
func (s ThemeSpec) Resolve() (Theme, error) {
	def := DefaultThemeSpec()
	var th Theme
	fields := []struct {
		name string
		val  string
		def  string
		dst  *colorful.Color
	}{
		{"status_fg", s.StatusFG, def.StatusFG, &th.StatusFG},
		{"status_bg", s.StatusBG, def.StatusBG, &th.StatusBG},
		{"tab_active_fg", s.TabActiveFG, def.TabActiveFG, &th.TabActiveFG},
		{"tab_active_bg", s.TabActiveBG, def.TabActiveBG, &th.TabActiveBG},
		{"selection_bg", s.SelectionBG, def.SelectionBG, &th.SelectionBG},
		{"accent", s.Accent, def.Accent, &th.Accent},
	}
	for _, f := range fields {
		v := f.val
		if v == "" {
			v = f.def
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: invalid color %q: %w", f.name, v, ErrInvalidValue)
		}
		*f.dst = c
	}
	th.Dim = th.StatusFG.BlendRgb(th.StatusBG, 0.5)
	return th, nil
}
