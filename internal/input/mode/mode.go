package mode

import "strings"

// Mode is one of the eight editor modes.
type Mode uint8

const (
	// Normal is navigation and commands.
	Normal Mode = iota

	// Insert is text input.
	Insert

	// Visual is character-wise selection.
	Visual

	// VisualLine is line-wise selection.
	VisualLine

	// VisualBlock is block/column selection.
	VisualBlock

	// Replace overwrites characters under the cursor.
	Replace

	// Command edits the ex command line.
	Command

	// UICursor moves focus between panes instead of editing text.
	UICursor
)

// All lists every mode in declaration order.
var All = []Mode{Normal, Insert, Visual, VisualLine, VisualBlock, Replace, Command, UICursor}

var modeInfo = [...]struct {
	name  string
	label string
	long  string
}{
	Normal:      {"normal", "[Nor]", "NORMAL"},
	Insert:      {"insert", "[Ins]", "INSERT"},
	Visual:      {"visual", "[Vis]", "VISUAL"},
	VisualLine:  {"visual-line", "[ViL]", "VISUAL LINE"},
	VisualBlock: {"visual-block", "[ViB]", "VISUAL BLOCK"},
	Replace:     {"replace", "[Rep]", "REPLACE"},
	Command:     {"command", "[Cmd]", "COMMAND"},
	UICursor:    {"ui-cursor", "[Cur]", "UI CURSOR"},
}

// Valid reports whether m is one of the eight modes.
func (m Mode) Valid() bool {
	return int(m) < len(modeInfo)
}

// String returns the identifier used in config files, e.g. "visual-line".
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeInfo[m].name
}

// Label returns the short status-line tag, e.g. "[Ins]".
func (m Mode) Label() string {
	if !m.Valid() {
		return "[???]"
	}
	return modeInfo[m].label
}

// DisplayName returns the long status-line name, e.g. "VISUAL BLOCK".
func (m Mode) DisplayName() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return modeInfo[m].long
}

// IsVisual reports whether m is one of the selection modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine || m == VisualBlock
}

// AcceptsText reports whether unbound printable keys type text in m.
func (m Mode) AcceptsText() bool {
	return m == Insert || m == Replace || m == Command
}

// CursorStyle returns the cursor shape shown in m.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	case Replace:
		return CursorUnderline
	case UICursor:
		return CursorHidden
	default:
		return CursorBlock
	}
}

// ParseMode returns the mode for a case-insensitive name. Underscores and
// spaces are accepted in place of dashes, so "visual_line" and
// "Visual Line" both name VisualLine.
func ParseMode(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for i, info := range modeInfo {
		if info.name == name {
			return Mode(i), true
		}
	}
	switch name {
	case "visualline":
		return VisualLine, true
	case "visualblock":
		return VisualBlock, true
	case "uicursor", "ui":
		return UICursor, true
	case "cmd", "ex":
		return Command, true
	}
	return Normal, false
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
