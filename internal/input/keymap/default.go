package keymap

import (
	"fmt"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// Default returns the built-in Set.
func Default() *Set {
	s, err := NewSet(DefaultKeymaps()...)
	if err != nil {
		// The default tables are static; failing here is a programming error.
		panic(err)
	}
	return s
}

// DefaultKeymaps returns the source form of the built-in tables.
func DefaultKeymaps() []*Keymap {
	return []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultVisualKeymap(mode.Visual),
		DefaultVisualKeymap(mode.VisualLine),
		DefaultVisualKeymap(mode.VisualBlock),
		DefaultReplaceKeymap(),
		DefaultCommandKeymap(),
		DefaultUICursorKeymap(),
	}
}

// motionBindings are shared by Normal and the Visual modes.
func motionBindings() []Binding {
	return []Binding{
		{Keys: "h", Action: "navigate left", Description: "Move left", Category: "Movement"},
		{Keys: "j", Action: "navigate down", Description: "Move down", Category: "Movement"},
		{Keys: "k", Action: "navigate up", Description: "Move up", Category: "Movement"},
		{Keys: "l", Action: "navigate right", Description: "Move right", Category: "Movement"},
		{Keys: "Left", Action: "navigate left", Description: "Move left", Category: "Movement"},
		{Keys: "Down", Action: "navigate down", Description: "Move down", Category: "Movement"},
		{Keys: "Up", Action: "navigate up", Description: "Move up", Category: "Movement"},
		{Keys: "Right", Action: "navigate right", Description: "Move right", Category: "Movement"},
		{Keys: "w", Action: "navigate to-next-word-start", Description: "Move to next word", Category: "Movement"},
		{Keys: "e", Action: "navigate to-next-word-end", Description: "Move to end of word", Category: "Movement"},
		{Keys: "b", Action: "navigate to-previous-word-start", Description: "Move to previous word", Category: "Movement"},
		{Keys: "0", Action: "navigate to-line-start", Description: "Move to line start", Category: "Movement"},
		{Keys: "$", Action: "navigate to-line-end", Description: "Move to line end", Category: "Movement"},
		{Keys: "Home", Action: "navigate to-line-start", Description: "Move to line start", Category: "Movement"},
		{Keys: "End", Action: "navigate to-line-end", Description: "Move to line end", Category: "Movement"},
		{Keys: "PageDown", Action: "navigate page-down", Description: "Page down", Category: "Movement"},
		{Keys: "PageUp", Action: "navigate page-up", Description: "Page up", Category: "Movement"},
		{Keys: "<C-f>", Action: "navigate page-down", Description: "Page down", Category: "Movement"},
		{Keys: "<C-b>", Action: "navigate page-up", Description: "Page up", Category: "Movement"},
		{Keys: "]", Action: "navigate to-next-cell", Description: "Next cell", Category: "Movement"},
		{Keys: "[", Action: "navigate to-previous-cell", Description: "Previous cell", Category: "Movement"},
		{Keys: "g", Action: "navigate to-first-cell", Description: "First cell", Category: "Movement"},
		{Keys: "G", Action: "navigate to-last-cell", Description: "Last cell", Category: "Movement"},
		{Keys: "}", Action: "navigate to-next-outline-item-start", Description: "Next heading", Category: "Movement"},
		{Keys: "{", Action: "navigate to-previous-outline-item-start", Description: "Previous heading", Category: "Movement"},
		{Keys: "n", Action: "navigate to-next-search-result-start", Description: "Next match", Category: "Search"},
		{Keys: "N", Action: "navigate to-previous-search-result-start", Description: "Previous match", Category: "Search"},
		{Keys: ":", Action: "switch-to-command-mode :", Description: "Enter command mode", Category: "Mode"},
	}
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	bindings := append(motionBindings(),
		// Movement - extra
		Binding{Keys: "'", Action: "navigate to-next-bookmark", Description: "Next bookmark", Category: "Movement"},
		Binding{Keys: "m", Action: "toggle-bookmark", Description: "Toggle bookmark", Category: "Movement"},

		// Mode switching
		Binding{Keys: "i", Action: "switch-to-insert-mode", Description: "Enter insert mode", Category: "Mode"},
		Binding{Keys: "v", Action: "switch-to-visual-mode", Description: "Enter visual mode", Category: "Mode"},
		Binding{Keys: "V", Action: "switch-to-visual-line-mode", Description: "Enter visual line mode", Category: "Mode"},
		Binding{Keys: "<C-v>", Action: "switch-to-visual-block-mode", Description: "Enter visual block mode", Category: "Mode"},
		Binding{Keys: "R", Action: "switch-to-replace-mode", Description: "Enter replace mode", Category: "Mode"},
		Binding{Keys: "/", Action: "switch-to-command-mode /", Description: "Search", Category: "Search"},
		Binding{Keys: "<C-o>", Action: "switch-to-ui-cursor-mode", Description: "Move between panes", Category: "Mode"},
		Binding{Keys: "<C-h>", Action: "to-left-pane", Description: "Focus left pane", Category: "View"},
		Binding{Keys: "<C-j>", Action: "to-lower-pane", Description: "Focus lower pane", Category: "View"},
		Binding{Keys: "<C-k>", Action: "to-upper-pane", Description: "Focus upper pane", Category: "View"},
		Binding{Keys: "<C-l>", Action: "to-right-pane", Description: "Focus right pane", Category: "View"},
		Binding{Keys: "Esc", Action: "deselect", Description: "Clear selection", Category: "Mode"},

		// Editing
		Binding{Keys: "x", Action: "delete-text", Description: "Delete character", Category: "Editing"},
		Binding{Keys: "X", Action: "delete-previous-char", Description: "Delete character before", Category: "Editing"},
		Binding{Keys: "d", Action: "delete-line", Description: "Delete line", Category: "Editing"},
		Binding{Keys: "D", Action: "delete-to-end-of-line", Description: "Delete to end of line", Category: "Editing"},
		Binding{Keys: "y", Action: "copy", Description: "Copy line", Category: "Editing"},
		Binding{Keys: "p", Action: "paste", Description: "Paste", Category: "Editing"},
		Binding{Keys: "J", Action: "concatenate", Description: "Join lines", Category: "Editing"},
		Binding{Keys: "u", Action: "undo", Description: "Undo", Category: "Editing"},
		Binding{Keys: "<C-r>", Action: "redo", Description: "Redo", Category: "Editing"},

		// Cells
		Binding{Keys: "o", Action: "insert-cell-below code", Description: "Code cell below", Category: "Cells"},
		Binding{Keys: "O", Action: "insert-cell-above code", Description: "Code cell above", Category: "Cells"},
		Binding{Keys: "M", Action: "insert-cell-below markdown", Description: "Markdown cell below", Category: "Cells"},
		Binding{Keys: "<A-d>", Action: "delete-cell", Description: "Delete cell", Category: "Cells"},
		Binding{Keys: "z", Action: "toggle-collapsed", Description: "Fold outputs", Category: "Cells"},

		// Files and tabs
		Binding{Keys: "<C-s>", Action: "save-file", Description: "Save", Category: "File"},
		Binding{Keys: "<C-q>", Action: "quit", Description: "Quit", Category: "File"},
		Binding{Keys: "<C-n>", Action: "new-file", Description: "New notebook", Category: "File"},
		Binding{Keys: "<C-PageDown>", Action: "to-next-tab", Description: "Next tab", Category: "Tabs"},
		Binding{Keys: "<C-PageUp>", Action: "to-previous-tab", Description: "Previous tab", Category: "Tabs"},

		// Panes
		Binding{Keys: "<C-e>", Action: "toggle-file-picker", Description: "File picker", Category: "View"},
		Binding{Keys: "<C-t>", Action: "toggle-outline", Description: "Outline", Category: "View"},
		Binding{Keys: "F2", Action: "toggle-left-pane", Description: "Left pane", Category: "View"},
		Binding{Keys: "F3", Action: "toggle-right-pane", Description: "Right pane", Category: "View"},
		Binding{Keys: "F4", Action: "toggle-word-wrap", Description: "Word wrap", Category: "View"},
		Binding{Keys: "F5", Action: "toggle-variables", Description: "Variables", Category: "View"},
		Binding{Keys: "F6", Action: "toggle-symbols", Description: "Symbols", Category: "View"},
		Binding{Keys: "F7", Action: "toggle-settings", Description: "Settings", Category: "View"},
		Binding{Keys: "F8", Action: "toggle-line-numbers", Description: "Line numbers", Category: "View"},
	)
	for n := 1; n <= 9; n++ {
		bindings = append(bindings, Binding{
			Keys:        fmt.Sprintf("<A-%d>", n),
			Action:      fmt.Sprintf("to-tab %d", n),
			Description: fmt.Sprintf("Tab %d", n),
			Category:    "Tabs",
		})
	}
	return &Keymap{Mode: mode.Normal, Bindings: bindings}
}

// DefaultInsertKeymap returns default insert mode bindings.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Mode: mode.Insert,
		Bindings: []Binding{
			{Keys: "Esc", Action: "switch-to-normal-mode", Description: "Exit insert mode", Category: "Mode"},
			{Keys: "<C-c>", Action: "switch-to-normal-mode", Description: "Exit insert mode", Category: "Mode"},
			{Keys: "Enter", Action: `input "\n"`, Description: "New line", Category: "Editing"},
			{Keys: "Tab", Action: `input "\t"`, Description: "Indent", Category: "Editing"},
			{Keys: "BS", Action: "delete-previous-char", Description: "Delete character before", Category: "Editing"},
			{Keys: "Del", Action: "delete-text", Description: "Delete character", Category: "Editing"},
			{Keys: "<C-w>", Action: "delete-previous-word", Description: "Delete word before", Category: "Editing"},
			{Keys: "<C-u>", Action: "delete-to-start-of-line", Description: "Delete to line start", Category: "Editing"},
			{Keys: "<C-k>", Action: "delete-to-end-of-line", Description: "Delete to line end", Category: "Editing"},
			{Keys: "Left", Action: "navigate left", Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: "navigate right", Description: "Move right", Category: "Movement"},
			{Keys: "Up", Action: "navigate up", Description: "Move up", Category: "Movement"},
			{Keys: "Down", Action: "navigate down", Description: "Move down", Category: "Movement"},
			{Keys: "Home", Action: "navigate to-line-start", Description: "Move to line start", Category: "Movement"},
			{Keys: "End", Action: "navigate to-line-end", Description: "Move to line end", Category: "Movement"},
			{Keys: "PageDown", Action: "navigate page-down", Description: "Page down", Category: "Movement"},
			{Keys: "PageUp", Action: "navigate page-up", Description: "Page up", Category: "Movement"},
			{Keys: "<C-s>", Action: "save-file", Description: "Save", Category: "File"},
		},
	}
}

// DefaultVisualKeymap returns default bindings for one of the selection
// modes.
func DefaultVisualKeymap(m mode.Mode) *Keymap {
	bindings := append(motionBindings(),
		Binding{Keys: "Esc", Action: "switch-to-normal-mode", Description: "Exit visual mode", Category: "Mode"},
		Binding{Keys: "v", Action: "switch-to-visual-mode", Description: "Character selection", Category: "Mode"},
		Binding{Keys: "V", Action: "switch-to-visual-line-mode", Description: "Line selection", Category: "Mode"},
		Binding{Keys: "<C-v>", Action: "switch-to-visual-block-mode", Description: "Block selection", Category: "Mode"},
		Binding{Keys: "y", Action: "copy", Description: "Copy selection", Category: "Editing"},
		Binding{Keys: "d", Action: "cut", Description: "Cut selection", Category: "Editing"},
		Binding{Keys: "x", Action: "cut", Description: "Cut selection", Category: "Editing"},
		Binding{Keys: "p", Action: "paste", Description: "Replace selection", Category: "Editing"},
		Binding{Keys: "J", Action: "concatenate", Description: "Join lines", Category: "Editing"},
		Binding{Keys: "s", Action: "skip", Description: "Keep selection, start another", Category: "Selection"},
		Binding{Keys: "<C-g>", Action: "deselect", Description: "Drop all selections", Category: "Selection"},
	)
	return &Keymap{Mode: m, Bindings: bindings}
}

// DefaultReplaceKeymap returns default replace mode bindings.
func DefaultReplaceKeymap() *Keymap {
	return &Keymap{
		Mode: mode.Replace,
		Bindings: []Binding{
			{Keys: "Esc", Action: "switch-to-normal-mode", Description: "Exit replace mode", Category: "Mode"},
			{Keys: "Enter", Action: `input "\n"`, Description: "New line", Category: "Editing"},
			{Keys: "BS", Action: "navigate left", Description: "Move left", Category: "Movement"},
			{Keys: "Left", Action: "navigate left", Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: "navigate right", Description: "Move right", Category: "Movement"},
			{Keys: "Up", Action: "navigate up", Description: "Move up", Category: "Movement"},
			{Keys: "Down", Action: "navigate down", Description: "Move down", Category: "Movement"},
		},
	}
}

// DefaultCommandKeymap returns default command-line bindings.
func DefaultCommandKeymap() *Keymap {
	return &Keymap{
		Mode: mode.Command,
		Bindings: []Binding{
			{Keys: "Esc", Action: "switch-to-normal-mode", Description: "Cancel", Category: "Mode"},
			{Keys: "<C-c>", Action: "switch-to-normal-mode", Description: "Cancel", Category: "Mode"},
			{Keys: "Enter", Action: "execute-command-line", Description: "Execute", Category: "Command"},
			{Keys: "Tab", Action: "complete-command-line", Description: "Complete", Category: "Command"},
			{Keys: "BS", Action: "delete-previous-char", Description: "Delete character before", Category: "Editing"},
			{Keys: "Del", Action: "delete-text", Description: "Delete character", Category: "Editing"},
			{Keys: "<C-w>", Action: "delete-previous-word", Description: "Delete word before", Category: "Editing"},
			{Keys: "<C-u>", Action: "delete-to-start-of-line", Description: "Clear line", Category: "Editing"},
			{Keys: "Left", Action: "navigate left", Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: "navigate right", Description: "Move right", Category: "Movement"},
			{Keys: "Home", Action: "navigate to-line-start", Description: "Line start", Category: "Movement"},
			{Keys: "End", Action: "navigate to-line-end", Description: "Line end", Category: "Movement"},
			{Keys: "Up", Action: "navigate up", Description: "Older history", Category: "Command"},
			{Keys: "Down", Action: "navigate down", Description: "Newer history", Category: "Command"},
		},
	}
}

// DefaultUICursorKeymap returns default pane-navigation bindings.
func DefaultUICursorKeymap() *Keymap {
	return &Keymap{
		Mode: mode.UICursor,
		Bindings: []Binding{
			{Keys: "Esc", Action: "switch-to-normal-mode", Description: "Back to editing", Category: "Mode"},
			{Keys: "Enter", Action: "execute-command-line", Description: "Activate the highlighted row", Category: "Panes"},
			{Keys: "h", Action: "to-left-pane", Description: "Left pane", Category: "Panes"},
			{Keys: "l", Action: "to-right-pane", Description: "Right pane", Category: "Panes"},
			{Keys: "k", Action: "to-upper-pane", Description: "Upper pane", Category: "Panes"},
			{Keys: "j", Action: "to-lower-pane", Description: "Lower pane", Category: "Panes"},
			{Keys: "Left", Action: "to-left-pane", Description: "Left pane", Category: "Panes"},
			{Keys: "Right", Action: "to-right-pane", Description: "Right pane", Category: "Panes"},
			{Keys: "Up", Action: "to-upper-pane", Description: "Upper pane", Category: "Panes"},
			{Keys: "Down", Action: "to-lower-pane", Description: "Lower pane", Category: "Panes"},
			{Keys: "<C-q>", Action: "quit", Description: "Quit", Category: "File"},
		},
	}
}
