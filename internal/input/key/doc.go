// Package key provides the raw key event types consumed by the input
// system.
//
//   - Key: a special key (Enter, F5, arrows) or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta as a bit set
//   - Event: one key press with its modifiers
//
// # Key Specifications
//
// Bindings are written as text and parsed with Parse:
//
//   - Simple keys: "a", "V", ":", "Enter", "Esc", "F5"
//   - With modifiers: "Ctrl+W", "Alt+O", "Ctrl+Shift+P"
//   - Vim-style: "<C-w>", "<A-o>", "<CR>", "<Esc>", "<BS>"
//
// Character events never carry Shift: the shifted character ("V") already
// encodes it. Ctrl combinations use the lower-case letter.
package key
