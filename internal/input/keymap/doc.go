// Package keymap maps key presses to commands, one table per mode.
//
// A binding pairs a key specification with a command in textual form:
//
//	{Keys: "<C-w>", Action: "delete-previous-word"}
//
// Specifications are parsed once into a Trigger, a comparable
// (key, rune, modifiers) triple, so lookup is a single map access with
// exact matching. There are no multi-key sequences.
//
// Tables are immutable once built. Rebind, Unbind and Apply return a new
// Set and leave the receiver untouched, so a Set can be shared by a
// translator while a config loader builds its replacement.
package keymap
