// Package input translates key events into editor commands.
//
// Translation is a pure lookup: the current mode selects a binding table
// from the keymap package and the normalized key event selects the entry.
// Keys with no binding are dropped, except that printable characters become
// Input commands in Insert, Replace and Command mode.
//
//	tr := input.NewTranslator(nil)
//	if cmd, ok := tr.Translate(modes.Current(), ev); ok {
//	    sess.Execute(cmd)
//	}
//
// Subpackages hold the pieces: key (key events and key specs), mode (the
// mode state) and keymap (binding tables).
package input
