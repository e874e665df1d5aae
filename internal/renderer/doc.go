// Package renderer draws a session onto a backend.
//
// A frame is laid out top to bottom as
//
//	┌──────────────────────────────────────────┐
//	│ tab line                                 │
//	├────────┬──────────────────────┬──────────┤
//	│ left   │ notebook cells       │ right    │
//	│ pane   │                      │ pane     │
//	├────────┴──────────────────────┴──────────┤
//	│ status bar                               │
//	│ command line / message                   │
//	└──────────────────────────────────────────┘
//
// The tab line, status bar and side panes follow the session's pane
// toggles. Rendering never changes the session; the only state kept
// between frames is the scroll offset of the editor.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, theme)
//	r.Render(sess)
package renderer
