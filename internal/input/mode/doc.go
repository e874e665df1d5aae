// Package mode holds the editor's modal state.
//
// There are eight modes. Normal is the initial mode and none is terminal:
// the state lives as long as the session. Transitions happen only when the
// dispatcher applies a mode-switch command; key translation reads the
// current mode but never changes it.
//
//	Normal ──i/a/o──▶ Insert ──Esc──▶ Normal
//	Normal ──v/V/^V─▶ Visual, VisualLine, VisualBlock ──Esc──▶ Normal
//	Normal ──R──────▶ Replace ──Esc──▶ Normal
//	Normal ──:──────▶ Command ──Enter/Esc──▶ Normal
//	Normal ──^O─────▶ UICursor ──Esc──▶ Normal
//
// The Manager records the current and previous mode and notifies
// observers registered with OnChange.
package mode
