package session

import "github.com/atotto/clipboard"

// Clipboard is a system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the platform clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// Register holds copied text. It mirrors copies to the clipboard when one
// is set and pastes clipboard text that changed since the last copy.
type Register struct {
	text     string
	linewise bool

	clipboard Clipboard
}

// store keeps text and reports a clipboard failure, if any.
func (r *Register) store(text string, linewise bool) error {
	r.text, r.linewise = text, linewise
	if r.clipboard == nil {
		return nil
	}
	return r.clipboard.WriteAll(text)
}

// load returns the text to paste and whether it is whole lines.
func (r *Register) load() (string, bool) {
	if r.clipboard != nil {
		if text, err := r.clipboard.ReadAll(); err == nil && text != "" && text != r.text {
			r.text, r.linewise = text, false
		}
	}
	return r.text, r.linewise
}
