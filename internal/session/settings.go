package session

import (
	"fmt"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
)

// Settings are the editor options shared by all tabs.
type Settings struct {
	LineNumbers        bool
	WordWrap           bool
	AutoIndent         bool
	SyntaxHighlighting bool
	AutoComplete       bool
	AutoCloseBrackets  bool
	AutoCloseQuotes    bool

	TabWidth  int
	ScrollOff int

	// ReadOnly is the initial read-only flag of tabs opened from files.
	ReadOnly bool
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		LineNumbers:       true,
		AutoIndent:        true,
		AutoCloseBrackets: true,
		AutoCloseQuotes:   true,
		TabWidth:          4,
		ScrollOff:         2,
	}
}

// field returns a pointer to the boolean option named name.
func (s *Settings) field(name string) *bool {
	switch name {
	case command.OptLineNumbers:
		return &s.LineNumbers
	case command.OptWordWrap:
		return &s.WordWrap
	case command.OptAutoIndent:
		return &s.AutoIndent
	case command.OptSyntaxHighlighting:
		return &s.SyntaxHighlighting
	case command.OptAutoComplete:
		return &s.AutoComplete
	case command.OptAutoCloseBrackets:
		return &s.AutoCloseBrackets
	case command.OptAutoCloseQuotes:
		return &s.AutoCloseQuotes
	case command.OptReadOnly:
		return &s.ReadOnly
	}
	return nil
}

// Get returns the value of a boolean option.
func (s Settings) Get(name string) (bool, bool) {
	name, ok := command.OptionName(name)
	if !ok {
		return false, false
	}
	return *s.field(name), true
}

// Set assigns a boolean option by name or alias.
func (s *Settings) Set(name string, on bool) error {
	canon, ok := command.OptionName(name)
	if !ok {
		return fmt.Errorf("unknown option %q", name)
	}
	*s.field(canon) = on
	return nil
}

// toggle flips a boolean option and returns its new value.
func (s *Settings) toggle(name string) bool {
	p := s.field(name)
	if p == nil {
		return false
	}
	*p = !*p
	return *p
}
