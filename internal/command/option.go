package command

import (
	"fmt"
	"sort"
	"strings"
)

// Setting names, matching the [editor] keys of the config file.
const (
	OptLineNumbers        = "line_numbers"
	OptWordWrap           = "word_wrap"
	OptAutoIndent         = "auto_indent"
	OptSyntaxHighlighting = "syntax_highlighting"
	OptAutoComplete       = "auto_complete"
	OptAutoCloseBrackets  = "auto_close_brackets"
	OptAutoCloseQuotes    = "auto_close_quotes"
	OptReadOnly           = "read_only"
)

// optionAliases maps ex-style short names to settings.
var optionAliases = map[string]string{
	"number":            OptLineNumbers,
	"nu":                OptLineNumbers,
	"wrap":              OptWordWrap,
	"autoindent":        OptAutoIndent,
	"ai":                OptAutoIndent,
	"syntax":            OptSyntaxHighlighting,
	"autocomplete":      OptAutoComplete,
	"autoclosebrackets": OptAutoCloseBrackets,
	"autoclosequotes":   OptAutoCloseQuotes,
	"readonly":          OptReadOnly,
	"ro":                OptReadOnly,
}

// Options returns the canonical setting names, sorted.
func Options() []string {
	seen := make(map[string]bool)
	for _, v := range optionAliases {
		seen[v] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// OptionName resolves a setting name or alias. Dashes are accepted in place
// of underscores.
func OptionName(name string) (string, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if canon, ok := optionAliases[name]; ok {
		return canon, true
	}
	for _, canon := range optionAliases {
		if canon == name {
			return canon, true
		}
	}
	return "", false
}

// ToggleFor returns the toggle command for a setting, if one exists.
func ToggleFor(option string) (Kind, bool) {
	switch option {
	case OptLineNumbers:
		return ToggleLineNumbers, true
	case OptWordWrap:
		return ToggleWordWrap, true
	case OptAutoIndent:
		return ToggleAutoIndent, true
	case OptSyntaxHighlighting:
		return ToggleSyntaxHighlighting, true
	case OptAutoComplete:
		return ToggleAutoComplete, true
	case OptAutoCloseBrackets:
		return ToggleAutoCloseBrackets, true
	case OptAutoCloseQuotes:
		return ToggleAutoCloseQuotes, true
	}
	return None, false
}

// parseOption parses "NAME" or "noNAME".
func parseOption(s string) (string, bool, error) {
	s = strings.TrimSpace(s)
	if opt, ok := OptionName(s); ok {
		return opt, true, nil
	}
	if rest, ok := strings.CutPrefix(s, "no"); ok {
		if opt, ok := OptionName(rest); ok {
			return opt, false, nil
		}
	}
	return "", false, fmt.Errorf("%w: unknown option %q", ErrInvalidArgument, s)
}
