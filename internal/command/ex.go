package command

import (
	"fmt"
	"strconv"
	"strings"
)

// exCommands lists the short ex-line words, for completion.
var exCommands = []string{
	"w", "write", "q", "quit", "wq", "x", "e", "edit",
	"tabnew", "tabnext", "tabn", "tabprevious", "tabp", "tab", "tabclose",
	"set", "s", "undo", "redo",
}

// ParseEx parses a command line typed after ':' or '/'.
//
//	w            save
//	w PATH       save as
//	q            quit
//	wq, x        save then quit
//	e PATH       open
//	tabnew       new empty tab (tabnew PATH opens PATH)
//	tabn, tabp   next, previous tab
//	tab N        focus tab N
//	tabclose     close the focused tab
//	N            go to line N
//	set OPT      enable a setting (set noOPT disables it)
//	s/RE/TEXT    substitute in the focused cell
//	N CMD        repeat CMD N times
//	/RE          search
//
// Anything else is parsed as a command name, so ":toggle-outline" works.
func ParseEx(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmpty
	}

	if re, ok := strings.CutPrefix(line, "/"); ok {
		if re == "" {
			return Command{}, fmt.Errorf("%w: empty search pattern", ErrInvalidArgument)
		}
		return SearchFor(re), nil
	}
	if strings.HasPrefix(line, "s/") {
		return parseSubstitute(line[1:])
	}

	word, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	if n, err := strconv.Atoi(word); err == nil {
		if arg == "" {
			return NavigateTo(Line(n)), nil
		}
		inner, err := ParseEx(arg)
		if err != nil {
			return Command{}, err
		}
		return RepeatN(inner, n), nil
	}

	switch word {
	case "w", "write":
		if arg == "" {
			return New(SaveFile), nil
		}
		return SaveAs(arg), nil
	case "q", "q!", "quit", "qa", "qa!":
		return New(Quit), nil
	case "wq", "x", "xit":
		return New(SaveAndQuit), nil
	case "e", "edit":
		if arg == "" {
			return Command{}, fmt.Errorf("%w: %s needs a path", ErrInvalidArgument, word)
		}
		return Open(arg), nil
	case "tabnew", "tabe", "tabedit":
		if arg == "" {
			return New(NewFile), nil
		}
		return Open(arg), nil
	case "tabn", "tabnext":
		if arg == "" {
			return New(ToNextTab), nil
		}
		return parseTab(word, arg)
	case "tabp", "tabprevious", "tabN":
		return New(ToPreviousTab), nil
	case "tab":
		return parseTab(word, arg)
	case "tabc", "tabclose", "close", "bd":
		return New(CloseFile), nil
	case "set", "se":
		opt, on, err := parseOption(arg)
		if err != nil {
			return Command{}, err
		}
		return Set(opt, on), nil
	case "undo", "u":
		return New(Undo), nil
	case "redo", "red":
		return New(Redo), nil
	}

	return Parse(line)
}

func parseTab(word, arg string) (Command, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %s needs a tab number", ErrInvalidArgument, word)
	}
	return Tab(n), nil
}

// parseSubstitute parses "/RE/TEXT" with an optional trailing "/".
// A backslash escapes the delimiter.
func parseSubstitute(s string) (Command, error) {
	parts := splitUnescaped(s[1:], '/')
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Command{}, fmt.Errorf("%w: expected s/PATTERN/TEXT", ErrInvalidArgument)
	}
	if len(parts) == 3 && parts[2] != "" {
		return Command{}, fmt.Errorf("%w: unsupported flags %q", ErrInvalidArgument, parts[2])
	}
	return Substitution(parts[0], parts[1]), nil
}

func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == sep:
			b.WriteByte(sep)
			i++
		case s[i] == sep:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(parts, b.String())
}
