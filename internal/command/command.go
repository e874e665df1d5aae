package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

// Parse errors.
var (
	ErrEmpty           = errors.New("empty command")
	ErrUnknown         = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Command is one editor action together with its argument.
//
// Only the fields relevant to Kind are set:
//   - Navigate: Motion
//   - Repeat: N and Inner
//   - ToTab: N (1-based)
//   - OpenFile, SaveFileAs, Input, Search, Replace: Text
//   - Input: Typed marks text that came from a keystroke
//   - SwitchToCommandMode: Text is the prompt prefix (":" or "/")
//   - SetOption: Text is the option name, N is 1 to enable and 0 to disable
//   - Substitute: Pattern is the regexp, Text the replacement
//   - InsertCellAbove, InsertCellBelow: Cell
type Command struct {
	Kind    Kind
	Motion  Motion
	Text    string
	Pattern string
	N       int
	Cell    notebook.CellType
	Inner   *Command

	// Typed enables auto-pairing and auto-indent for Input. It has no
	// textual form, so Parse never sets it.
	Typed bool
}

// New returns an argument-less command of kind k.
func New(k Kind) Command { return Command{Kind: k} }

// NavigateTo moves the cursor.
func NavigateTo(m Motion) Command { return Command{Kind: Navigate, Motion: m} }

// RepeatN applies inner n times.
func RepeatN(inner Command, n int) Command {
	return Command{Kind: Repeat, N: n, Inner: &inner}
}

// InputText inserts text at the cursor literally.
func InputText(text string) Command { return Command{Kind: Input, Text: text} }

// TypedText inserts text as if typed, applying the auto_close and
// auto_indent settings.
func TypedText(text string) Command { return Command{Kind: Input, Text: text, Typed: true} }

// Open opens path in a tab.
func Open(path string) Command { return Command{Kind: OpenFile, Text: path} }

// SaveAs writes the focused notebook to path.
func SaveAs(path string) Command { return Command{Kind: SaveFileAs, Text: path} }

// Tab focuses the n-th tab (1-based).
func Tab(n int) Command { return Command{Kind: ToTab, N: n} }

// SearchFor searches the focused notebook for the regexp re.
func SearchFor(re string) Command { return Command{Kind: Search, Text: re} }

// ReplaceWith replaces the selection or current match with text.
func ReplaceWith(text string) Command { return Command{Kind: Replace, Text: text} }

// Substitution replaces every match of re in the focused cell.
func Substitution(re, text string) Command {
	return Command{Kind: Substitute, Pattern: re, Text: text}
}

// Set enables or disables a setting.
func Set(option string, on bool) Command {
	c := Command{Kind: SetOption, Text: option}
	if on {
		c.N = 1
	}
	return c
}

// CellAbove inserts a new cell of type t above the current one.
func CellAbove(t notebook.CellType) Command { return Command{Kind: InsertCellAbove, Cell: t} }

// CellBelow inserts a new cell of type t below the current one.
func CellBelow(t notebook.CellType) Command { return Command{Kind: InsertCellBelow, Cell: t} }

// Prompt enters Command mode with the given prefix.
func Prompt(prefix string) Command { return Command{Kind: SwitchToCommandMode, Text: prefix} }

// IsZero reports whether c is the zero command.
func (c Command) IsZero() bool {
	return c.Kind == None
}

// Equal reports whether two commands have the same kind and arguments.
func (c Command) Equal(o Command) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch kindOf(c.Kind) {
	case argMotion:
		return c.Motion == o.Motion
	case argText, argOptText:
		return c.Text == o.Text && (c.Kind != Input || c.Typed == o.Typed)
	case argNumber:
		return c.N == o.N
	case argCell:
		return c.Cell == o.Cell
	case argOption:
		return c.Text == o.Text && c.N == o.N
	case argSubstitute:
		return c.Pattern == o.Pattern && c.Text == o.Text
	case argRepeat:
		if c.N != o.N || (c.Inner == nil) != (o.Inner == nil) {
			return false
		}
		return c.Inner == nil || c.Inner.Equal(*o.Inner)
	}
	return true
}

// TargetMode returns the mode a mode-switch command enters.
func (c Command) TargetMode() (mode.Mode, bool) {
	switch c.Kind {
	case SwitchToNormalMode:
		return mode.Normal, true
	case SwitchToInsertMode:
		return mode.Insert, true
	case SwitchToVisualMode:
		return mode.Visual, true
	case SwitchToVisualLineMode:
		return mode.VisualLine, true
	case SwitchToVisualBlockMode:
		return mode.VisualBlock, true
	case SwitchToReplaceMode:
		return mode.Replace, true
	case SwitchToCommandMode:
		return mode.Command, true
	case SwitchToUICursorMode:
		return mode.UICursor, true
	}
	return mode.Normal, false
}

// String returns the textual form accepted by Parse.
func (c Command) String() string {
	name := c.Kind.String()
	switch kindOf(c.Kind) {
	case argMotion:
		return name + " " + c.Motion.String()
	case argText:
		return name + " " + quote(c.Text)
	case argOptText:
		if c.Text == "" {
			return name
		}
		return name + " " + quote(c.Text)
	case argNumber:
		return name + " " + strconv.Itoa(c.N)
	case argCell:
		return name + " " + c.Cell.String()
	case argOption:
		if c.N == 0 {
			return name + " no" + c.Text
		}
		return name + " " + c.Text
	case argSubstitute:
		return name + " " + quote(c.Pattern) + " " + quote(c.Text)
	case argRepeat:
		inner := "none"
		if c.Inner != nil {
			inner = c.Inner.String()
		}
		return name + " " + strconv.Itoa(c.N) + " " + inner
	}
	return name
}

// Parse parses the textual form of a command, e.g. "navigate down" or
// "repeat 3 delete-line".
func Parse(s string) (Command, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Command{}, ErrEmpty
	}
	name, rest, _ := strings.Cut(s, " ")
	rest = strings.TrimSpace(rest)

	k, ok := KindFromName(name)
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	c := Command{Kind: k}

	switch kindOf(k) {
	case argNone:
		if rest != "" {
			return Command{}, fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, name)
		}
	case argMotion:
		m, err := ParseMotion(rest)
		if err != nil {
			return Command{}, err
		}
		c.Motion = m
	case argText:
		text, tail, err := unquote(rest, false)
		if err != nil || tail != "" || (text == "" && !strings.HasPrefix(rest, `"`)) {
			return Command{}, fmt.Errorf("%w: %s needs a text argument", ErrInvalidArgument, name)
		}
		c.Text = text
	case argOptText:
		text, tail, err := unquote(rest, false)
		if err != nil || tail != "" {
			return Command{}, fmt.Errorf("%w: %s", ErrInvalidArgument, name)
		}
		c.Text = text
	case argNumber:
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s needs a number", ErrInvalidArgument, name)
		}
		c.N = n
	case argCell:
		t := notebook.CellCode
		if rest != "" {
			if t, ok = notebook.ParseCellType(rest); !ok {
				return Command{}, fmt.Errorf("%w: cell type %q", ErrInvalidArgument, rest)
			}
		}
		c.Cell = t
	case argOption:
		opt, on, err := parseOption(rest)
		if err != nil {
			return Command{}, err
		}
		c = Set(opt, on)
	case argSubstitute:
		pattern, tail, err := unquote(rest, true)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s", ErrInvalidArgument, name)
		}
		text, tail, err := unquote(tail, false)
		if err != nil || tail != "" || pattern == "" {
			return Command{}, fmt.Errorf("%w: %s needs a pattern and a replacement", ErrInvalidArgument, name)
		}
		c.Pattern, c.Text = pattern, text
	case argRepeat:
		count, innerSpec, _ := strings.Cut(rest, " ")
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return Command{}, fmt.Errorf("%w: repeat needs a count", ErrInvalidArgument)
		}
		inner, err := Parse(innerSpec)
		if err != nil {
			return Command{}, err
		}
		c = RepeatN(inner, n)
	}
	return c, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Command {
	c, err := Parse(s)
	if err != nil {
		panic("command: " + err.Error())
	}
	return c
}

func kindOf(k Kind) argKind {
	if k >= kindCount {
		return argNone
	}
	return kindInfo[k].arg
}

// quote wraps text in double quotes when a bare word would not survive
// Parse.
func quote(text string) string {
	if text == "" || strings.ContainsAny(text, " \t\n\r\"\\") {
		return strconv.Quote(text)
	}
	return text
}

// unquote reads one argument from s: a quoted string, the next word when
// word is set, or else the whole remainder. It returns the argument and
// what is left after it.
func unquote(s string, word bool) (arg, rest string, err error) {
	s = strings.TrimLeft(s, " ")
	if strings.HasPrefix(s, `"`) {
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", err
		}
		arg, err = strconv.Unquote(q)
		return arg, strings.TrimSpace(s[len(q):]), err
	}
	if word {
		arg, rest, _ = strings.Cut(s, " ")
		return arg, strings.TrimSpace(rest), nil
	}
	return s, "", nil
}
