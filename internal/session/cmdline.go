package session

import (
	"strings"
	"unicode"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
)

// CommandLine is the single-line prompt edited in Command mode.
type CommandLine struct {
	// Prefix is the prompt character, ":" for ex commands or "/" for search.
	Prefix string

	// Cursor is the rune index of the insertion point within the text.
	Cursor int

	text    []rune
	history *History

	// walk is the history position shown by Up/Down, -1 for the draft.
	walk  int
	draft string

	// Completion cycling state.
	candidates []string
	next       int
}

func newCommandLine() CommandLine {
	return CommandLine{history: NewHistory(defaultHistorySize), walk: -1}
}

// Text returns the text typed after the prefix.
func (c CommandLine) Text() string {
	return string(c.text)
}

// String returns the prefix followed by the text.
func (c CommandLine) String() string {
	return c.Prefix + string(c.text)
}

// History returns the submitted lines, most recent first.
func (c CommandLine) History() []string {
	return c.history.Recent(0)
}

func (c *CommandLine) start(prefix string) {
	c.clear()
	c.Prefix = prefix
}

func (c *CommandLine) clear() {
	c.Prefix = ""
	c.text = nil
	c.Cursor = 0
	c.walk = -1
	c.draft = ""
	c.resetCompletion()
}

func (c *CommandLine) set(text string) {
	c.text = []rune(text)
	c.Cursor = len(c.text)
}

func (c *CommandLine) insert(text string) {
	text = strings.ReplaceAll(text, "\n", "")
	r := []rune(text)
	c.text = append(c.text[:c.Cursor], append(r, c.text[c.Cursor:]...)...)
	c.Cursor += len(r)
}

// move applies a horizontal motion or walks the history.
func (c *CommandLine) move(m command.Motion) {
	switch m.Kind {
	case command.Left:
		c.Cursor = max(c.Cursor-1, 0)
	case command.Right:
		c.Cursor = min(c.Cursor+1, len(c.text))
	case command.ToLineStart:
		c.Cursor = 0
	case command.ToLineEnd:
		c.Cursor = len(c.text)
	case command.ToColumn:
		c.Cursor = clamp(m.N-1, 0, len(c.text))
	case command.Up:
		c.walkHistory(1)
	case command.Down:
		c.walkHistory(-1)
	}
}

func (c *CommandLine) walkHistory(dir int) {
	if c.history == nil {
		return
	}
	next := c.walk + dir
	if next < -1 || next >= c.history.Len() {
		return
	}
	if c.walk == -1 {
		c.draft = string(c.text)
	}
	c.walk = next
	if next == -1 {
		c.set(c.draft)
		return
	}
	line, _ := c.history.At(next)
	c.set(line)
}

// delete applies a deletion command to the text.
func (c *CommandLine) delete(k command.Kind) {
	switch k {
	case command.DeleteText:
		if c.Cursor < len(c.text) {
			c.text = append(c.text[:c.Cursor], c.text[c.Cursor+1:]...)
		}
	case command.DeletePreviousChar:
		if c.Cursor > 0 {
			c.text = append(c.text[:c.Cursor-1], c.text[c.Cursor:]...)
			c.Cursor--
		}
	case command.DeletePreviousWord:
		start := c.Cursor
		for start > 0 && unicode.IsSpace(c.text[start-1]) {
			start--
		}
		for start > 0 && !unicode.IsSpace(c.text[start-1]) {
			start--
		}
		c.text = append(c.text[:start], c.text[c.Cursor:]...)
		c.Cursor = start
	case command.DeleteWord:
		end := c.Cursor
		for end < len(c.text) && !unicode.IsSpace(c.text[end]) {
			end++
		}
		for end < len(c.text) && unicode.IsSpace(c.text[end]) {
			end++
		}
		c.text = append(c.text[:c.Cursor], c.text[end:]...)
	case command.DeleteToStartOfLine, command.DeleteToStartOfFile:
		c.text = c.text[c.Cursor:]
		c.Cursor = 0
	case command.DeleteToEndOfLine, command.DeleteToEndOfFile, command.DeleteLine:
		if k == command.DeleteLine {
			c.text, c.Cursor = nil, 0
			return
		}
		c.text = c.text[:c.Cursor]
	}
}

// complete replaces the first word with the next completion candidate.
func (c *CommandLine) complete() {
	if c.Prefix != ":" {
		return
	}
	if c.candidates == nil {
		word, _, _ := strings.Cut(string(c.text), " ")
		c.candidates = command.Complete(word)
		c.next = 0
		if len(c.candidates) == 0 {
			return
		}
	}
	if len(c.candidates) == 0 {
		return
	}
	_, rest, hasRest := strings.Cut(string(c.text), " ")
	line := c.candidates[c.next]
	if hasRest {
		line += " " + rest
	}
	c.set(line)
	c.next = (c.next + 1) % len(c.candidates)
}

func (c *CommandLine) resetCompletion() {
	c.candidates = nil
	c.next = 0
}

// submit records the line in history and returns it.
func (c *CommandLine) submit() (prefix, text string) {
	prefix, text = c.Prefix, string(c.text)
	if c.history != nil && strings.TrimSpace(text) != "" {
		c.history.Add(text)
	}
	return prefix, text
}
