package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
	"golang.org/x/text/unicode/norm"
)

var closers = map[rune]rune{'(': ')', '[': ']', '{': '}'}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// splice replaces runes [from, to) of a cell with text and returns the
// offset just past the inserted text. It marks the tab dirty.
func (t *Tab) splice(cell, from, to int, text string) int {
	c := t.Notebook.Cell(cell)
	if c == nil {
		return 0
	}
	rs := []rune(c.Common().Text())
	from = clamp(from, 0, len(rs))
	to = clamp(to, from, len(rs))
	c.Common().SetText(string(rs[:from]) + text + string(rs[to:]))
	t.Dirty = true
	return from + utf8.RuneCountInString(text)
}

// moveTo puts the cursor at rune offset off of the current cell.
func (t *Tab) moveTo(off int) {
	line, col := position(cellLines(t.Cell()), off)
	t.Cursor.Line, t.Cursor.Col = line, col
}

// cursorOffset returns the rune offset of the cursor in its cell.
func (t *Tab) cursorOffset() int {
	return offset(cellLines(t.Cell()), t.Cursor.Line, t.Cursor.Col)
}

// ensureCell gives an empty notebook a code cell to type into.
func (t *Tab) ensureCell() {
	if t.Notebook.IsEmpty() {
		t.Notebook.Push(newCell(t.Notebook, notebook.CellCode))
		t.Cursor = Cursor{}
		t.Dirty = true
	}
}

// input inserts text at the cursor and leaves the cursor after it. Typed
// text also gets bracket and quote pairing and auto-indent.
func (s *Session) input(text string, typed bool) {
	if s.Mode() == mode.Command {
		s.cmdline.insert(text)
		return
	}
	if text == "" {
		return
	}
	text = norm.NFC.String(text)
	t := s.Focused()
	t.ensureCell()
	t.clampCursor()

	if s.Mode() == mode.Replace {
		s.overwrite(t, text)
		return
	}

	rs := []rune(t.Cell().Common().Text())
	off := t.cursorOffset()
	var next rune
	if off < len(rs) {
		next = rs[off]
	}

	if !typed {
		t.moveTo(t.splice(t.Cursor.Cell, off, off, text))
		return
	}

	if r, size := utf8.DecodeRuneInString(text); size == len(text) {
		switch {
		case next != 0 && r == next && (isCloser(r) && s.settings.AutoCloseBrackets ||
			isQuote(r) && s.settings.AutoCloseQuotes):
			t.moveTo(off + 1)
			return
		case closers[r] != 0 && s.settings.AutoCloseBrackets:
			end := t.splice(t.Cursor.Cell, off, off, text+string(closers[r]))
			t.moveTo(end - 1)
			return
		case isQuote(r) && s.settings.AutoCloseQuotes && canPairQuote(rs, off):
			end := t.splice(t.Cursor.Cell, off, off, text+text)
			t.moveTo(end - 1)
			return
		}
	}

	if text == "\n" && s.settings.AutoIndent {
		line := cellLines(t.Cell())[t.Cursor.Line]
		text += leadingSpace(line)
	}
	t.moveTo(t.splice(t.Cursor.Cell, off, off, text))
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// canPairQuote reports whether a quote typed at off should get a partner:
// not directly after a word character and not before one.
func canPairQuote(rs []rune, off int) bool {
	if off > 0 && runeClass(rs[off-1]) == classWord {
		return false
	}
	return off == len(rs) || unicode.IsSpace(rs[off]) || isCloser(rs[off])
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// overwrite replaces runes under the cursor, appending at line ends.
func (s *Session) overwrite(t *Tab, text string) {
	for _, r := range text {
		rs := []rune(t.Cell().Common().Text())
		off := t.cursorOffset()
		to := off
		if r != '\n' && off < len(rs) && rs[off] != '\n' {
			to++
		}
		t.moveTo(t.splice(t.Cursor.Cell, off, to, string(r)))
	}
}

// deleteText applies one of the Delete* commands to the focused cell.
func (s *Session) deleteText(k command.Kind) {
	t := s.Focused()
	if t.Notebook.IsEmpty() {
		return
	}
	t.clampCursor()
	lines := cellLines(t.Cell())
	rs := []rune(t.Cell().Common().Text())
	off := t.cursorOffset()
	lineStart := offset(lines, t.Cursor.Line, 0)
	lineEnd := lineStart + runeLen(lines[t.Cursor.Line])

	from, to := off, off
	switch k {
	case command.DeleteText:
		to = off + 1
	case command.DeletePreviousChar:
		from = off - 1
	case command.DeleteWord:
		to = nextWordStart(rs, off)
	case command.DeletePreviousWord:
		from = previousWordStart(rs, off)
	case command.DeleteToEndOfLine:
		to = lineEnd
	case command.DeleteToStartOfLine:
		from = lineStart
	case command.DeleteToEndOfFile:
		to = len(rs)
	case command.DeleteToStartOfFile:
		from = 0
	case command.DeleteLine:
		s.deleteLine(t, lines)
		return
	}
	from, to = clamp(from, 0, len(rs)), clamp(to, 0, len(rs))
	if from >= to {
		return
	}
	t.moveTo(t.splice(t.Cursor.Cell, from, to, ""))
}

// deleteLine removes the cursor line and keeps it in the register.
func (s *Session) deleteLine(t *Tab, lines []string) {
	line := t.Cursor.Line
	s.store(lines[line]+"\n", true)
	rest := append(lines[:line:line], lines[line+1:]...)
	if len(rest) == 0 {
		rest = []string{""}
	}
	t.Cell().Common().SetText(strings.Join(rest, "\n"))
	t.Dirty = true
	t.Cursor.Line = min(line, len(rest)-1)
	t.Cursor.Col = 0
}

// concatenate joins the cursor line, or the selected lines, with the line
// below, separated by one space.
func (s *Session) concatenate() {
	t := s.Focused()
	if t.Notebook.IsEmpty() {
		return
	}
	t.clampCursor()
	first, last := t.Cursor.Line, t.Cursor.Line+1
	if s.Mode().IsVisual() && t.anchor.Cell == t.Cursor.Cell {
		first = min(t.anchor.Line, t.Cursor.Line)
		last = max(t.anchor.Line, t.Cursor.Line, first+1)
	}
	lines := cellLines(t.Cell())
	if last >= len(lines) {
		return
	}
	joined := lines[first]
	col := 0
	for _, l := range lines[first+1 : last+1] {
		l = strings.TrimLeft(l, " \t")
		joined = strings.TrimRight(joined, " \t")
		col = runeLen(joined)
		if l != "" {
			joined += " " + l
		}
	}
	out := append(append(lines[:first:first], joined), lines[last+1:]...)
	t.Cell().Common().SetText(strings.Join(out, "\n"))
	t.Dirty = true
	t.Cursor.Line, t.Cursor.Col = first, col
	if s.Mode().IsVisual() {
		s.switchMode(mode.Normal, "")
	}
}

// insertCell adds an empty cell of type ct at index and moves there.
func (s *Session) insertCell(index int, ct notebook.CellType) {
	t := s.Focused()
	index = clamp(index, 0, t.Notebook.Len())
	if !t.Notebook.Insert(index, newCell(t.Notebook, ct)) {
		return
	}
	t.shiftCells(index, 1)
	t.Cursor = Cursor{Cell: index}
	t.anchor = t.Cursor
	t.Dirty = true
}

// deleteCell removes the focused cell, keeping its text in the register.
func (s *Session) deleteCell() {
	t := s.Focused()
	c := t.Cell()
	if c == nil {
		s.setStatus("no cell")
		return
	}
	if text := c.Common().Text(); text != "" {
		s.store(strings.TrimSuffix(text, "\n")+"\n", true)
	}
	index := t.Cursor.Cell
	t.Notebook.Remove(index)
	t.shiftCells(index, -1)
	t.Cursor = Cursor{Cell: min(index, max(t.Notebook.Len()-1, 0))}
	t.anchor = t.Cursor
	t.Dirty = true
}

// toggleCollapsed flips the "collapsed" flag in the cell metadata.
func (s *Session) toggleCollapsed() {
	t := s.Focused()
	c := t.Cell()
	if c == nil {
		return
	}
	md := c.Common().Metadata
	v, err := md.Set("collapsed", !md.Get("collapsed").Bool())
	if err != nil {
		s.setStatus(err.Error())
		return
	}
	c.Common().Metadata = v
	t.Dirty = true
}
