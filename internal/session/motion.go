package session

import (
	"slices"
	"unicode"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// navigate moves the cursor of the focused tab, or of the command line in
// Command mode.
func (s *Session) navigate(m command.Motion) {
	if s.Mode() == mode.Command {
		s.cmdline.move(m)
		return
	}
	t := s.Focused()
	if t.Notebook.IsEmpty() {
		t.Cursor = Cursor{}
		return
	}
	t.clampCursor()
	from := t.Cursor
	t.Cursor = t.clamped(s.target(t, m))
	if s.Mode().IsVisual() && t.Cursor.Cell != from.Cell {
		t.anchor = t.Cursor
	}
}

func (s *Session) target(t *Tab, m command.Motion) Cursor {
	c := t.Cursor
	lines := cellLines(t.Cell())
	switch m.Kind {
	case command.Up:
		return t.vertical(c, -1)
	case command.Down:
		return t.vertical(c, 1)
	case command.PageUp:
		for range s.pageSize {
			c = t.vertical(c, -1)
		}
		return c
	case command.PageDown:
		for range s.pageSize {
			c = t.vertical(c, 1)
		}
		return c
	case command.Left:
		c.Col = max(c.Col-1, 0)
	case command.Right:
		c.Col = min(c.Col+1, runeLen(lines[c.Line]))
	case command.ToLine:
		c.Line = clamp(m.N-1, 0, len(lines)-1)
		c.Col = min(c.Col, runeLen(lines[c.Line]))
	case command.ToColumn:
		c.Col = clamp(m.N-1, 0, runeLen(lines[c.Line]))
	case command.ToLineStart:
		c.Col = 0
	case command.ToLineEnd:
		c.Col = runeLen(lines[c.Line])
	case command.ToNextWordStart, command.ToNextWordEnd, command.ToPreviousWordStart:
		rs := []rune(t.Cell().Common().Text())
		off := offset(lines, c.Line, c.Col)
		switch m.Kind {
		case command.ToNextWordStart:
			off = nextWordStart(rs, off)
		case command.ToNextWordEnd:
			off = nextWordEnd(rs, off)
		default:
			off = previousWordStart(rs, off)
		}
		c.Line, c.Col = position(lines, off)

	case command.ToNextSearchResultStart, command.ToNextSearchResultEnd,
		command.ToPreviousSearchResultStart, command.ToPreviousSearchResultEnd:
		if t.search == nil {
			s.setStatus("no previous search")
			return c
		}
		forward := m.Kind == command.ToNextSearchResultStart || m.Kind == command.ToNextSearchResultEnd
		end := m.Kind == command.ToNextSearchResultEnd || m.Kind == command.ToPreviousSearchResultEnd
		return s.jump(t.searchMatches(), c, forward, end, "pattern not found")

	case command.ToNextOutlineItemStart, command.ToNextOutlineItemEnd,
		command.ToPreviousOutlineItemStart, command.ToPreviousOutlineItemEnd:
		var items []span
		for _, it := range Outline(t.Notebook) {
			items = append(items, it.span())
		}
		forward := m.Kind == command.ToNextOutlineItemStart || m.Kind == command.ToNextOutlineItemEnd
		end := m.Kind == command.ToNextOutlineItemEnd || m.Kind == command.ToPreviousOutlineItemEnd
		return s.jump(items, c, forward, end, "no headings")

	case command.ToNextBookmark:
		var marks []span
		for _, b := range t.bookmarks {
			p := Cursor{Cell: b.Cell, Line: b.Line}
			marks = append(marks, span{p, p})
		}
		return s.jump(marks, Cursor{Cell: c.Cell, Line: c.Line}, true, false, "no bookmarks")

	case command.ToNextCell:
		return Cursor{Cell: min(c.Cell+1, t.Notebook.Len()-1)}
	case command.ToPreviousCell:
		return Cursor{Cell: max(c.Cell-1, 0)}
	case command.ToFirstCell:
		return Cursor{}
	case command.ToLastCell:
		return Cursor{Cell: t.Notebook.Len() - 1}
	}
	return c
}

// vertical moves one line up (-1) or down (+1), crossing cell boundaries.
func (t *Tab) vertical(c Cursor, dir int) Cursor {
	lines := cellLines(t.Notebook.Cell(c.Cell))
	switch {
	case dir < 0 && c.Line > 0:
		c.Line--
	case dir < 0 && c.Cell > 0:
		c.Cell--
		c.Line = len(cellLines(t.Notebook.Cell(c.Cell))) - 1
	case dir > 0 && c.Line < len(lines)-1:
		c.Line++
	case dir > 0 && c.Cell < t.Notebook.Len()-1:
		c.Cell++
		c.Line = 0
	default:
		return c
	}
	c.Col = min(c.Col, runeLen(cellLines(t.Notebook.Cell(c.Cell))[c.Line]))
	return c
}

// span is a located range; end is the position of its last rune.
type span struct {
	start, end Cursor
}

// jump moves to the next (or previous) span relative to c, wrapping around
// the document. It leaves a status when wrapping or when there is no span.
func (s *Session) jump(spans []span, c Cursor, forward, end bool, none string) Cursor {
	if len(spans) == 0 {
		s.setStatus(none)
		return c
	}
	pick := func(sp span) Cursor {
		if end {
			return sp.end
		}
		return sp.start
	}
	if forward {
		for _, sp := range spans {
			if c.Before(pick(sp)) {
				return pick(sp)
			}
		}
		s.setStatus("search wrapped")
		return pick(spans[0])
	}
	for _, sp := range slices.Backward(spans) {
		if pick(sp).Before(c) {
			return pick(sp)
		}
	}
	s.setStatus("search wrapped")
	return pick(spans[len(spans)-1])
}

const (
	classSpace = iota
	classWord
	classPunct
)

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

func nextWordStart(rs []rune, off int) int {
	if off >= len(rs) {
		return len(rs)
	}
	if cls := runeClass(rs[off]); cls != classSpace {
		for off < len(rs) && runeClass(rs[off]) == cls {
			off++
		}
	}
	for off < len(rs) && runeClass(rs[off]) == classSpace {
		off++
	}
	return off
}

func nextWordEnd(rs []rune, off int) int {
	off++
	for off < len(rs) && runeClass(rs[off]) == classSpace {
		off++
	}
	if off >= len(rs) {
		return max(len(rs)-1, 0)
	}
	cls := runeClass(rs[off])
	for off+1 < len(rs) && runeClass(rs[off+1]) == cls {
		off++
	}
	return off
}

func previousWordStart(rs []rune, off int) int {
	off = min(off, len(rs))
	for off > 0 && runeClass(rs[off-1]) == classSpace {
		off--
	}
	if off == 0 {
		return 0
	}
	cls := runeClass(rs[off-1])
	for off > 0 && runeClass(rs[off-1]) == cls {
		off--
	}
	return off
}
