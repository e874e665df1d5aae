package session

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// textRange is a half-open rune range [from, to) of one cell.
type textRange struct {
	cell     int
	from, to int
}

// rangesOf returns the ranges covered by sel. Block selections yield one
// range per line.
func (t *Tab) rangesOf(sel Selection) []textRange {
	a, h := t.clamped(sel.Anchor), t.clamped(sel.Head)
	if a.Cell != h.Cell {
		a = h
	}
	if h.Before(a) {
		a, h = h, a
	}
	lines := cellLines(t.Notebook.Cell(a.Cell))
	switch sel.Mode {
	case mode.VisualLine:
		from := offset(lines, a.Line, 0)
		to := offset(lines, h.Line, runeLen(lines[h.Line])) + 1
		return []textRange{{a.Cell, from, to}}
	case mode.VisualBlock:
		left, right := min(a.Col, h.Col), max(a.Col, h.Col)+1
		var out []textRange
		for l := a.Line; l <= h.Line; l++ {
			n := runeLen(lines[l])
			from := offset(lines, l, min(left, n))
			to := offset(lines, l, min(right, n))
			out = append(out, textRange{a.Cell, from, to})
		}
		return out
	default:
		from := offset(lines, a.Line, a.Col)
		to := offset(lines, h.Line, h.Col) + 1
		return []textRange{{a.Cell, from, to}}
	}
}

// selectionRanges returns the committed selections plus the active visual
// selection, sorted in document order.
func (s *Session) selectionRanges(t *Tab) []textRange {
	sels := t.Selections()
	if m := s.Mode(); m.IsVisual() {
		sels = append(sels, Selection{Anchor: t.anchor, Head: t.Cursor, Mode: m})
	}
	var out []textRange
	for _, sel := range sels {
		out = append(out, t.rangesOf(sel)...)
	}
	slices.SortFunc(out, func(a, b textRange) int {
		return cmp.Or(cmp.Compare(a.cell, b.cell), cmp.Compare(a.from, b.from))
	})
	return out
}

// rangeText returns the text of r, clamped to the cell.
func (t *Tab) rangeText(r textRange) string {
	c := t.Notebook.Cell(r.cell)
	if c == nil {
		return ""
	}
	rs := []rune(c.Common().Text())
	from, to := clamp(r.from, 0, len(rs)), clamp(r.to, 0, len(rs))
	return string(rs[from:max(from, to)])
}

// removeRanges deletes ranges (sorted) last first and leaves the cursor at
// the start of the first one.
func (t *Tab) removeRanges(ranges []textRange) {
	for _, r := range slices.Backward(ranges) {
		t.splice(r.cell, r.from, r.to, "")
	}
	if len(ranges) > 0 {
		t.Cursor.Cell = ranges[0].cell
		t.moveTo(ranges[0].from)
	}
}

// replaceRanges overwrites every range with text.
func (s *Session) replaceRanges(t *Tab, ranges []textRange, text string) {
	for _, r := range slices.Backward(ranges) {
		t.splice(r.cell, r.from, r.to, text)
	}
	t.selections = nil
	t.Cursor.Cell = ranges[0].cell
	t.moveTo(ranges[0].from)
}

// copySelection copies the selections, or the cursor line when there is
// none, into the register. With cut the copied text is removed.
func (s *Session) copySelection(cut bool) {
	t := s.Focused()
	if t.Notebook.IsEmpty() {
		return
	}
	t.clampCursor()
	ranges := s.selectionRanges(t)
	if len(ranges) == 0 {
		if cut {
			s.deleteLine(t, cellLines(t.Cell()))
			return
		}
		s.store(cellLines(t.Cell())[t.Cursor.Line]+"\n", true)
		return
	}

	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = t.rangeText(r)
	}
	linewise := s.Mode() == mode.VisualLine && len(t.selections) == 0
	text := strings.Join(parts, "\n")
	if linewise && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	s.store(text, linewise)

	if cut {
		t.removeRanges(ranges)
	} else {
		t.Cursor.Cell = ranges[0].cell
		t.moveTo(ranges[0].from)
	}
	t.selections = nil
	s.switchMode(mode.Normal, "")
}

// paste inserts the register. Linewise text goes below the cursor line;
// in Visual modes the selection is replaced.
func (s *Session) paste() {
	t := s.Focused()
	text, linewise := s.register.load()
	if text == "" {
		s.setStatus("register is empty")
		return
	}
	t.ensureCell()
	t.clampCursor()
	if ranges := s.selectionRanges(t); len(ranges) > 0 {
		s.replaceRanges(t, ranges, strings.TrimSuffix(text, "\n"))
		s.switchMode(mode.Normal, "")
		return
	}
	if linewise {
		lines := cellLines(t.Cell())
		end := offset(lines, t.Cursor.Line, runeLen(lines[t.Cursor.Line]))
		t.splice(t.Cursor.Cell, end, end, "\n"+strings.TrimSuffix(text, "\n"))
		t.Cursor.Line++
		t.Cursor.Col = 0
		return
	}
	t.moveTo(t.splice(t.Cursor.Cell, t.cursorOffset(), t.cursorOffset(), text))
}

// skip commits the active selection and starts a new one at the cursor.
func (s *Session) skip() {
	t := s.Focused()
	m := s.Mode()
	if !m.IsVisual() {
		s.setStatus("no selection")
		return
	}
	t.selections = append(t.selections, Selection{Anchor: t.anchor, Head: t.Cursor, Mode: m})
	t.anchor = t.Cursor
}

// store fills the register, logging clipboard failures.
func (s *Session) store(text string, linewise bool) {
	if err := s.register.store(text, linewise); err != nil {
		s.log.Debug("clipboard write failed", "err", err)
	}
}
