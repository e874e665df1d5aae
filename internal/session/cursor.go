package session

import (
	"strings"
	"unicode/utf8"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

// Cursor is a position in a notebook. Line and Col are 0-based; Col counts
// runes.
type Cursor struct {
	Cell int
	Line int
	Col  int
}

// Before reports whether c sorts before o in document order.
func (c Cursor) Before(o Cursor) bool {
	if c.Cell != o.Cell {
		return c.Cell < o.Cell
	}
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Col < o.Col
}

// cellLines splits the text of c into lines. A cell always has at least
// one line.
func cellLines(c notebook.Cell) []string {
	if c == nil {
		return []string{""}
	}
	return strings.Split(c.Common().Text(), "\n")
}

// runeLen returns the length of s in runes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// offset converts a (line, col) pair into a rune offset within text.
func offset(lines []string, line, col int) int {
	off := 0
	for i := 0; i < line && i < len(lines); i++ {
		off += runeLen(lines[i]) + 1
	}
	return off + col
}

// position converts a rune offset within text back to (line, col).
func position(lines []string, off int) (line, col int) {
	for i, l := range lines {
		n := runeLen(l)
		if off <= n || i == len(lines)-1 {
			return i, min(off, n)
		}
		off -= n + 1
	}
	return 0, 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
