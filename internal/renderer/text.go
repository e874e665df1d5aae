package renderer

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rivo/uniseg"

	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
)

// canvas draws into a rectangle of the backend. Writes outside the
// rectangle are dropped.
type canvas struct {
	b             backend.Backend
	x, y          int
	width, height int
}

func (c canvas) fill(style tcell.Style) {
	for row := range c.height {
		c.clearRow(row, style)
	}
}

func (c canvas) clearRow(row int, style tcell.Style) {
	if row < 0 || row >= c.height {
		return
	}
	for col := range c.width {
		c.b.SetCell(c.x+col, c.y+row, backend.Cell{Rune: ' ', Style: style})
	}
}

// text draws s at (col, row) and returns the column after the last
// grapheme drawn. Graphemes that do not fit are dropped.
func (c canvas) text(col, row int, s string, style tcell.Style) int {
	if row < 0 || row >= c.height {
		return col
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if col+w > c.width {
			break
		}
		rs := g.Runes()
		if w > 0 {
			c.b.SetCell(c.x+col, c.y+row, backend.Cell{
				Rune:      rs[0],
				Combining: string(rs[1:]),
				Style:     style,
			})
		}
		col += w
	}
	return col
}

// line clears row and draws s truncated to the canvas width.
func (c canvas) line(row int, s string, style tcell.Style) {
	c.clearRow(row, style)
	c.text(0, row, fit(s, c.width), style)
}

// fit truncates s to width columns, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// expandTabs replaces tabs with spaces up to the next tab stop. cols maps
// each rune index of line (and one past the end) to its rune index in the
// expanded text.
func expandTabs(line string, tabWidth int) (text string, cols []int) {
	if tabWidth < 1 {
		tabWidth = 1
	}
	var b strings.Builder
	n := 0
	for _, r := range line {
		cols = append(cols, n)
		if r == '\t' {
			pad := tabWidth - n%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			n += pad
			continue
		}
		b.WriteRune(r)
		n++
	}
	cols = append(cols, n)
	return b.String(), cols
}

// segments splits an expanded line into display rows of at most width
// columns, breaking at spaces where possible. It returns the rune offset
// of each segment within text.
func segments(text string, width int) (parts []string, starts []int) {
	if width < 1 || uniseg.StringWidth(text) <= width {
		return []string{text}, []int{0}
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	parts = strings.Split(wrapped, "\n")

	src := []rune(text)
	pos := 0
	for _, p := range parts {
		pr := []rune(p)
		for pos < len(src) && unicode.IsSpace(src[pos]) && (len(pr) == 0 || src[pos] != pr[0]) {
			pos++
		}
		starts = append(starts, pos)
		pos += len(pr)
	}
	return parts, starts
}

// width returns the display width of the first n runes of s.
func width(s string, n int) int {
	rs := []rune(s)
	n = min(max(n, 0), len(rs))
	return uniseg.StringWidth(string(rs[:n]))
}
