package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
)

// maxOutputLines bounds the rows shown for a single output.
const maxOutputLines = 10

type rowKind uint8

const (
	rowGap rowKind = iota
	rowHeader
	rowSource
	rowOutput
)

// row is one display row of the editor.
type row struct {
	kind rowKind
	cell int
	line int

	// text is the row content. For source rows it is a segment of the
	// tab-expanded line starting at rune start; orig maps each rune of the
	// expanded line back to its rune index in the source line.
	text  string
	start int
	orig  []int
	cols  []int
	first bool
	last  bool

	// lineOffset is the rune offset of the line within the cell text.
	lineOffset int
	lineLen    int

	style tcell.Style
}

// editorLayout is the display rows of a notebook at one width.
type editorLayout struct {
	rows   []row
	gutter int
}

// gutterWidth returns the width of the line number column including its
// trailing space, or 0 when line numbers are off.
func gutterWidth(nb *notebook.Notebook, on bool) int {
	if !on {
		return 0
	}
	most := 1
	for c := range nb.Cells() {
		most = max(most, len(c.Common().Source))
	}
	digits := len(fmt.Sprint(most))
	return max(digits, 3) + 1
}

// header returns the title row of cell i.
func header(i int, c notebook.Cell) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] ", i+1)
	switch c := c.(type) {
	case *notebook.CodeCell:
		if c.ExecutionCount != nil {
			fmt.Fprintf(&b, "In [%d]:", *c.ExecutionCount)
		} else {
			b.WriteString("In [ ]:")
		}
	case *notebook.MarkdownCell:
		b.WriteString("Markdown")
	default:
		b.WriteString("Raw")
	}
	if collapsed(c) {
		b.WriteString(" (collapsed)")
	}
	return b.String()
}

func collapsed(c notebook.Cell) bool {
	return c.Common().Metadata.Get("collapsed").Bool()
}

// layoutEditor builds the rows of the focused tab for a content area of
// width columns.
func (r *Renderer) layoutEditor(s *session.Session, width int) editorLayout {
	t := s.Focused()
	st := s.Settings()
	nb := t.Notebook
	lay := editorLayout{gutter: gutterWidth(nb, st.LineNumbers)}
	textWidth := max(width-lay.gutter, 1)

	for i, c := range nb.All() {
		if i > 0 {
			lay.rows = append(lay.rows, row{kind: rowGap, cell: i})
		}
		hstyle := r.styles.Header
		if i == t.Cursor.Cell {
			hstyle = r.styles.Focused
		}
		lay.rows = append(lay.rows, row{kind: rowHeader, cell: i, text: header(i, c), style: hstyle})

		off := 0
		for l, line := range strings.Split(c.Common().Text(), "\n") {
			expanded, cols := expandTabs(line, st.TabWidth)
			orig := make([]int, 0, len(cols))
			for src := 0; src+1 < len(cols); src++ {
				for range cols[src+1] - cols[src] {
					orig = append(orig, src)
				}
			}
			parts, starts := []string{expanded}, []int{0}
			if st.WordWrap {
				parts, starts = segments(expanded, textWidth)
			}
			n := len([]rune(line))
			for k, p := range parts {
				lay.rows = append(lay.rows, row{
					kind:       rowSource,
					cell:       i,
					line:       l,
					text:       p,
					start:      starts[k],
					orig:       orig,
					cols:       cols,
					first:      k == 0,
					last:       k == len(parts)-1,
					lineOffset: off,
					lineLen:    n,
					style:      r.styles.Text,
				})
			}
			off += n + 1
		}

		cc, ok := c.(*notebook.CodeCell)
		if !ok || collapsed(c) {
			continue
		}
		for _, o := range cc.Outputs {
			lay.rows = append(lay.rows, r.outputRows(i, o)...)
		}
	}
	return lay
}

// outputRows renders one output as plain text rows.
func (r *Renderer) outputRows(cell int, o notebook.Output) []row {
	text := strings.TrimSuffix(notebook.OutputText(o), "\n")
	style := r.styles.Output
	prefix := ""
	switch o := o.(type) {
	case *notebook.ExecuteResult:
		prefix = fmt.Sprintf("Out[%d]: ", o.ExecutionCount)
	case *notebook.ErrorOutput:
		style = r.styles.Error
	case *notebook.StreamOutput:
		if o.Name == notebook.StreamStderr {
			style = r.styles.Error
		}
	}

	lines := strings.Split(text, "\n")
	hidden := 0
	if len(lines) > maxOutputLines {
		hidden = len(lines) - maxOutputLines
		lines = lines[:maxOutputLines]
	}
	rows := make([]row, 0, len(lines)+1)
	for k, l := range lines {
		if k == 0 {
			l = prefix + l
		}
		rows = append(rows, row{kind: rowOutput, cell: cell, text: l, style: style})
	}
	if hidden > 0 {
		rows = append(rows, row{kind: rowOutput, cell: cell, text: fmt.Sprintf("… %d more lines", hidden), style: r.styles.Output})
	}
	return rows
}

// cursorRow returns the index of the row holding the cursor and the
// display column of the cursor within the row text.
func (lay editorLayout) cursorRow(c session.Cursor) (int, int) {
	for i, rw := range lay.rows {
		if rw.kind != rowSource || rw.cell != c.Cell || rw.line != c.Line {
			continue
		}
		col := min(c.Col, len(rw.cols)-1)
		e := rw.cols[col]
		next := i + 1
		if !rw.last && next < len(lay.rows) && e >= lay.rows[next].start {
			continue
		}
		return i, width(rw.text, e-rw.start) + max(e-rw.start-len([]rune(rw.text)), 0)
	}
	return -1, 0
}

// scroll adjusts the first visible row so cursor row cur stays on screen
// with margin rows of context.
func (r *Renderer) scroll(cur, total, height, margin int) int {
	if height <= 0 {
		return 0
	}
	margin = min(margin, (height-1)/2)
	if cur >= 0 {
		if cur-margin < r.top {
			r.top = cur - margin
		}
		if cur+margin >= r.top+height {
			r.top = cur + margin - height + 1
		}
	}
	r.top = min(r.top, max(total-height, 0))
	r.top = max(r.top, 0)
	return r.top
}

// drawEditor draws the notebook into cv and returns the screen position
// of the cursor.
func (r *Renderer) drawEditor(cv canvas, s *session.Session) (x, y int, ok bool) {
	t := s.Focused()
	cv.fill(r.styles.Text)
	if t.Notebook.IsEmpty() {
		cv.text(0, 0, fit("(empty notebook)", cv.width), r.styles.Header)
		return 0, 0, false
	}

	lay := r.layoutEditor(s, cv.width)
	cur, curX := lay.cursorRow(t.Cursor)
	top := r.scroll(cur, len(lay.rows), cv.height, s.Settings().ScrollOff)

	marks := map[[2]int]bool{}
	for _, b := range t.Bookmarks() {
		marks[[2]int{b.Cell, b.Line}] = true
	}
	hl := s.Highlights()

	for y := range cv.height {
		i := top + y
		if i >= len(lay.rows) {
			break
		}
		rw := lay.rows[i]
		switch rw.kind {
		case rowHeader, rowOutput:
			cv.text(lay.gutter, y, fit(rw.text, cv.width-lay.gutter), rw.style)
		case rowSource:
			r.drawGutter(cv, y, lay.gutter, rw, marks[[2]int{rw.cell, rw.line}])
			r.drawSource(cv, y, lay.gutter, rw, hl)
		}
	}

	if cur < top || cur >= top+cv.height {
		return 0, 0, false
	}
	return lay.gutter + curX, cur - top, true
}

func (r *Renderer) drawGutter(cv canvas, y, w int, rw row, mark bool) {
	if w == 0 {
		return
	}
	num := ""
	if rw.first {
		num = fmt.Sprintf("%*d", w-1, rw.line+1)
	}
	cv.text(0, y, num, r.styles.Gutter)
	if mark && rw.first {
		cv.text(w-1, y, "•", r.styles.Focused)
	}
}

// drawSource draws a source row, styling selected and matched runes.
func (r *Renderer) drawSource(cv canvas, y, x0 int, rw row, hl []session.Highlight) {
	styleAt := func(src int) (tcell.Style, bool) {
		off := rw.lineOffset + src
		style := rw.style
		for _, h := range hl {
			if h.Cell != rw.cell || off < h.From || off >= h.To {
				continue
			}
			if h.Kind == session.HighlightSelection {
				return r.styles.Selection, true
			}
			style = r.styles.Match
		}
		return style, false
	}

	x := x0
	e := rw.start
	g := uniseg.NewGraphemes(rw.text)
	for g.Next() {
		n := len(g.Runes())
		style := rw.style
		if e < len(rw.orig) {
			style, _ = styleAt(rw.orig[e])
		}
		if x+g.Width() > cv.width {
			return
		}
		x = cv.text(x, y, g.Str(), style)
		e += n
	}
	if rw.last && x < cv.width {
		if st, selected := styleAt(rw.lineLen); selected {
			cv.text(x, y, " ", st)
		}
	}
}
