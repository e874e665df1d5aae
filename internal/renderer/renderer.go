package renderer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/config"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
)

// Side pane widths are a quarter of the screen, within these bounds.
const (
	minPaneWidth = 12
	maxPaneWidth = 32
)

// Renderer draws sessions onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	styles  Styles

	// top is the first visible editor row.
	top int

	frameCount uint64
}

// New creates a renderer drawing with the colors of th.
func New(b backend.Backend, th config.Theme) *Renderer {
	return &Renderer{backend: b, styles: NewStyles(th)}
}

// Styles returns the styles in use.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// EditorHeight returns the number of rows left for notebook content on a
// screen of the given height, which is the natural page size.
func EditorHeight(s *session.Session, height int) int {
	p := s.Panes()
	h := height - 1
	if p.Tabline {
		h--
	}
	if p.StatusBar {
		h--
	}
	return max(h, 1)
}

func paneWidth(total int) int {
	return min(max(total/4, minPaneWidth), maxPaneWidth)
}

// Render draws a full frame of s and flushes it.
func (r *Renderer) Render(s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := r.backend.Size()
	if w <= 0 || h <= 0 {
		return
	}
	p := s.Panes()

	y := 0
	if p.Tabline {
		r.drawTabline(canvas{b: r.backend, y: y, width: w, height: 1}, s)
		y++
	}
	bodyHeight := EditorHeight(s, h)
	if y+bodyHeight > h-1 {
		bodyHeight = max(h-1-y, 0)
	}

	left, right := 0, 0
	if p.Left != session.LeftNone {
		left = paneWidth(w)
	}
	if p.Right != session.RightNone {
		right = paneWidth(w)
	}
	if left+right >= w-minPaneWidth {
		left, right = 0, 0
	}

	x := 0
	if left > 0 {
		r.drawLeft(canvas{b: r.backend, x: 0, y: y, width: left - 1, height: bodyHeight}, s)
		r.drawBorder(canvas{b: r.backend, x: left - 1, y: y, width: 1, height: bodyHeight})
		x = left
	}
	editorWidth := w - left - right
	if right > 0 {
		r.drawBorder(canvas{b: r.backend, x: w - right, y: y, width: 1, height: bodyHeight})
		r.drawRight(canvas{b: r.backend, x: w - right + 1, y: y, width: right - 1, height: bodyHeight}, s)
	}

	editor := canvas{b: r.backend, x: x, y: y, width: editorWidth, height: bodyHeight}
	cx, cy, cursorOK := r.drawEditor(editor, s)
	y += bodyHeight

	if p.StatusBar && y < h-1 {
		r.drawStatus(canvas{b: r.backend, y: y, width: w, height: 1}, s)
		y++
	}

	bottom := canvas{b: r.backend, y: h - 1, width: w, height: 1}
	m := s.Mode()
	r.backend.SetCursorStyle(m.CursorStyle())
	switch {
	case m == mode.Command:
		col := r.drawCommandLine(bottom, s)
		r.backend.ShowCursor(col, h-1)
	case m == mode.UICursor:
		bottom.line(0, s.Status(), r.styles.Text)
		r.backend.HideCursor()
	default:
		bottom.line(0, s.Status(), r.styles.Text)
		if cursorOK {
			r.backend.ShowCursor(editor.x+min(cx, editor.width-1), editor.y+cy)
		} else {
			r.backend.HideCursor()
		}
	}

	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) drawBorder(cv canvas) {
	for y := range cv.height {
		cv.text(0, y, "│", r.styles.Border)
	}
}

// tabTitle returns the tab line label of t.
func tabTitle(i int, t *session.Tab) string {
	title := fmt.Sprintf(" %d:%s", i+1, t.Name)
	if t.Dirty {
		title += " +"
	}
	if t.ReadOnly {
		title += " [RO]"
	}
	return title + " "
}

func (r *Renderer) drawTabline(cv canvas, s *session.Session) {
	cv.fill(r.styles.Status)
	x := 0
	for i, t := range s.Tabs() {
		style := r.styles.Tab
		if i == s.FocusIndex() {
			style = r.styles.TabActive
			if s.Mode() == mode.UICursor && s.Panes().Focus == session.FocusTabline {
				style = style.Underline(true)
			}
		}
		x = cv.text(x, 0, fit(tabTitle(i, t), cv.width-x), style)
		if x >= cv.width {
			return
		}
	}
}

// paneRows draws a titled list, highlighting row sel when active.
func (r *Renderer) paneRows(cv canvas, title string, rows []string, sel int, active bool) {
	cv.fill(r.styles.Text)
	cv.line(0, title, r.styles.PaneTitle)
	height := cv.height - 1
	if height <= 0 {
		return
	}
	first := 0
	if active && sel >= height {
		first = sel - height + 1
	}
	for y := range height {
		i := first + y
		if i >= len(rows) {
			return
		}
		style := r.styles.Text
		if active && i == sel {
			style = r.styles.PaneRow
		}
		cv.line(y+1, rows[i], style)
	}
}

func (r *Renderer) drawLeft(cv canvas, s *session.Session) {
	p := s.Panes()
	active := s.Mode() == mode.UICursor && p.Focus == session.FocusLeft
	var rows []string
	title := p.Left.String()
	switch p.Left {
	case session.LeftFilePicker:
		pk := s.Picker()
		title += ": " + pk.Dir
		rows = pk.Entries
		if pk.Err != nil {
			rows = []string{pk.Err.Error()}
		}
	case session.LeftOutline:
		for _, it := range session.Outline(s.Focused().Notebook) {
			rows = append(rows, strings.Repeat("  ", it.Level-1)+it.Title)
		}
	case session.LeftSettings:
		st := s.Settings()
		for _, name := range session.SettingNames {
			on, _ := st.Get(name)
			if name == command.OptReadOnly {
				on = s.Focused().ReadOnly
			}
			mark := "[ ]"
			if on {
				mark = "[x]"
			}
			rows = append(rows, mark+" "+name)
		}
	}
	r.paneRows(cv, title, rows, p.LeftIndex, active)
}

func (r *Renderer) drawRight(cv canvas, s *session.Session) {
	p := s.Panes()
	active := s.Mode() == mode.UICursor && p.Focus == session.FocusRight
	var syms []session.Symbol
	if p.Right == session.RightSymbols {
		syms = session.Symbols(s.Focused().Notebook)
	} else {
		syms = session.Variables(s.Focused().Notebook)
	}
	rows := make([]string, len(syms))
	for i, sym := range syms {
		rows[i] = sym.Kind + " " + sym.Name
	}
	r.paneRows(cv, p.Right.String(), rows, p.RightIndex, active)
}

func (r *Renderer) drawStatus(cv canvas, s *session.Session) {
	t := s.Focused()
	p := s.Panes()
	cv.fill(r.styles.Status)
	x := cv.text(0, 0, s.Mode().Label(), r.styles.Mode)

	left := " " + t.Name
	if t.Dirty {
		left += " [+]"
	}
	if t.ReadOnly {
		left += " [RO]"
	}
	if p.Diff {
		left += " [diff]"
	}
	if p.Search && t.SearchPattern() != "" {
		left += " /" + t.SearchPattern()
	}

	c := t.Cursor
	right := fmt.Sprintf("cell %d/%d  ln %d, col %d ", c.Cell+1, t.Notebook.Len(), c.Line+1, c.Col+1)
	if lang := t.Notebook.Language(); lang != "" {
		right = lang + "  " + right
	}
	rw := len([]rune(right))
	x = cv.text(x, 0, fit(left, cv.width-x-rw-1), r.styles.Status)
	if cv.width-rw > x {
		cv.text(cv.width-rw, 0, right, r.styles.Status)
	}
}

// drawCommandLine draws the prompt and returns the cursor column.
func (r *Renderer) drawCommandLine(cv canvas, s *session.Session) int {
	cl := s.CommandLine()
	text := cl.Prefix + cl.Text()
	before := width(text, len([]rune(cl.Prefix))+cl.Cursor)

	// Scroll the prompt horizontally once the cursor passes the edge.
	skip := 0
	if before >= cv.width {
		skip = before - cv.width + 1
	}
	cv.clearRow(0, r.styles.Text)
	rs := []rune(text)
	i := 0
	for i < len(rs) && width(text, i) < skip {
		i++
	}
	cv.text(0, 0, string(rs[i:]), r.styles.Text)
	return before - width(text, i)
}
