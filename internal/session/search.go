package session

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

// searchMatches returns every match of the tab's search pattern in
// document order.
func (t *Tab) searchMatches() []span {
	if t.search == nil {
		return nil
	}
	var out []span
	for i, c := range t.Notebook.All() {
		text := c.Common().Text()
		lines := strings.Split(text, "\n")
		for _, loc := range t.search.FindAllStringIndex(text, -1) {
			from := utf8.RuneCountInString(text[:loc[0]])
			n := utf8.RuneCountInString(text[loc[0]:loc[1]])
			sl, sc := position(lines, from)
			el, ec := position(lines, from+max(n-1, 0))
			out = append(out, span{
				start: Cursor{Cell: i, Line: sl, Col: sc},
				end:   Cursor{Cell: i, Line: el, Col: ec},
			})
		}
	}
	return out
}

// search sets the tab's pattern and moves to the next match. An empty
// pattern repeats the last search.
func (s *Session) search(pattern string) {
	t := s.Focused()
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			s.setStatus("invalid pattern: " + err.Error())
			return
		}
		t.search = re
	}
	if t.search == nil {
		s.setStatus("no previous search")
		return
	}
	s.panes.Search = true
	t.Cursor = s.jump(t.searchMatches(), t.Cursor, true, false, "pattern not found")
}

// matchAt returns the rune range of the search match starting at the
// cursor.
func (t *Tab) matchAt() (from, to int, ok bool) {
	for _, m := range t.searchMatches() {
		if m.start != t.Cursor {
			continue
		}
		lines := cellLines(t.Cell())
		from = offset(lines, m.start.Line, m.start.Col)
		to = offset(lines, m.end.Line, m.end.Col) + 1
		return from, to, true
	}
	return 0, 0, false
}

// replace overwrites the selection, or the search match under the cursor,
// with text.
func (s *Session) replace(text string) {
	t := s.Focused()
	if ranges := s.selectionRanges(t); len(ranges) > 0 {
		s.replaceRanges(t, ranges, text)
		s.switchMode(mode.Normal, "")
		return
	}
	from, to, ok := t.matchAt()
	if !ok {
		s.setStatus("nothing to replace")
		return
	}
	end := t.splice(t.Cursor.Cell, from, to, text)
	t.moveTo(end)
}

// substitute replaces every match of pattern in the focused cell.
func (s *Session) substitute(pattern, text string) {
	t := s.Focused()
	re, err := regexp.Compile(pattern)
	if err != nil {
		s.setStatus("invalid pattern: " + err.Error())
		return
	}
	c := t.Cell()
	if c == nil {
		s.setStatus("pattern not found")
		return
	}
	src := c.Common().Text()
	n := len(re.FindAllStringIndex(src, -1))
	if n == 0 {
		s.setStatus("pattern not found")
		return
	}
	c.Common().SetText(re.ReplaceAllString(src, text))
	t.Dirty = true
	t.clampCursor()
	s.setStatus(fmt.Sprintf("%d substitutions", n))
}

// OutlineItem is a markdown heading.
type OutlineItem struct {
	Level int
	Title string
	Cell  int
	Line  int

	width int
}

func (it OutlineItem) span() span {
	start := Cursor{Cell: it.Cell, Line: it.Line}
	end := start
	end.Col = max(it.width-1, 0)
	return span{start, end}
}

// Outline returns the markdown headings of nb in document order.
func Outline(nb *notebook.Notebook) []OutlineItem {
	var items []OutlineItem
	for i, c := range nb.All() {
		if c.Type() != notebook.CellMarkdown {
			continue
		}
		for j, line := range cellLines(c) {
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
				continue
			}
			items = append(items, OutlineItem{
				Level: level,
				Title: strings.TrimSpace(line[level:]),
				Cell:  i,
				Line:  j,
				width: runeLen(line),
			})
		}
	}
	return items
}

// Symbol is a named definition found in a code cell.
type Symbol struct {
	// Kind is "def", "class" or "var".
	Kind string
	Name string
	Cell int
	Line int
}

var (
	defPattern = regexp.MustCompile(`^\s*(?:async\s+)?(def|class)\s+([A-Za-z_]\w*)`)
	varPattern = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?::[^=]*)?=[^=]`)
)

// Symbols returns the function and class definitions of the code cells.
func Symbols(nb *notebook.Notebook) []Symbol {
	return scanCode(nb, func(line string) (string, string, bool) {
		m := defPattern.FindStringSubmatch(line)
		if m == nil {
			return "", "", false
		}
		return m[1], m[2], true
	})
}

// Variables returns the top-level assignments of the code cells. A name
// assigned more than once is listed at its last assignment.
func Variables(nb *notebook.Notebook) []Symbol {
	all := scanCode(nb, func(line string) (string, string, bool) {
		m := varPattern.FindStringSubmatch(line + " ")
		if m == nil {
			return "", "", false
		}
		return "var", m[1], true
	})
	last := map[string]int{}
	for i, v := range all {
		last[v.Name] = i
	}
	out := all[:0]
	for i, v := range all {
		if last[v.Name] == i {
			out = append(out, v)
		}
	}
	return out
}

func scanCode(nb *notebook.Notebook, fn func(string) (string, string, bool)) []Symbol {
	var out []Symbol
	for i, c := range nb.All() {
		if c.Type() != notebook.CellCode {
			continue
		}
		for j, line := range cellLines(c) {
			if kind, name, ok := fn(line); ok {
				out = append(out, Symbol{Kind: kind, Name: name, Cell: i, Line: j})
			}
		}
	}
	return out
}
