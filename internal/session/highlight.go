package session

// HighlightKind says why a range is highlighted.
type HighlightKind uint8

const (
	HighlightSelection HighlightKind = iota
	HighlightMatch
)

// Highlight is a half-open rune range [From, To) of the text of one cell.
type Highlight struct {
	Cell     int
	From, To int
	Kind     HighlightKind
}

// Highlights returns the selections and search matches of the focused tab.
// Matches are only reported while the search pane is shown.
func (s *Session) Highlights() []Highlight {
	t := s.Focused()
	var out []Highlight
	for _, r := range s.selectionRanges(t) {
		out = append(out, Highlight{Cell: r.cell, From: r.from, To: r.to, Kind: HighlightSelection})
	}
	if !s.panes.Search {
		return out
	}
	for _, sp := range t.searchMatches() {
		lines := cellLines(t.Notebook.Cell(sp.start.Cell))
		out = append(out, Highlight{
			Cell: sp.start.Cell,
			From: offset(lines, sp.start.Line, sp.start.Col),
			To:   offset(lines, sp.end.Line, sp.end.Col) + 1,
			Kind: HighlightMatch,
		})
	}
	return out
}
