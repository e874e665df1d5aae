package session

import (
	"path/filepath"
	"regexp"
	"slices"

	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

// untitled is the display name of tabs without a file.
const untitled = "[untitled]"

// Tab is one open notebook.
type Tab struct {
	Notebook *notebook.Notebook

	// Name is the display name; Path is empty for unsaved new notebooks.
	Name string
	Path string

	// Dirty is true iff the notebook changed since it was loaded or saved.
	Dirty bool

	// ReadOnly blocks every mutating command.
	ReadOnly bool

	Cursor Cursor

	// anchor is where the visual selection started.
	anchor Cursor

	// selections holds the ranges committed with Skip.
	selections []Selection

	// search is the last search pattern, nil before the first search.
	search *regexp.Regexp

	bookmarks []Bookmark

	// closeArmed is set after a refused CloseFile of a dirty tab.
	closeArmed bool
}

// Bookmark marks a line of a cell.
type Bookmark struct {
	Cell int
	Line int
}

// Selection is a visual selection between two cursors in one cell.
type Selection struct {
	Anchor Cursor
	Head   Cursor
	Mode   mode.Mode
}

// NewTab creates a tab for nb bound to path, which may be empty.
func NewTab(nb *notebook.Notebook, path string) *Tab {
	t := &Tab{Notebook: nb}
	t.setPath(path)
	return t
}

// newUntitled returns an empty notebook tab with one code cell.
func newUntitled() *Tab {
	nb := notebook.New()
	nb.Push(newCell(nb, notebook.CellCode))
	return NewTab(nb, "")
}

func (t *Tab) setPath(path string) {
	t.Path = path
	if path == "" {
		t.Name = untitled
	} else {
		t.Name = filepath.Base(path)
	}
}

// isBlank reports whether t is an unmodified untitled tab with no text,
// which OpenFile replaces instead of keeping.
func (t *Tab) isBlank() bool {
	if t.Path != "" || t.Dirty {
		return false
	}
	for c := range t.Notebook.Cells() {
		if c.Common().Text() != "" {
			return false
		}
	}
	return true
}

// Cell returns the cell under the cursor, or nil for an empty notebook.
func (t *Tab) Cell() notebook.Cell {
	return t.Notebook.Cell(t.Cursor.Cell)
}

// Selections returns the committed selections.
func (t *Tab) Selections() []Selection {
	return slices.Clone(t.selections)
}

// Anchor returns the start of the current visual selection.
func (t *Tab) Anchor() Cursor {
	return t.anchor
}

// Bookmarks returns the bookmarks in document order.
func (t *Tab) Bookmarks() []Bookmark {
	return slices.Clone(t.bookmarks)
}

// SearchPattern returns the last search pattern, or "".
func (t *Tab) SearchPattern() string {
	if t.search == nil {
		return ""
	}
	return t.search.String()
}

// clampCursor keeps the cursor on an existing line and column.
func (t *Tab) clampCursor() {
	t.Cursor = t.clamped(t.Cursor)
}

func (t *Tab) clamped(c Cursor) Cursor {
	if t.Notebook.IsEmpty() {
		return Cursor{}
	}
	c.Cell = clamp(c.Cell, 0, t.Notebook.Len()-1)
	lines := cellLines(t.Notebook.Cell(c.Cell))
	c.Line = clamp(c.Line, 0, len(lines)-1)
	c.Col = clamp(c.Col, 0, runeLen(lines[c.Line]))
	return c
}

// toggleBookmark adds or removes the bookmark on the cursor line.
func (t *Tab) toggleBookmark() bool {
	b := Bookmark{Cell: t.Cursor.Cell, Line: t.Cursor.Line}
	if i := slices.Index(t.bookmarks, b); i >= 0 {
		t.bookmarks = slices.Delete(t.bookmarks, i, i+1)
		return false
	}
	t.bookmarks = append(t.bookmarks, b)
	slices.SortFunc(t.bookmarks, compareBookmarks)
	return true
}

// shiftCells keeps bookmarks and selections attached to their cells after
// a cell is inserted (delta 1) or removed (delta -1) at index.
func (t *Tab) shiftCells(index, delta int) {
	kept := t.bookmarks[:0]
	for _, b := range t.bookmarks {
		switch {
		case delta < 0 && b.Cell == index:
			continue
		case b.Cell >= index:
			b.Cell += delta
		}
		kept = append(kept, b)
	}
	t.bookmarks = kept
	t.selections = nil
}

func compareBookmarks(a, b Bookmark) int {
	if a.Cell != b.Cell {
		return a.Cell - b.Cell
	}
	return a.Line - b.Line
}

// newCell builds an empty cell, with an id when the format requires one.
func newCell(nb *notebook.Notebook, t notebook.CellType) notebook.Cell {
	c := notebook.NewCell(t)
	if nb.Format > 4 || (nb.Format == 4 && nb.FormatMinor >= 5) {
		c.Common().SetID(notebook.NewCellID())
	}
	return c
}
