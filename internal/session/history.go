package session

import "slices"

// defaultHistorySize is the number of command lines remembered.
const defaultHistorySize = 100

// History tracks submitted command lines in most-recently-used order.
type History struct {
	items    []string
	maxItems int
}

// NewHistory creates a command history with the given capacity.
func NewHistory(maxItems int) *History {
	if maxItems <= 0 {
		maxItems = defaultHistorySize
	}
	return &History{
		items:    make([]string, 0, maxItems),
		maxItems: maxItems,
	}
}

// Add records a line. A line already in history is moved to the front.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	if i := slices.Index(h.items, line); i >= 0 {
		h.items = slices.Delete(h.items, i, i+1)
	}
	h.items = slices.Insert(h.items, 0, line)
	if len(h.items) > h.maxItems {
		h.items = h.items[:h.maxItems]
	}
}

// Recent returns up to limit lines, most recent first. limit <= 0 means all.
func (h *History) Recent(limit int) []string {
	if limit <= 0 || limit > len(h.items) {
		limit = len(h.items)
	}
	return slices.Clone(h.items[:limit])
}

// At returns the line at position i (0 = most recent).
func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.items) {
		return "", false
	}
	return h.items[i], true
}

// Len returns the number of lines in history.
func (h *History) Len() int {
	return len(h.items)
}
