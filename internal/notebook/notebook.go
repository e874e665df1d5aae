package notebook

import "iter"

// Default format version for new notebooks.
const (
	DefaultFormat      = 4
	DefaultFormatMinor = 5
)

// Notebook is a parsed .ipynb document.
//
// Cell order is significant. Structural changes go through Insert, Push,
// Remove and Move; the cells themselves may be edited in place.
type Notebook struct {
	cells []Cell

	Metadata    Metadata
	Format      int
	FormatMinor int

	// Extra holds unrecognized top-level keys verbatim.
	Extra Value
}

// New returns an empty notebook in format 4.5.
func New() *Notebook {
	return &Notebook{
		Format:      DefaultFormat,
		FormatMinor: DefaultFormatMinor,
	}
}

// Len returns the number of cells.
func (n *Notebook) Len() int {
	return len(n.cells)
}

// IsEmpty reports whether the notebook has no cells.
func (n *Notebook) IsEmpty() bool {
	return len(n.cells) == 0
}

// Cell returns the cell at index i, or nil when i is out of range.
func (n *Notebook) Cell(i int) Cell {
	if i < 0 || i >= len(n.cells) {
		return nil
	}
	return n.cells[i]
}

// Insert places c at index, shifting later cells back by one.
// It reports false and leaves n unchanged unless 0 <= index <= Len().
func (n *Notebook) Insert(index int, c Cell) bool {
	if c == nil || index < 0 || index > len(n.cells) {
		return false
	}
	n.cells = append(n.cells, nil)
	copy(n.cells[index+1:], n.cells[index:])
	n.cells[index] = c
	return true
}

// Push appends c.
func (n *Notebook) Push(c Cell) {
	n.Insert(len(n.cells), c)
}

// Remove deletes the cell at index and reports whether it existed.
func (n *Notebook) Remove(index int) bool {
	if index < 0 || index >= len(n.cells) {
		return false
	}
	copy(n.cells[index:], n.cells[index+1:])
	n.cells[len(n.cells)-1] = nil
	n.cells = n.cells[:len(n.cells)-1]
	return true
}

// Move relocates the cell at from to index to.
func (n *Notebook) Move(from, to int) bool {
	if from < 0 || from >= len(n.cells) || to < 0 || to >= len(n.cells) {
		return false
	}
	if from == to {
		return true
	}
	c := n.cells[from]
	n.Remove(from)
	return n.Insert(to, c)
}

// InsertCodeCell inserts a new code cell built from the arguments.
func (n *Notebook) InsertCodeCell(index int, source []string, executionCount *int, outputs []Output) bool {
	return n.Insert(index, NewCodeCell(source, executionCount, outputs))
}

// InsertMarkdownCell inserts a new markdown cell.
func (n *Notebook) InsertMarkdownCell(index int, source []string) bool {
	return n.Insert(index, NewMarkdownCell(source))
}

// InsertRawCell inserts a new raw cell.
func (n *Notebook) InsertRawCell(index int, source []string) bool {
	return n.Insert(index, NewRawCell(source))
}

// PushCodeCell appends a new code cell.
func (n *Notebook) PushCodeCell(source []string, executionCount *int, outputs []Output) {
	n.Push(NewCodeCell(source, executionCount, outputs))
}

// PushMarkdownCell appends a new markdown cell.
func (n *Notebook) PushMarkdownCell(source []string) {
	n.Push(NewMarkdownCell(source))
}

// PushRawCell appends a new raw cell.
func (n *Notebook) PushRawCell(source []string) {
	n.Push(NewRawCell(source))
}

// All yields the cells with their indexes in document order.
func (n *Notebook) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range n.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Cells yields the cells in document order.
func (n *Notebook) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range n.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// CodeCells yields only the code cells, in document order.
func (n *Notebook) CodeCells() iter.Seq[*CodeCell] {
	return func(yield func(*CodeCell) bool) {
		for _, c := range n.cells {
			if cc, ok := c.(*CodeCell); ok && !yield(cc) {
				return
			}
		}
	}
}

// MarkdownCells yields only the markdown cells, in document order.
func (n *Notebook) MarkdownCells() iter.Seq[*MarkdownCell] {
	return func(yield func(*MarkdownCell) bool) {
		for _, c := range n.cells {
			if mc, ok := c.(*MarkdownCell); ok && !yield(mc) {
				return
			}
		}
	}
}

// RawCells yields only the raw cells, in document order.
func (n *Notebook) RawCells() iter.Seq[*RawCell] {
	return func(yield func(*RawCell) bool) {
		for _, c := range n.cells {
			if rc, ok := c.(*RawCell); ok && !yield(rc) {
				return
			}
		}
	}
}

// Language returns language_info.name, falling back to the kernelspec
// language.
func (n *Notebook) Language() string {
	if li := n.Metadata.LanguageInfo; li != nil && li.Name != "" {
		return li.Name
	}
	if ks := n.Metadata.Kernelspec; ks != nil {
		return ks.Extra.Lookup("language").String()
	}
	return ""
}

// Clone returns a deep copy of n.
func (n *Notebook) Clone() *Notebook {
	out := *n
	if ks := n.Metadata.Kernelspec; ks != nil {
		cp := *ks
		out.Metadata.Kernelspec = &cp
	}
	if li := n.Metadata.LanguageInfo; li != nil {
		cp := *li
		out.Metadata.LanguageInfo = &cp
	}
	out.cells = make([]Cell, len(n.cells))
	for i, c := range n.cells {
		out.cells[i] = CloneCell(c)
	}
	return &out
}

// Equal reports whether n and o are equal in every field the model tracks.
func (n *Notebook) Equal(o *Notebook) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Format != o.Format || n.FormatMinor != o.FormatMinor ||
		!n.Extra.Equal(o.Extra) || !n.Metadata.Equal(o.Metadata) {
		return false
	}
	if len(n.cells) != len(o.cells) {
		return false
	}
	for i := range n.cells {
		if !CellsEqual(n.cells[i], o.cells[i]) {
			return false
		}
	}
	return true
}
