package notebook

import (
	"strings"

	"github.com/google/uuid"
)

// CellType identifies the kind of a cell.
type CellType uint8

const (
	CellCode CellType = iota
	CellMarkdown
	CellRaw
)

// String returns the wire discriminator ("code", "markdown", "raw").
func (t CellType) String() string {
	switch t {
	case CellCode:
		return "code"
	case CellMarkdown:
		return "markdown"
	case CellRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseCellType maps a wire discriminator to a CellType.
func ParseCellType(s string) (CellType, bool) {
	switch s {
	case "code":
		return CellCode, true
	case "markdown":
		return CellMarkdown, true
	case "raw":
		return CellRaw, true
	default:
		return 0, false
	}
}

// Cell is one unit of notebook content: *CodeCell, *MarkdownCell or *RawCell.
type Cell interface {
	// Type returns the cell discriminator.
	Type() CellType

	// Common returns the fields shared by every cell kind.
	Common() *CellCommon

	isCell()
}

// CellCommon holds the fields every cell kind carries.
type CellCommon struct {
	// Source is the cell text as ordered lines. Each line except possibly
	// the last ends with "\n".
	Source []string

	// Metadata is the opaque cell metadata object.
	Metadata Value

	// Extra holds unrecognized cell keys (id, attachments, ...) verbatim.
	Extra Value
}

// Text returns the source joined into a single string.
func (c *CellCommon) Text() string {
	return strings.Join(c.Source, "")
}

// SetText replaces the source with text split into lines.
func (c *CellCommon) SetText(text string) {
	c.Source = SplitLines(text)
}

// ID returns the nbformat 4.5 cell id, or "" when the cell has none.
func (c *CellCommon) ID() string {
	return c.Extra.Lookup("id").String()
}

// SetID stores the nbformat 4.5 cell id.
func (c *CellCommon) SetID(id string) {
	if v, err := c.Extra.Set("id", id); err == nil {
		c.Extra = v
	}
}

func (c *CellCommon) clone() CellCommon {
	return CellCommon{
		Source:   append([]string(nil), c.Source...),
		Metadata: c.Metadata,
		Extra:    c.Extra,
	}
}

func (c *CellCommon) equal(o *CellCommon) bool {
	return equalLines(c.Source, o.Source) &&
		c.Metadata.Equal(o.Metadata) &&
		c.Extra.Equal(o.Extra)
}

// CodeCell is an executable cell with outputs.
type CodeCell struct {
	CellCommon

	// ExecutionCount is nil for cells that were never run.
	ExecutionCount *int

	Outputs []Output
}

// MarkdownCell holds markdown text.
type MarkdownCell struct {
	CellCommon
}

// RawCell holds text passed through unrendered.
type RawCell struct {
	CellCommon
}

func (c *CodeCell) Type() CellType     { return CellCode }
func (c *MarkdownCell) Type() CellType { return CellMarkdown }
func (c *RawCell) Type() CellType      { return CellRaw }

func (c *CodeCell) Common() *CellCommon     { return &c.CellCommon }
func (c *MarkdownCell) Common() *CellCommon { return &c.CellCommon }
func (c *RawCell) Common() *CellCommon      { return &c.CellCommon }

func (*CodeCell) isCell()     {}
func (*MarkdownCell) isCell() {}
func (*RawCell) isCell()      {}

// NewCodeCell builds a code cell. Metadata defaults to an empty object.
func NewCodeCell(source []string, executionCount *int, outputs []Output) *CodeCell {
	return &CodeCell{
		CellCommon:     CellCommon{Source: lines(source), Metadata: EmptyObject()},
		ExecutionCount: executionCount,
		Outputs:        outputs,
	}
}

// NewMarkdownCell builds a markdown cell.
func NewMarkdownCell(source []string) *MarkdownCell {
	return &MarkdownCell{CellCommon: CellCommon{Source: lines(source), Metadata: EmptyObject()}}
}

// NewRawCell builds a raw cell.
func NewRawCell(source []string) *RawCell {
	return &RawCell{CellCommon: CellCommon{Source: lines(source), Metadata: EmptyObject()}}
}

// NewCell builds an empty cell of the given kind.
func NewCell(t CellType) Cell {
	switch t {
	case CellMarkdown:
		return NewMarkdownCell(nil)
	case CellRaw:
		return NewRawCell(nil)
	default:
		return NewCodeCell(nil, nil, nil)
	}
}

// Count returns a pointer to n, for building execution counts.
func Count(n int) *int {
	return &n
}

// NewCellID returns a fresh 8 character cell id.
func NewCellID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// CloneCell returns a deep copy of c.
func CloneCell(c Cell) Cell {
	switch c := c.(type) {
	case *CodeCell:
		out := &CodeCell{CellCommon: c.CellCommon.clone()}
		if c.ExecutionCount != nil {
			out.ExecutionCount = Count(*c.ExecutionCount)
		}
		for _, o := range c.Outputs {
			out.Outputs = append(out.Outputs, cloneOutput(o))
		}
		return out
	case *MarkdownCell:
		return &MarkdownCell{CellCommon: c.CellCommon.clone()}
	case *RawCell:
		return &RawCell{CellCommon: c.CellCommon.clone()}
	default:
		return nil
	}
}

// CellsEqual reports whether two cells are equal in every tracked field.
func CellsEqual(a, b Cell) bool {
	switch a := a.(type) {
	case *CodeCell:
		b, ok := b.(*CodeCell)
		if !ok || !a.CellCommon.equal(&b.CellCommon) {
			return false
		}
		if (a.ExecutionCount == nil) != (b.ExecutionCount == nil) {
			return false
		}
		if a.ExecutionCount != nil && *a.ExecutionCount != *b.ExecutionCount {
			return false
		}
		if len(a.Outputs) != len(b.Outputs) {
			return false
		}
		for i := range a.Outputs {
			if !OutputsEqual(a.Outputs[i], b.Outputs[i]) {
				return false
			}
		}
		return true
	case *MarkdownCell:
		b, ok := b.(*MarkdownCell)
		return ok && a.CellCommon.equal(&b.CellCommon)
	case *RawCell:
		b, ok := b.(*RawCell)
		return ok && a.CellCommon.equal(&b.CellCommon)
	default:
		return false
	}
}

// SplitLines splits text after every "\n", keeping the terminators.
// An empty string yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.SplitAfter(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func lines(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	return append([]string(nil), src...)
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
