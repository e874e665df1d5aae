package notebook

import (
	"iter"
	"testing"
)

func countCells[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	nb := New()
	if nb.Len() != 0 || !nb.IsEmpty() {
		t.Errorf("New() Len = %d, IsEmpty = %v, want 0, true", nb.Len(), nb.IsEmpty())
	}
	if nb.Format != 4 || nb.FormatMinor != 5 {
		t.Errorf("New() format = %d.%d, want 4.5", nb.Format, nb.FormatMinor)
	}
}

func TestInsertBounds(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{"negative", -1, false},
		{"front", 0, true},
		{"middle", 1, true},
		{"end", 2, true},
		{"past end", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb := New()
			nb.PushMarkdownCell([]string{"a"})
			nb.PushMarkdownCell([]string{"b"})

			got := nb.InsertRawCell(tt.index, []string{"new"})
			if got != tt.want {
				t.Fatalf("Insert(%d) = %v, want %v", tt.index, got, tt.want)
			}
			wantLen := 2
			if tt.want {
				wantLen = 3
			}
			if nb.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", nb.Len(), wantLen)
			}
			if tt.want {
				if c := nb.Cell(tt.index); c.Type() != CellRaw {
					t.Errorf("Cell(%d).Type() = %v, want raw", tt.index, c.Type())
				}
			}
		})
	}
}

func TestInsertShiftsLaterCells(t *testing.T) {
	nb := New()
	nb.PushMarkdownCell([]string{"first"})
	nb.PushMarkdownCell([]string{"second"})
	nb.InsertCodeCell(1, []string{"mid"}, nil, nil)

	var got []string
	for c := range nb.Cells() {
		got = append(got, c.Common().Text())
	}
	want := []string{"first", "mid", "second"}
	if !equalLines(got, want) {
		t.Errorf("cells = %q, want %q", got, want)
	}
}

func TestFilterViewsStayLive(t *testing.T) {
	nb := New()
	nb.PushMarkdownCell([]string{"# Title"})
	nb.PushCodeCell([]string{"x = 1"}, Count(1), nil)

	codeBefore := countCells(nb.CodeCells())
	mdBefore := countCells(nb.MarkdownCells())

	nb.PushCodeCell([]string{"y = 2"}, nil, nil)

	if got := countCells(nb.CodeCells()); got != codeBefore+1 {
		t.Errorf("CodeCells() count = %d, want %d", got, codeBefore+1)
	}
	if got := countCells(nb.MarkdownCells()); got != mdBefore {
		t.Errorf("MarkdownCells() count = %d, want %d", got, mdBefore)
	}
	if got := countCells(nb.RawCells()); got != 0 {
		t.Errorf("RawCells() count = %d, want 0", got)
	}
}

func TestAllStopsEarly(t *testing.T) {
	nb := New()
	for i := 0; i < 5; i++ {
		nb.PushRawCell(nil)
	}
	seen := 0
	for i := range nb.All() {
		seen++
		if i == 1 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("All() yielded %d cells before break, want 2", seen)
	}
}

func TestMutationThroughIteration(t *testing.T) {
	nb := New()
	nb.PushCodeCell([]string{"a\n", "b"}, nil, nil)
	for c := range nb.CodeCells() {
		c.SetText("changed")
	}
	if got := nb.Cell(0).Common().Text(); got != "changed" {
		t.Errorf("Text() = %q, want %q", got, "changed")
	}
	if nb.Len() != 1 {
		t.Errorf("Len() = %d, want 1", nb.Len())
	}
}

func TestRemoveAndMove(t *testing.T) {
	nb := New()
	nb.PushMarkdownCell([]string{"a"})
	nb.PushMarkdownCell([]string{"b"})
	nb.PushMarkdownCell([]string{"c"})

	if nb.Remove(3) {
		t.Error("Remove(3) = true, want false")
	}
	if !nb.Move(0, 2) {
		t.Fatal("Move(0, 2) = false, want true")
	}
	if got := nb.Cell(2).Common().Text(); got != "a" {
		t.Errorf("Cell(2) = %q, want %q", got, "a")
	}
	if !nb.Remove(0) {
		t.Fatal("Remove(0) = false, want true")
	}
	if got := nb.Cell(0).Common().Text(); got != "c" {
		t.Errorf("Cell(0) = %q, want %q", got, "c")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	nb := New()
	nb.PushCodeCell([]string{"x"}, Count(3), []Output{Stdout("hi\n")})
	cp := nb.Clone()
	if !cp.Equal(nb) {
		t.Fatal("Clone() not equal to original")
	}
	cp.Cell(0).Common().SetText("y")
	*cp.Cell(0).(*CodeCell).ExecutionCount = 9
	if cp.Equal(nb) {
		t.Error("mutating clone changed original")
	}
	if got := nb.Cell(0).Common().Text(); got != "x" {
		t.Errorf("original Text() = %q, want %q", got, "x")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\n\nb\n", []string{"a\n", "\n", "b\n"}},
	}
	for _, tt := range tests {
		if got := SplitLines(tt.in); !equalLines(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	nb := New()
	if got := nb.Language(); got != "" {
		t.Errorf("Language() = %q, want empty", got)
	}
	nb.Metadata.Kernelspec = &Kernelspec{Name: "ir", DisplayName: "R", Extra: MustValue(`{"language":"R"}`)}
	if got := nb.Language(); got != "R" {
		t.Errorf("Language() = %q, want %q", got, "R")
	}
	nb.Metadata.LanguageInfo = &LanguageInfo{Name: "python"}
	if got := nb.Language(); got != "python" {
		t.Errorf("Language() = %q, want %q", got, "python")
	}
}

func TestCellID(t *testing.T) {
	c := NewMarkdownCell(nil)
	if c.ID() != "" {
		t.Errorf("ID() = %q, want empty", c.ID())
	}
	id := NewCellID()
	if len(id) != 8 {
		t.Errorf("NewCellID() = %q, want 8 characters", id)
	}
	c.SetID(id)
	if c.ID() != id {
		t.Errorf("ID() = %q, want %q", c.ID(), id)
	}
}
