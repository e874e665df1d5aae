package session

import (
	"testing"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

type fakeClipboard struct {
	text   string
	writes int
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	c.writes++
	return nil
}

func TestInputTyped(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		col     int
		inputs  []string
		want    string
		wantCol int
	}{
		{"plain", "ac", 1, []string{"b"}, "abc", 2},
		{"multi-rune", "", 0, []string{"héllo"}, "héllo", 5},
		{"nfc", "", 0, []string{"e\u0301"}, "\u00e9", 1},
		{"bracket pair", "", 0, []string{"("}, "()", 1},
		{"type over closer", "", 0, []string{"(", ")"}, "()", 2},
		{"quote pair", "x = ", 4, []string{`"`}, `x = ""`, 5},
		{"no quote pair after word", "don", 3, []string{"'"}, "don'", 4},
		{"auto indent", "    x", 5, []string{"\n"}, "    x\n    ", 4},
		{"tab", "", 0, []string{"\t"}, "\t", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.initial)
			s.Focused().Cursor.Col = tt.col
			run(s, "switch-to-insert-mode")
			for _, in := range tt.inputs {
				s.Execute(command.TypedText(in))
			}
			if got := cellText(s, 0); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if got := s.Focused().Cursor.Col; got != tt.wantCol {
				t.Errorf("Col = %d, want %d", got, tt.wantCol)
			}
			if !s.Focused().Dirty {
				t.Error("Dirty = false after input")
			}
		})
	}
}

// Input that does not come from a keystroke is inserted as is, whatever
// the auto_close and auto_indent settings say.
func TestInputLiteral(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantCol int
	}{
		{"open bracket", "(", "  x()", 4},
		{"closer before closer", ")", "  x))", 4},
		{"quote", `"`, `  x")`, 4},
		{"newline", "\n", "  x\n)", 0},
		{"span", "(a, b", "  x(a, b)", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, "  x)")
			s.Focused().Cursor.Col = 3
			run(s, "switch-to-insert-mode")
			s.Execute(command.InputText(tt.in))
			if got := cellText(s, 0); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if got := s.Focused().Cursor.Col; got != tt.wantCol {
				t.Errorf("Col = %d, want %d", got, tt.wantCol)
			}
		})
	}
}

func TestInputAutoCloseDisabled(t *testing.T) {
	s := newTestSession(t, "")
	run(s, "set-option noauto_close_brackets", "switch-to-insert-mode")
	s.Execute(command.TypedText("["))
	if got := cellText(s, 0); got != "[" {
		t.Errorf("text = %q, want %q", got, "[")
	}
}

func TestInputCreatesCell(t *testing.T) {
	s := New(WithClipboard(nil))
	s.AddTab(NewTab(notebook.New(), ""))
	run(s, "switch-to-insert-mode", `input "x"`)
	nb := s.Focused().Notebook
	if nb.Len() != 1 || nb.Cell(0).Type() != notebook.CellCode || cellText(s, 0) != "x" {
		t.Errorf("cells = %d, text = %q", nb.Len(), cellText(s, 0))
	}
}

func TestReplaceModeOverwrites(t *testing.T) {
	s := newTestSession(t, "abc\ndef")
	run(s, "switch-to-replace-mode", `input "xyzw"`)
	if got := cellText(s, 0); got != "xyzw\ndef" {
		t.Errorf("text = %q, want %q", got, "xyzw\ndef")
	}
}

func TestDeleteCommands(t *testing.T) {
	tests := []struct {
		cmd     string
		initial string
		line    int
		col     int
		want    string
		wantCol int
	}{
		{"delete-text", "abc", 0, 1, "ac", 1},
		{"delete-text", "ab\ncd", 0, 2, "abcd", 2},
		{"delete-previous-char", "abc", 0, 1, "bc", 0},
		{"delete-previous-char", "ab\ncd", 1, 0, "abcd", 2},
		{"delete-previous-char", "abc", 0, 0, "abc", 0},
		{"delete-word", "foo bar", 0, 0, "bar", 0},
		{"delete-previous-word", "hello world", 0, 6, "world", 0},
		{"delete-to-end-of-line", "abc\ndef", 0, 1, "a\ndef", 1},
		{"delete-to-start-of-line", "abc\ndef", 1, 2, "abc\nf", 0},
		{"delete-to-end-of-file", "abc\ndef", 0, 2, "ab", 2},
		{"delete-to-start-of-file", "abc\ndef", 1, 1, "ef", 0},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			s := newTestSession(t, tt.initial)
			s.Focused().Cursor = Cursor{Line: tt.line, Col: tt.col}
			run(s, "switch-to-insert-mode", tt.cmd)
			if got := cellText(s, 0); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if got := s.Focused().Cursor.Col; got != tt.wantCol {
				t.Errorf("Col = %d, want %d", got, tt.wantCol)
			}
		})
	}
}

func TestDeleteLineAndPaste(t *testing.T) {
	s := newTestSession(t, "a\nb\nc")
	s.Focused().Cursor.Line = 1
	run(s, "delete-line")
	if got := cellText(s, 0); got != "a\nc" {
		t.Fatalf("text = %q, want %q", got, "a\nc")
	}
	if s.Register() != "b\n" {
		t.Errorf("Register() = %q, want %q", s.Register(), "b\n")
	}

	run(s, "paste")
	if got := cellText(s, 0); got != "a\nc\nb" {
		t.Errorf("text = %q, want %q", got, "a\nc\nb")
	}
	if got := s.Focused().Cursor.Line; got != 2 {
		t.Errorf("Line = %d, want 2", got)
	}
}

func TestPasteEmptyRegister(t *testing.T) {
	s := newTestSession(t, "abc")
	run(s, "paste")
	if s.Status() != "register is empty" || cellText(s, 0) != "abc" {
		t.Errorf("Status() = %q, text = %q", s.Status(), cellText(s, 0))
	}
}

func TestVisualCopy(t *testing.T) {
	clip := &fakeClipboard{}
	s := newTestSession(t, "hello world")
	s.register.clipboard = clip
	run(s, "switch-to-visual-mode", "navigate to-next-word-end", "copy")

	if s.Register() != "hello" {
		t.Errorf("Register() = %q, want %q", s.Register(), "hello")
	}
	if clip.text != "hello" || clip.writes != 1 {
		t.Errorf("clipboard = %q (%d writes)", clip.text, clip.writes)
	}
	if s.Mode() != mode.Normal {
		t.Errorf("Mode() = %v, want normal", s.Mode())
	}

	run(s, "navigate to-line-end", "paste")
	if got := cellText(s, 0); got != "hello worldhello" {
		t.Errorf("text = %q", got)
	}
}

func TestPastePrefersNewClipboardText(t *testing.T) {
	clip := &fakeClipboard{}
	s := newTestSession(t, "")
	s.register.clipboard = clip
	run(s, "copy")
	clip.text = "outside"
	run(s, "paste")
	if got := cellText(s, 0); got != "outside" {
		t.Errorf("text = %q, want %q", got, "outside")
	}
}

func TestVisualLineCut(t *testing.T) {
	s := newTestSession(t, "a\nb\nc")
	run(s, "switch-to-visual-line-mode", "navigate down", "cut")
	if got := cellText(s, 0); got != "c" {
		t.Errorf("text = %q, want %q", got, "c")
	}
	if s.Register() != "a\nb\n" {
		t.Errorf("Register() = %q", s.Register())
	}
}

func TestVisualBlockCopy(t *testing.T) {
	s := newTestSession(t, "abcd\nefgh\nij")
	s.Focused().Cursor.Col = 1
	run(s, "switch-to-visual-block-mode", "navigate down", "navigate down", "navigate right", "copy")
	if s.Register() != "bc\nfg\nj" {
		t.Errorf("Register() = %q, want %q", s.Register(), "bc\nfg\nj")
	}
}

func TestSkipCollectsSelections(t *testing.T) {
	s := newTestSession(t, "one two three")
	run(s,
		"switch-to-visual-mode", "navigate to-next-word-end", "skip",
		"navigate to-next-word-start", "navigate to-next-word-start",
		"switch-to-normal-mode", "switch-to-visual-mode", "navigate to-next-word-end",
	)
	if got := len(s.Focused().Selections()); got != 1 {
		t.Fatalf("len(Selections()) = %d, want 1", got)
	}
	run(s, `replace "X"`)
	if got := cellText(s, 0); got != "X two X" {
		t.Errorf("text = %q, want %q", got, "X two X")
	}
	if len(s.Focused().Selections()) != 0 {
		t.Error("selections kept after replace")
	}
}

func TestDeselect(t *testing.T) {
	s := newTestSession(t, "abc")
	run(s, "switch-to-visual-mode", "navigate right", "skip", "deselect")
	if len(s.Focused().Selections()) != 0 || s.Focused().Anchor() != s.Focused().Cursor {
		t.Error("deselect kept a selection")
	}
}

func TestConcatenate(t *testing.T) {
	s := newTestSession(t, "a  \n   b\nc")
	run(s, "concatenate")
	if got := cellText(s, 0); got != "a b\nc" {
		t.Errorf("text = %q, want %q", got, "a b\nc")
	}
	if got := s.Focused().Cursor.Col; got != 1 {
		t.Errorf("Col = %d, want 1", got)
	}
}

func TestSearchAndReplace(t *testing.T) {
	s := newTestSession(t, "x = 1", "y = x")
	run(s, "search x")
	if got := s.Focused().Cursor; got != (Cursor{Cell: 1, Line: 0, Col: 4}) {
		t.Errorf("Cursor = %+v, want second match", got)
	}
	run(s, `search ""`)
	if got := s.Focused().Cursor; got != (Cursor{}) || s.Status() != "search wrapped" {
		t.Errorf("Cursor = %+v, Status() = %q, want wrap to first match", got, s.Status())
	}

	run(s, `replace "z"`)
	if got := cellText(s, 0); got != "z = 1" {
		t.Errorf("text = %q, want %q", got, "z = 1")
	}
	run(s, "navigate right", `replace "q"`)
	if s.Status() != "nothing to replace" {
		t.Errorf("Status() = %q", s.Status())
	}
}

func TestSearchErrors(t *testing.T) {
	s := newTestSession(t, "abc")
	run(s, "search (")
	if s.Status() == "" || s.Focused().SearchPattern() != "" {
		t.Errorf("invalid pattern: Status() = %q, pattern %q", s.Status(), s.Focused().SearchPattern())
	}
	run(s, "search zzz")
	if s.Status() != "pattern not found" {
		t.Errorf("Status() = %q", s.Status())
	}
}

func TestSubstitute(t *testing.T) {
	s := newTestSession(t, "a1 b22 c", "9")
	s.Execute(command.Substitution(`\d+`, "#"))
	if got := cellText(s, 0); got != "a# b# c" {
		t.Errorf("text = %q", got)
	}
	if got := cellText(s, 1); got != "9" {
		t.Errorf("other cell changed: %q", got)
	}
	if s.Status() != "2 substitutions" {
		t.Errorf("Status() = %q", s.Status())
	}
}

func TestCellCommands(t *testing.T) {
	s := newTestSession(t, "first")
	run(s, "insert-cell-below markdown")
	tab := s.Focused()
	if tab.Notebook.Len() != 2 || tab.Cursor.Cell != 1 {
		t.Fatalf("cells = %d, cursor cell = %d", tab.Notebook.Len(), tab.Cursor.Cell)
	}
	c := tab.Notebook.Cell(1)
	if c.Type() != notebook.CellMarkdown || c.Common().ID() == "" {
		t.Errorf("new cell type %v id %q", c.Type(), c.Common().ID())
	}

	run(s, "insert-cell-above raw")
	if tab.Notebook.Cell(1).Type() != notebook.CellRaw || tab.Cursor.Cell != 1 {
		t.Error("insert-cell-above did not insert at the cursor")
	}

	run(s, "navigate to-first-cell", "toggle-collapsed")
	if !tab.Notebook.Cell(0).Common().Metadata.Get("collapsed").Bool() {
		t.Error("collapsed not set")
	}

	run(s, "delete-cell")
	if tab.Notebook.Len() != 2 || s.Register() != "first\n" {
		t.Errorf("cells = %d, Register() = %q", tab.Notebook.Len(), s.Register())
	}
	if s.Mode() != mode.Normal {
		t.Error("cell commands changed the mode")
	}
}

func TestBookmarks(t *testing.T) {
	s := newTestSession(t, "a\nb", "c")
	run(s, "toggle-bookmark", "navigate to-last-cell", "toggle-bookmark", "navigate to-first-cell", "navigate down")
	run(s, "navigate to-next-bookmark")
	if got := s.Focused().Cursor; got.Cell != 1 {
		t.Errorf("Cursor = %+v, want cell 1", got)
	}
	run(s, "navigate to-next-bookmark")
	if got := s.Focused().Cursor; got != (Cursor{}) {
		t.Errorf("Cursor = %+v, want wrap to first bookmark", got)
	}

	run(s, "insert-cell-above code")
	if bm := s.Focused().Bookmarks(); len(bm) != 2 || bm[0].Cell != 1 || bm[1].Cell != 2 {
		t.Errorf("Bookmarks() = %+v after insert", bm)
	}
}
