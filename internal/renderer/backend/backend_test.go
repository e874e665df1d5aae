package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
	if got := b.GetCell(0, 0); got != EmptyCell() {
		t.Errorf("GetCell(0, 0) = %+v, want empty", got)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	cell := Cell{Rune: 'X', Style: tcell.StyleDefault.Bold(true)}
	b.SetCell(2, 1, cell)
	if got := b.GetCell(2, 1); got != cell {
		t.Errorf("GetCell(2, 1) = %+v, want %+v", got, cell)
	}

	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}

	if got := b.Row(1); got != "  X       " {
		t.Errorf("Row(1) = %q", got)
	}

	b.Clear()
	if got := b.GetCell(2, 1); got != EmptyCell() {
		t.Error("Clear left content behind")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.ShowCursor(3, 2)
	b.SetCursorStyle(mode.CursorBar)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 2 || !visible {
		t.Errorf("CursorPosition() = %d, %d, %v", x, y, visible)
	}
	if b.CursorStyleValue() != mode.CursorBar {
		t.Errorf("CursorStyleValue() = %v", b.CursorStyleValue())
	}
	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor still visible")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	if ev := b.PollEvent(time.Millisecond); ev.Type != EventNone {
		t.Errorf("PollEvent() on empty queue = %v, want EventNone", ev.Type)
	}

	want := Event{Type: EventKey, Key: key.MustParse("i")}
	b.PostEvent(want)
	if got := b.PollEvent(time.Second); got != want {
		t.Errorf("PollEvent() = %+v, want %+v", got, want)
	}

	b.Resize(20, 5)
	ev := b.PollEvent(time.Second)
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("resize event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), "j"},
		{"upper", tcell.NewEventKey(tcell.KeyRune, 'V', tcell.ModNone), "V"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlW, 'w', tcell.ModCtrl), "<C-w>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<BS>"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "<PageDown>"},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "<F5>"},
		{"alt arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), "<A-Left>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("convertKey() not ok")
			}
			if want := key.MustParse(tt.want); got != want {
				t.Errorf("convertKey() = %v, want %v", got, want)
			}
		})
	}
}

func TestConvertEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventResize(100, 40))
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("convertEvent(resize) = %+v", ev)
	}
	if ev := convertEvent(tcell.NewEventInterrupt(nil)); ev.Type != EventInterrupt {
		t.Errorf("convertEvent(interrupt) = %v", ev.Type)
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := newTerminal(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer term.Shutdown()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	var ev Event
	for range 10 {
		if ev = term.PollEvent(time.Second); ev.Type == EventKey {
			break
		}
	}
	if ev.Type != EventKey || ev.Key != key.MustParse("x") {
		t.Errorf("PollEvent() = %+v, want key x", ev)
	}

	term.SetCell(0, 0, Cell{Rune: 'A', Style: tcell.StyleDefault})
	term.Show()
	cells, w, _ := screen.GetContents()
	if w == 0 || len(cells[0].Runes) == 0 || cells[0].Runes[0] != 'A' {
		t.Error("cell was not drawn")
	}
}
