package backend

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

func newTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan Event, eventQueueSize),
		done:   make(chan struct{}),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	t.screen.Clear()

	go t.readEvents()
	return nil
}

// readEvents converts tcell events until the screen is finalized.
func (t *Terminal) readEvents() {
	var paste *strings.Builder
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				paste = &strings.Builder{}
				continue
			}
			if paste != nil {
				t.send(Event{Type: EventPaste, Text: paste.String()})
				paste = nil
			}
			continue
		case *tcell.EventKey:
			if paste != nil {
				appendPaste(paste, e)
				continue
			}
		}

		if out := convertEvent(ev); out.Type != EventNone {
			t.send(out)
		}
	}
}

func (t *Terminal) send(ev Event) {
	select {
	case t.events <- ev:
	case <-t.done:
	}
}

func appendPaste(b *strings.Builder, e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		b.WriteRune(e.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		b.WriteByte('\n')
	case tcell.KeyTab:
		b.WriteByte('\t')
	}
}

func (t *Terminal) Shutdown() {
	t.once.Do(func() {
		close(t.done)
		t.mu.Lock()
		defer t.mu.Unlock()
		t.screen.Fini()
	})
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var comb []rune
	if cell.Combining != "" {
		comb = []rune(cell.Combining)
	}
	t.screen.SetContent(x, y, cell.Rune, comb, cell.Style)
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch style {
	case mode.CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case mode.CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) PollEvent(timeout time.Duration) Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return ev
	case <-timer.C:
		return Event{Type: EventNone}
	case <-t.done:
		return Event{Type: EventNone}
	}
}

func (t *Terminal) PostEvent(event Event) {
	select {
	case t.events <- event:
	default:
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// specialKeys maps tcell keys to non-character keys.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:    key.KeyEscape,
	tcell.KeyEnter:     key.KeyEnter,
	tcell.KeyLF:        key.KeyEnter,
	tcell.KeyTab:       key.KeyTab,
	tcell.KeyBacktab:   key.KeyBacktab,
	tcell.KeyBackspace: key.KeyBackspace,
	tcell.KeyDEL:       key.KeyBackspace,
	tcell.KeyDelete:    key.KeyDelete,
	tcell.KeyInsert:    key.KeyInsert,
	tcell.KeyHome:      key.KeyHome,
	tcell.KeyEnd:       key.KeyEnd,
	tcell.KeyPgUp:      key.KeyPageUp,
	tcell.KeyPgDn:      key.KeyPageDown,
	tcell.KeyUp:        key.KeyUp,
	tcell.KeyDown:      key.KeyDown,
	tcell.KeyLeft:      key.KeyLeft,
	tcell.KeyRight:     key.KeyRight,
}

// convertKey converts a tcell key event. Ctrl+letter keys become rune
// events with ModCtrl so "<C-w>" bindings match.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl)), true
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return key.NewSpecialEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods), true
	}
	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(sk, mods), true
	}
	return key.Event{}, false
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
