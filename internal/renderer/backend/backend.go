// Package backend abstracts the terminal the editor draws to.
package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Text is the pasted text for EventPaste.
	Text string
}

// Cell is one screen position. Combining holds marks drawn over Rune.
type Cell struct {
	Rune      rune
	Combining string
	Style     tcell.Style
}

// EmptyCell is a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: tcell.StyleDefault}
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init prepares the terminal. Must be called before any other method.
	Init() error

	// Shutdown restores the terminal. It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the terminal are
	// ignored.
	SetCell(x, y int, cell Cell)

	// Clear blanks the whole screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style mode.CursorStyle)

	// PollEvent waits up to timeout for the next event. It returns an
	// EventNone event when the timeout expires first.
	PollEvent(timeout time.Duration) Event

	// PostEvent queues a synthetic event. It never blocks; the event is
	// dropped when the queue is full.
	PostEvent(event Event)
}

// eventQueueSize bounds the queue of pending events.
const eventQueueSize = 128

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   mode.CursorStyle
	events        chan Event
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, eventQueueSize),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position, or an empty cell outside
// the screen.
func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style mode.CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent(timeout time.Duration) Event {
	select {
	case ev := <-b.events:
		return ev
	case <-time.After(timeout):
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// Row returns line y of the screen as text.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Rune != 0 {
			rs = append(rs, c.Rune)
			rs = append(rs, []rune(c.Combining)...)
		}
	}
	return string(rs)
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() mode.CursorStyle {
	return b.cursorStyle
}

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}

// Resize simulates a terminal resize and queues an EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
