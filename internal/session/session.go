package session

import (
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/logging"
	"pkt.systems/pslog"
)

// DefaultPageSize is the number of lines PageUp and PageDown move.
const DefaultPageSize = 20

// maxRepeat bounds the count of a Repeat command.
const maxRepeat = 10000

// Session is the editor state: tabs, mode, panes, settings and the
// command line.
type Session struct {
	tabs  []*Tab
	focus int

	modes    *mode.Manager
	settings Settings
	panes    Panes
	cmdline  CommandLine
	picker   *FilePicker
	register Register

	pageSize int
	status   string
	quit     bool

	log pslog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l pslog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSettings sets the initial settings.
func WithSettings(st Settings) Option {
	return func(s *Session) { s.settings = st }
}

// WithClipboard sets the system clipboard mirrored by the register.
// Pass nil to keep copies inside the editor.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) { s.register.clipboard = c }
}

// WithPageSize sets how far PageUp and PageDown move.
func WithPageSize(n int) Option {
	return func(s *Session) { s.SetPageSize(n) }
}

// WithPickerDir sets the directory the file picker lists.
func WithPickerDir(dir string) Option {
	return func(s *Session) { s.picker = NewFilePicker(dir) }
}

// New creates a session with one untitled tab.
func New(opts ...Option) *Session {
	s := &Session{
		tabs:     []*Tab{newUntitled()},
		modes:    mode.NewManager(),
		settings: DefaultSettings(),
		panes:    defaultPanes(),
		cmdline:  newCommandLine(),
		picker:   NewFilePicker("."),
		pageSize: DefaultPageSize,
		log:      logging.Nop(),
	}
	s.register.clipboard = SystemClipboard()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tabs returns the open tabs in order. Callers must not modify them.
func (s *Session) Tabs() []*Tab {
	return s.tabs
}

// FocusIndex returns the index of the focused tab.
func (s *Session) FocusIndex() int {
	return s.focus
}

// Focused returns the focused tab.
func (s *Session) Focused() *Tab {
	return s.tabs[s.focus]
}

// Mode returns the current mode.
func (s *Session) Mode() mode.Mode {
	return s.modes.Current()
}

// Modes returns the mode manager, for registering change observers.
func (s *Session) Modes() *mode.Manager {
	return s.modes
}

// Settings returns a copy of the settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Panes returns a copy of the pane state.
func (s *Session) Panes() Panes {
	return s.panes
}

// CommandLine returns the command line being edited in Command mode.
func (s *Session) CommandLine() CommandLine {
	return s.cmdline
}

// Picker returns the file picker.
func (s *Session) Picker() *FilePicker {
	return s.picker
}

// Register returns the text held by the copy register.
func (s *Session) Register() string {
	return s.register.text
}

// Status returns the message left by the last command, if any.
func (s *Session) Status() string {
	return s.status
}

// Quitting reports whether Quit has been applied.
func (s *Session) Quitting() bool {
	return s.quit
}

// SetPageSize changes how far PageUp and PageDown move; n < 1 is ignored.
func (s *Session) SetPageSize(n int) {
	if n >= 1 {
		s.pageSize = n
	}
}

// AddTab appends t and focuses it. A blank untitled tab in front is
// replaced.
func (s *Session) AddTab(t *Tab) {
	if len(s.tabs) == 1 && s.tabs[0].isBlank() {
		s.tabs[0] = t
		s.focus = 0
		return
	}
	s.tabs = append(s.tabs, t)
	s.focus = len(s.tabs) - 1
}

func (s *Session) setStatus(msg string) {
	s.status = msg
}

func (s *Session) tabLog(t *Tab) pslog.Logger {
	l := s.log.With("tab", t.Name)
	if t.Path != "" {
		l = l.With("path", t.Path)
	}
	return l
}
