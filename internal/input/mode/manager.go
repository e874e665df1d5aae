package mode

// Manager tracks the current mode.
//
// A Manager is owned by the control loop and is not safe for concurrent use.
type Manager struct {
	current  Mode
	previous Mode

	// callbacks are notified on mode changes; unregistered slots are nil.
	callbacks []ChangeCallback
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal, previous: Normal}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode active before the last transition.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is reports whether the current mode is any of modes.
func (m *Manager) Is(modes ...Mode) bool {
	for _, md := range modes {
		if m.current == md {
			return true
		}
	}
	return false
}

// Switch makes to the current mode and reports whether anything changed.
// Switching to the current mode or to an invalid mode is a no-op.
func (m *Manager) Switch(to Mode) bool {
	if !to.Valid() || to == m.current {
		return false
	}
	from := m.current
	m.previous = from
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return true
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
