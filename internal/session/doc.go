// Package session owns the editor state and applies commands to it.
//
// A Session holds an ordered list of tabs, exactly one of which is
// focused, along with the mode state, settings, optional panes, the
// command line and the copy register. Each Tab owns one notebook plus its
// cursor, selections, search pattern and bookmarks.
//
// Execute is the dispatcher. It never returns an error: requests that
// cannot be honored (moving past the last line, editing a read-only tab,
// saving without a file name) are clamped or ignored and may leave a
// message in Status. Failures worth keeping are logged.
//
// A Session is owned by a single control loop and is not safe for
// concurrent use.
package session
