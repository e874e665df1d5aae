package keymap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/Hina-Kagiyama/nbterm/internal/command"
	"github.com/Hina-Kagiyama/nbterm/internal/input/key"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
)

// Keymap is the source form of one mode's table.
type Keymap struct {
	// Mode is the mode the bindings apply to.
	Mode mode.Mode

	// Bindings are the key-to-command mappings. Later entries win.
	Bindings []Binding
}

// Table is an immutable binding table for one mode.
type Table struct {
	entries map[Trigger]resolved
}

// Build parses every binding of k into a Table.
func (k *Keymap) Build() (Table, error) {
	t := Table{entries: make(map[Trigger]resolved, len(k.Bindings))}
	for _, b := range k.Bindings {
		r, err := b.resolve()
		if err != nil {
			return Table{}, fmt.Errorf("%s keymap: %w", k.Mode, err)
		}
		t.entries[r.Trigger] = r
	}
	return t, nil
}

// Lookup returns the command bound to tr.
func (t Table) Lookup(tr Trigger) (command.Command, bool) {
	r, ok := t.entries[tr]
	return r.Command, ok
}

// Len returns the number of bindings.
func (t Table) Len() int {
	return len(t.entries)
}

// Bindings returns the bindings sorted by key spec.
func (t Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.entries))
	for _, r := range t.entries {
		out = append(out, r.Binding)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

func (t Table) with(r resolved) Table {
	entries := maps.Clone(t.entries)
	if entries == nil {
		entries = make(map[Trigger]resolved)
	}
	entries[r.Trigger] = r
	return Table{entries: entries}
}

func (t Table) without(tr Trigger) Table {
	entries := maps.Clone(t.entries)
	delete(entries, tr)
	return Table{entries: entries}
}

// Set holds one Table per mode.
type Set struct {
	tables [len(modeNames)]Table
}

// modeNames fixes the table count to the number of modes.
var modeNames = [...]mode.Mode{
	mode.Normal, mode.Insert, mode.Visual, mode.VisualLine,
	mode.VisualBlock, mode.Replace, mode.Command, mode.UICursor,
}

// NewSet builds a Set from keymaps. Modes without a keymap get an empty
// table.
func NewSet(keymaps ...*Keymap) (*Set, error) {
	s := &Set{}
	var errs []error
	for _, km := range keymaps {
		if !km.Mode.Valid() {
			errs = append(errs, fmt.Errorf("keymap for invalid mode %d", km.Mode))
			continue
		}
		t, err := km.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.tables[km.Mode] = t
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Table returns the table for m.
func (s *Set) Table(m mode.Mode) Table {
	if !m.Valid() {
		return Table{}
	}
	return s.tables[m]
}

// Lookup returns the command bound to ev in mode m. Only exact matches of
// key, rune and modifiers count.
func (s *Set) Lookup(m mode.Mode, ev key.Event) (command.Command, bool) {
	return s.Table(m).Lookup(TriggerOf(ev))
}

// Rebind returns a copy of s with keys bound to action in mode m.
func (s *Set) Rebind(m mode.Mode, keys, action string) (*Set, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("rebind %s: invalid mode", keys)
	}
	r, err := Binding{Keys: keys, Action: action, Category: "User"}.resolve()
	if err != nil {
		return nil, err
	}
	out := *s
	out.tables[m] = s.tables[m].with(r)
	return &out, nil
}

// Unbind returns a copy of s with keys unbound in mode m. Unbinding a key
// that has no binding is not an error.
func (s *Set) Unbind(m mode.Mode, keys string) (*Set, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("unbind %s: invalid mode", keys)
	}
	tr, err := ParseTrigger(keys)
	if err != nil {
		return nil, fmt.Errorf("unbind %s: %w", keys, err)
	}
	out := *s
	out.tables[m] = s.tables[m].without(tr)
	return &out, nil
}

// Overrides maps a mode name to key specs and command names, the shape of
// the [keys.<mode>] config tables. An empty command name unbinds the key.
type Overrides map[string]map[string]string

// Apply returns a copy of s with every override applied. Entries are
// applied in sorted order and all failures are reported together.
func (s *Set) Apply(o Overrides) (*Set, error) {
	out := s
	var errs []error
	for _, modeName := range slices.Sorted(maps.Keys(o)) {
		m, ok := mode.ParseMode(modeName)
		if !ok {
			errs = append(errs, fmt.Errorf("keys.%s: unknown mode", modeName))
			continue
		}
		bindings := o[modeName]
		for _, keys := range slices.Sorted(maps.Keys(bindings)) {
			var next *Set
			var err error
			if action := bindings[keys]; action == "" {
				next, err = out.Unbind(m, keys)
			} else {
				next, err = out.Rebind(m, keys, action)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("keys.%s: %w", modeName, err))
				continue
			}
			out = next
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
