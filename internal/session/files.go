package session

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

// Open loads path into a tab, as the OpenFile command does, and returns
// the error instead of a status message.
func (s *Session) Open(path string) error {
	if path == "" {
		return errors.New("no file name")
	}
	path = filepath.Clean(path)
	for i, t := range s.tabs {
		if t.Path == path {
			s.focus = i
			return nil
		}
	}
	nb, err := notebook.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		nb = notebook.New()
		nb.Push(newCell(nb, notebook.CellCode))
	case err != nil:
		return err
	}
	t := NewTab(nb, path)
	t.ReadOnly = s.settings.ReadOnly
	s.AddTab(t)
	return nil
}

func (s *Session) openFile(path string) {
	if err := s.Open(path); err != nil {
		s.log.Warn("open failed", "path", path, "err", err)
		s.setStatus(err.Error())
		return
	}
	t := s.Focused()
	s.tabLog(t).Debug("opened", "cells", t.Notebook.Len())
	s.setStatus(fmt.Sprintf("%q %d cells", t.Name, t.Notebook.Len()))
}

// save writes t to path, or to its own path when path is empty, and
// reports success.
func (s *Session) save(t *Tab, path string) bool {
	if t.ReadOnly {
		s.setStatus("read-only")
		return false
	}
	if path == "" {
		path = t.Path
	}
	if path == "" {
		s.setStatus("no file name")
		return false
	}
	path = filepath.Clean(path)
	if err := notebook.Save(t.Notebook, path); err != nil {
		s.tabLog(t).Warn("save failed", "target", path, "err", err)
		s.setStatus(err.Error())
		return false
	}
	t.setPath(path)
	t.Dirty = false
	s.tabLog(t).Info("saved", "cells", t.Notebook.Len())
	s.setStatus(fmt.Sprintf("%q written", path))
	return true
}

// closeTab closes the focused tab. A dirty tab needs a second CloseFile.
func (s *Session) closeTab() {
	t := s.Focused()
	if t.Dirty && !t.closeArmed {
		t.closeArmed = true
		s.setStatus("unsaved changes; close again to discard")
		return
	}
	if len(s.tabs) == 1 {
		s.tabs[0] = newUntitled()
		s.focus = 0
		return
	}
	s.tabs = append(s.tabs[:s.focus], s.tabs[s.focus+1:]...)
	s.focus = min(s.focus, len(s.tabs)-1)
}

func (s *Session) refreshPicker() {
	if err := s.picker.Refresh(); err != nil {
		s.log.Warn("file picker", "dir", s.picker.Dir, "err", err)
		s.setStatus(err.Error())
	}
}
