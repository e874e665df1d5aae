package session

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/match"
)

// NotebookPattern selects the files the picker lists.
const NotebookPattern = "*.ipynb"

// FilePicker lists the notebooks and subdirectories of a directory.
type FilePicker struct {
	Dir string

	// Entries are directory names with a trailing "/" followed by the
	// notebook file names, each group sorted.
	Entries []string

	Err error
}

// NewFilePicker creates a picker for dir. Entries are read by Refresh.
func NewFilePicker(dir string) *FilePicker {
	if dir == "" {
		dir = "."
	}
	return &FilePicker{Dir: filepath.Clean(dir)}
}

// Refresh re-reads the directory.
func (p *FilePicker) Refresh() error {
	ents, err := os.ReadDir(p.Dir)
	p.Err = err
	if err != nil {
		p.Entries = nil
		return err
	}
	var dirs, files []string
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch {
		case e.IsDir():
			dirs = append(dirs, name+"/")
		case match.Match(name, NotebookPattern):
			files = append(files, name)
		}
	}
	slices.Sort(dirs)
	slices.Sort(files)
	p.Entries = nil
	if abs, err := filepath.Abs(p.Dir); err == nil && filepath.Dir(abs) != abs {
		p.Entries = append(p.Entries, "../")
	}
	p.Entries = append(p.Entries, dirs...)
	p.Entries = append(p.Entries, files...)
	return nil
}

// Path returns the full path of entry i and whether it is a directory.
func (p *FilePicker) Path(i int) (string, bool) {
	if i < 0 || i >= len(p.Entries) {
		return "", false
	}
	name := p.Entries[i]
	dir := strings.HasSuffix(name, "/")
	return filepath.Join(p.Dir, strings.TrimSuffix(name, "/")), dir
}

// Enter changes to dir and refreshes.
func (p *FilePicker) Enter(dir string) error {
	p.Dir = filepath.Clean(dir)
	return p.Refresh()
}
