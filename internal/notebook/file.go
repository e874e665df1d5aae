package notebook

import (
	"os"
	"path/filepath"
)

// Load reads and parses the notebook at path.
// Read failures are a *FileError (ErrRead); decoding failures a *ParseError
// naming path (ErrParse).
func Load(path string) (*Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return parse(path, data)
}

// Save serializes n and writes it to path, creating missing parent
// directories first.
func Save(n *Notebook, path string) error {
	data, err := Serialize(n)
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}
