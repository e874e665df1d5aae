package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

const sample = `{"nbformat": 4, "nbformat_minor": 5,
"metadata": {"kernelspec": {"name": "python3", "display_name": "Python 3", "language": "python"},
  "language_info": {"name": "python"}},
"cells": [
  {"cell_type": "markdown", "id": "a1", "metadata": {}, "source": "# Title\nText"},
  {"cell_type": "code", "id": "b2", "metadata": {}, "execution_count": 1,
   "source": ["def f():\n", "    return 1"],
   "outputs": [{"output_type": "stream", "name": "stdout", "text": "1\n"}]}
]}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ipynb")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "nbterm dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestFmt(t *testing.T) {
	path := writeSample(t)
	nb, err := notebook.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	want, err := notebook.Serialize(nb)
	if err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "fmt", path)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if out != string(want) {
		t.Errorf("fmt output =\n%s\nwant\n%s", out, want)
	}

	out, err = execute(t, sample, "fmt", "-")
	if err != nil || out != string(want) {
		t.Errorf("fmt - = %q, %v", out, err)
	}
}

func TestFmtCheckAndWrite(t *testing.T) {
	path := writeSample(t)

	out, err := execute(t, "", "fmt", "--check", path)
	if err == nil {
		t.Fatal("fmt --check passed on an unformatted notebook")
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("fmt --check output = %q, want %q", out, path)
	}

	if _, err := execute(t, "", "fmt", "-w", path); err != nil {
		t.Fatalf("fmt -w: %v", err)
	}
	if out, err := execute(t, "", "fmt", "--check", path); err != nil || out != "" {
		t.Errorf("fmt --check after -w = %q, %v", out, err)
	}

	if _, err := execute(t, "", "fmt", "-w", "--check", path); err == nil {
		t.Error("fmt accepted --write with --check")
	}
}

func TestFmtErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ipynb")
	if err := os.WriteFile(bad, []byte(`{"cells": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "nope.ipynb"), notebook.ErrRead},
		{"invalid notebook", bad, notebook.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", "fmt", tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("fmt error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q does not name %s", err, tt.path)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	path := writeSample(t)
	out, err := execute(t, "", "info", path)
	if err != nil {
		t.Fatalf("info: %v", err)
	}

	var got summary
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("info output is not YAML: %v\n%s", err, out)
	}
	want := summary{
		Path:     path,
		Format:   "4.5",
		Language: "python",
		Kernel:   "Python 3",
		Cells:    cellCounts{Code: 1, Markdown: 1},
		Outputs:  1,
		Executed: 1,
		Headings: []string{"# Title"},
		Symbols:  []string{"def f"},
	}
	if got.Path != want.Path || got.Format != want.Format || got.Language != want.Language ||
		got.Kernel != want.Kernel || got.Cells != want.Cells || got.Outputs != want.Outputs ||
		got.Executed != want.Executed {
		t.Errorf("info = %+v, want %+v", got, want)
	}
	if strings.Join(got.Headings, "|") != "# Title" || strings.Join(got.Symbols, "|") != "def f" {
		t.Errorf("headings = %v, symbols = %v", got.Headings, got.Symbols)
	}
}

func TestInfoQuery(t *testing.T) {
	path := writeSample(t)
	tests := []struct {
		query string
		want  string
	}{
		{"metadata.kernelspec.name", "python3"},
		{"cells.#", "2"},
		{"cells.1.outputs.0.name", "stdout"},
	}
	for _, tt := range tests {
		out, err := execute(t, "", "info", "--query", tt.query, path)
		if err != nil {
			t.Fatalf("info --query %s: %v", tt.query, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("info --query %s = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestEditorRequiresTerminal(t *testing.T) {
	saved := isTerminal
	isTerminal = func(*os.File) bool { return false }
	defer func() { isTerminal = saved }()

	if _, err := execute(t, ""); !errors.Is(err, errNotTerminal) {
		t.Errorf("nbterm without a terminal = %v, want %v", err, errNotTerminal)
	}
}

func TestEditorLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("--log-level loud = %v", err)
	}
}
