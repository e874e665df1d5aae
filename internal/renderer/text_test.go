package renderer

import (
	"slices"
	"testing"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		line     string
		tabWidth int
		want     string
		cols     []int
	}{
		{"ab", 4, "ab", []int{0, 1, 2}},
		{"\tab", 4, "    ab", []int{0, 4, 5, 6}},
		{"a\tb", 4, "a   b", []int{0, 1, 4, 5}},
		{"a\tb", 0, "a b", []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		got, cols := expandTabs(tt.line, tt.tabWidth)
		if got != tt.want || !slices.Equal(cols, tt.cols) {
			t.Errorf("expandTabs(%q, %d) = %q, %v; want %q, %v", tt.line, tt.tabWidth, got, cols, tt.want, tt.cols)
		}
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		text   string
		width  int
		parts  []string
		starts []int
	}{
		{"short", 10, []string{"short"}, []int{0}},
		{"hello world foo", 11, []string{"hello world", "foo"}, []int{0, 12}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}, []int{0, 4, 8}},
	}
	for _, tt := range tests {
		parts, starts := segments(tt.text, tt.width)
		if !slices.Equal(parts, tt.parts) || !slices.Equal(starts, tt.starts) {
			t.Errorf("segments(%q, %d) = %q, %v; want %q, %v", tt.text, tt.width, parts, starts, tt.parts, tt.starts)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"abc", 5, "abc"},
		{"abcdefgh", 5, "abcd…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := fit(tt.s, tt.width); got != tt.want {
			t.Errorf("fit(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := width("漢字ab", 2); got != 4 {
		t.Errorf("width(wide, 2) = %d, want 4", got)
	}
	if got := width("ab", 5); got != 2 {
		t.Errorf("width past end = %d, want 2", got)
	}
}
