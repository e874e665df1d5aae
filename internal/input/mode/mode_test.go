package mode

import "testing"

func TestModeLabels(t *testing.T) {
	want := map[Mode]string{
		Normal:      "[Nor]",
		Insert:      "[Ins]",
		Visual:      "[Vis]",
		VisualLine:  "[ViL]",
		VisualBlock: "[ViB]",
		Replace:     "[Rep]",
		Command:     "[Cmd]",
		UICursor:    "[Cur]",
	}
	if len(All) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(All), len(want))
	}
	for _, m := range All {
		if got := m.Label(); got != want[m] {
			t.Errorf("%v.Label() = %q, want %q", m, got, want[m])
		}
	}
	if got := Mode(42).Label(); got != "[???]" {
		t.Errorf("invalid Label() = %q", got)
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range All {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, true", m.String(), got, ok, m)
		}
	}
}

func TestParseModeAliases(t *testing.T) {
	tests := []struct {
		name string
		want Mode
		ok   bool
	}{
		{"Normal", Normal, true},
		{"visual_line", VisualLine, true},
		{"Visual Block", VisualBlock, true},
		{"ex", Command, true},
		{"ui", UICursor, true},
		{"operator-pending", Normal, false},
		{"", Normal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMode(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseMode(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModePredicates(t *testing.T) {
	for _, m := range All {
		visual := m == Visual || m == VisualLine || m == VisualBlock
		if m.IsVisual() != visual {
			t.Errorf("%v.IsVisual() = %v", m, m.IsVisual())
		}
		text := m == Insert || m == Replace || m == Command
		if m.AcceptsText() != text {
			t.Errorf("%v.AcceptsText() = %v", m, m.AcceptsText())
		}
	}
}

func TestCursorStyle(t *testing.T) {
	tests := []struct {
		mode Mode
		want CursorStyle
	}{
		{Normal, CursorBlock},
		{Visual, CursorBlock},
		{Insert, CursorBar},
		{Replace, CursorUnderline},
		{UICursor, CursorHidden},
	}
	for _, tt := range tests {
		if got := tt.mode.CursorStyle(); got != tt.want {
			t.Errorf("%v.CursorStyle() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
