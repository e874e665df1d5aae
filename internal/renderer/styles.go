package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Hina-Kagiyama/nbterm/internal/config"
)

// Styles are the tcell styles of every screen element.
type Styles struct {
	Text      tcell.Style
	Gutter    tcell.Style
	Header    tcell.Style
	Focused   tcell.Style
	Output    tcell.Style
	Error     tcell.Style
	Selection tcell.Style
	Match     tcell.Style
	Status    tcell.Style
	Mode      tcell.Style
	TabActive tcell.Style
	Tab       tcell.Style
	PaneTitle tcell.Style
	PaneRow   tcell.Style
	Border    tcell.Style
}

// color converts a colorful color to a true-color tcell color.
func color(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// NewStyles derives the styles from a theme.
func NewStyles(th config.Theme) Styles {
	def := tcell.StyleDefault
	status := def.Foreground(color(th.StatusFG)).Background(color(th.StatusBG))
	return Styles{
		Text:      def,
		Gutter:    def.Foreground(color(th.Dim)),
		Header:    def.Foreground(color(th.Dim)),
		Focused:   def.Foreground(color(th.Accent)).Bold(true),
		Output:    def.Foreground(color(th.Dim)),
		Error:     def.Foreground(tcell.ColorRed),
		Selection: def.Background(color(th.SelectionBG)),
		Match:     def.Background(color(th.Accent)).Foreground(tcell.ColorBlack),
		Status:    status,
		Mode:      status.Foreground(color(th.Accent)).Bold(true),
		TabActive: def.Foreground(color(th.TabActiveFG)).Background(color(th.TabActiveBG)).Bold(true),
		Tab:       status.Foreground(color(th.Dim)),
		PaneTitle: def.Foreground(color(th.Accent)).Bold(true),
		PaneRow:   def.Reverse(true),
		Border:    def.Foreground(color(th.Dim)),
	}
}
