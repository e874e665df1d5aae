package session

// LeftPane is the content of the left side panel.
type LeftPane uint8

const (
	LeftNone LeftPane = iota
	LeftFilePicker
	LeftOutline
	LeftSettings
)

// String returns the pane title.
func (p LeftPane) String() string {
	switch p {
	case LeftFilePicker:
		return "Files"
	case LeftOutline:
		return "Outline"
	case LeftSettings:
		return "Settings"
	default:
		return ""
	}
}

// RightPane is the content of the right side panel.
type RightPane uint8

const (
	RightNone RightPane = iota
	RightSymbols
	RightVariables
)

// String returns the pane title.
func (p RightPane) String() string {
	switch p {
	case RightSymbols:
		return "Symbols"
	case RightVariables:
		return "Variables"
	default:
		return ""
	}
}

// Focus names the area that receives UI-cursor navigation.
type Focus uint8

const (
	FocusEditor Focus = iota
	FocusLeft
	FocusRight
	FocusTabline
)

// Panes records which optional panes are shown.
type Panes struct {
	Left  LeftPane
	Right RightPane

	Tabline   bool
	StatusBar bool
	Diff      bool
	Search    bool

	Focus Focus

	// LeftIndex and RightIndex are the highlighted rows of the side panes.
	LeftIndex  int
	RightIndex int

	// lastLeft and lastRight restore a pane hidden by ToggleLeftPane and
	// ToggleRightPane.
	lastLeft  LeftPane
	lastRight RightPane
}

func defaultPanes() Panes {
	return Panes{
		Tabline:   true,
		StatusBar: true,
		lastLeft:  LeftFilePicker,
		lastRight: RightVariables,
	}
}

// showLeft shows p on the left, or hides the left pane if p is showing.
func (p *Panes) showLeft(pane LeftPane) {
	if p.Left == pane {
		p.lastLeft, p.Left = pane, LeftNone
		if p.Focus == FocusLeft {
			p.Focus = FocusEditor
		}
		return
	}
	p.Left = pane
	p.LeftIndex = 0
}

func (p *Panes) showRight(pane RightPane) {
	if p.Right == pane {
		p.lastRight, p.Right = pane, RightNone
		if p.Focus == FocusRight {
			p.Focus = FocusEditor
		}
		return
	}
	p.Right = pane
	p.RightIndex = 0
}

func (p *Panes) toggleLeft() {
	if p.Left != LeftNone {
		p.showLeft(p.Left)
		return
	}
	p.showLeft(p.lastLeft)
}

func (p *Panes) toggleRight() {
	if p.Right != RightNone {
		p.showRight(p.Right)
		return
	}
	p.showRight(p.lastRight)
}

// moveFocus shifts focus one step left (-1) or right (+1), skipping hidden
// panes.
func (p *Panes) moveFocus(dir int) {
	order := []Focus{}
	if p.Left != LeftNone {
		order = append(order, FocusLeft)
	}
	order = append(order, FocusEditor)
	if p.Right != RightNone {
		order = append(order, FocusRight)
	}
	cur := 0
	for i, f := range order {
		if f == p.Focus {
			cur = i
		}
	}
	if p.Focus == FocusTabline {
		cur = indexOf(order, FocusEditor)
	}
	p.Focus = order[clamp(cur+dir, 0, len(order)-1)]
}

func indexOf(order []Focus, f Focus) int {
	for i, o := range order {
		if o == f {
			return i
		}
	}
	return 0
}
