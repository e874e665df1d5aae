package command

import (
	"fmt"
	"strconv"
	"strings"
)

// MotionKind identifies a cursor movement.
type MotionKind uint8

const (
	Up MotionKind = iota
	Down
	Left
	Right
	ToLine
	ToColumn
	ToNextWordStart
	ToNextWordEnd
	ToPreviousWordStart
	ToLineStart
	ToLineEnd
	PageDown
	PageUp
	ToNextSearchResultStart
	ToNextSearchResultEnd
	ToPreviousSearchResultStart
	ToPreviousSearchResultEnd
	ToNextOutlineItemStart
	ToNextOutlineItemEnd
	ToPreviousOutlineItemStart
	ToPreviousOutlineItemEnd
	ToNextBookmark
	ToNextCell
	ToPreviousCell
	ToFirstCell
	ToLastCell

	motionCount
)

var motionNames = [motionCount]string{
	Up:                          "up",
	Down:                        "down",
	Left:                        "left",
	Right:                       "right",
	ToLine:                      "to-line",
	ToColumn:                    "to-column",
	ToNextWordStart:             "to-next-word-start",
	ToNextWordEnd:               "to-next-word-end",
	ToPreviousWordStart:         "to-previous-word-start",
	ToLineStart:                 "to-line-start",
	ToLineEnd:                   "to-line-end",
	PageDown:                    "page-down",
	PageUp:                      "page-up",
	ToNextSearchResultStart:     "to-next-search-result-start",
	ToNextSearchResultEnd:       "to-next-search-result-end",
	ToPreviousSearchResultStart: "to-previous-search-result-start",
	ToPreviousSearchResultEnd:   "to-previous-search-result-end",
	ToNextOutlineItemStart:      "to-next-outline-item-start",
	ToNextOutlineItemEnd:        "to-next-outline-item-end",
	ToPreviousOutlineItemStart:  "to-previous-outline-item-start",
	ToPreviousOutlineItemEnd:    "to-previous-outline-item-end",
	ToNextBookmark:              "to-next-bookmark",
	ToNextCell:                  "to-next-cell",
	ToPreviousCell:              "to-previous-cell",
	ToFirstCell:                 "to-first-cell",
	ToLastCell:                  "to-last-cell",
}

// String returns the kebab-case name of k.
func (k MotionKind) String() string {
	if k >= motionCount {
		return "unknown"
	}
	return motionNames[k]
}

// Motion is a cursor movement. N is the 1-based target of ToLine and
// ToColumn and is ignored otherwise.
type Motion struct {
	Kind MotionKind
	N    int
}

// Line builds a ToLine motion.
func Line(n int) Motion { return Motion{Kind: ToLine, N: n} }

// Column builds a ToColumn motion.
func Column(n int) Motion { return Motion{Kind: ToColumn, N: n} }

// HasTarget reports whether the motion carries a line or column number.
func (m Motion) HasTarget() bool {
	return m.Kind == ToLine || m.Kind == ToColumn
}

// String returns the textual form, e.g. "down" or "to-line 4".
func (m Motion) String() string {
	if m.HasTarget() {
		return m.Kind.String() + " " + strconv.Itoa(m.N)
	}
	return m.Kind.String()
}

// ParseMotion parses the textual form produced by Motion.String.
func ParseMotion(s string) (Motion, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(s), " ")
	for i, n := range motionNames {
		if n != name {
			continue
		}
		m := Motion{Kind: MotionKind(i)}
		if !m.HasTarget() {
			if strings.TrimSpace(arg) != "" {
				return Motion{}, fmt.Errorf("%w: motion %q takes no argument", ErrInvalidArgument, name)
			}
			return m, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Motion{}, fmt.Errorf("%w: motion %q needs a number", ErrInvalidArgument, name)
		}
		m.N = n
		return m, nil
	}
	return Motion{}, fmt.Errorf("%w: motion %q", ErrUnknown, name)
}
