package entity

import (
	"fmt"
	"strings"
)

// SplitDirection is the side of an existing pane on which a new pane is placed.
// It is also used as the direction for pane navigation and swapping.
type SplitDirection int

const (
	SplitUp SplitDirection = iota
	SplitDown
	SplitLeft
	SplitRight
)

// AllSplitDirections returns every direction in declaration order.
func AllSplitDirections() [4]SplitDirection {
	return [4]SplitDirection{SplitUp, SplitDown, SplitLeft, SplitRight}
}

// ParseSplitDirection parses "up", "down", "left" or "right".
func ParseSplitDirection(s string) (SplitDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return SplitUp, nil
	case "down":
		return SplitDown, nil
	case "left":
		return SplitLeft, nil
	case "right":
		return SplitRight, nil
	}
	return 0, fmt.Errorf("unknown split direction %q", s)
}

func (d SplitDirection) String() string {
	switch d {
	case SplitUp:
		return "up"
	case SplitDown:
		return "down"
	case SplitLeft:
		return "left"
	case SplitRight:
		return "right"
	}
	return fmt.Sprintf("SplitDirection(%d)", int(d))
}

// Axis returns the container orientation a split in this direction produces.
func (d SplitDirection) Axis() Axis {
	switch d {
	case SplitUp, SplitDown:
		return AxisVertical
	default:
		return AxisHorizontal
	}
}

// Increasing reports whether the new pane goes after the existing one
// (Down/Right) rather than before it (Up/Left).
func (d SplitDirection) Increasing() bool {
	return d == SplitDown || d == SplitRight
}

// Edge returns the coordinate of the side of b facing this direction.
func (d SplitDirection) Edge(b Bounds) float64 {
	switch d {
	case SplitUp:
		return b.Top()
	case SplitDown:
		return b.Bottom()
	case SplitLeft:
		return b.Left()
	default:
		return b.Right()
	}
}

// AlongEdge returns a strip of the given thickness lying inside b against the
// side facing this direction.
func (d SplitDirection) AlongEdge(b Bounds, length float64) Bounds {
	switch d {
	case SplitUp:
		return NewBounds(b.Left(), b.Top(), b.Size.Width, length)
	case SplitDown:
		return NewBounds(b.Left(), b.Bottom()-length, b.Size.Width, length)
	case SplitLeft:
		return NewBounds(b.Left(), b.Top(), length, b.Size.Height)
	default:
		return NewBounds(b.Right()-length, b.Top(), length, b.Size.Height)
	}
}
