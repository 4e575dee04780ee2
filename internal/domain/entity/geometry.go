package entity

import "math"

// Axis is the orientation along which a container arranges its children.
type Axis int

const (
	AxisHorizontal Axis = iota // Children arranged left to right
	AxisVertical               // Children arranged top to bottom
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Invert returns the perpendicular axis.
func (a Axis) Invert() Axis {
	if a == AxisVertical {
		return AxisHorizontal
	}
	return AxisVertical
}

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Along returns the coordinate on the given axis.
func (p Point) Along(axis Axis) float64 {
	if axis == AxisVertical {
		return p.Y
	}
	return p.X
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size is a width/height pair in device pixels.
type Size struct {
	Width, Height float64
}

// Along returns the extent on the given axis.
func (s Size) Along(axis Axis) float64 {
	if axis == AxisVertical {
		return s.Height
	}
	return s.Width
}

// WithAlong returns a copy of s with the extent on axis replaced.
func (s Size) WithAlong(axis Axis, v float64) Size {
	if axis == AxisVertical {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

// Round rounds both extents to the nearest device pixel.
func (s Size) Round() Size {
	return Size{Width: math.Round(s.Width), Height: math.Round(s.Height)}
}

// Bounds is an axis-aligned rectangle in device pixels.
type Bounds struct {
	Origin Point
	Size   Size
}

// NewBounds builds bounds from origin and extents.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (b Bounds) Left() float64   { return b.Origin.X }
func (b Bounds) Top() float64    { return b.Origin.Y }
func (b Bounds) Right() float64  { return b.Origin.X + b.Size.Width }
func (b Bounds) Bottom() float64 { return b.Origin.Y + b.Size.Height }

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.Origin.X + b.Size.Width/2, Y: b.Origin.Y + b.Size.Height/2}
}

// Contains reports whether p lies inside b. The origin edges are inclusive,
// the far edges exclusive, so adjacent tiles never both claim a point.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left() && p.X < b.Right() && p.Y >= b.Top() && p.Y < b.Bottom()
}

// IsEmpty reports whether b covers no area.
func (b Bounds) IsEmpty() bool {
	return b.Size.Width <= 0 || b.Size.Height <= 0
}

// OverlapsVertically reports whether b and o share any row.
func (b Bounds) OverlapsVertically(o Bounds) bool {
	return b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// OverlapsHorizontally reports whether b and o share any column.
func (b Bounds) OverlapsHorizontally(o Bounds) bool {
	return b.Left() < o.Right() && o.Left() < b.Right()
}
