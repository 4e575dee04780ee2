package layout

import (
	"math"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

// ChildBounds splits container along axis in proportion to flexes.
//
// Each child gets the full cross extent. Child edges are rounded to whole
// pixels from the running flex total, and every origin starts at the previous
// child's far edge, so the children tile the container with no gap or overlap
// and their extents sum to the container's extent. Negative extents are
// treated as zero.
func ChildBounds(container entity.Bounds, axis entity.Axis, flexes []float64) []entity.Bounds {
	n := len(flexes)
	if n == 0 {
		return nil
	}

	extent := math.Max(container.Size.Along(axis), 0)
	cross := math.Max(container.Size.Along(axis.Invert()), 0)

	total := 0.0
	for _, f := range flexes {
		total += f
	}
	uniform := total <= 0 || math.IsNaN(total) || math.IsInf(total, 0)
	if uniform {
		total = float64(n)
	}

	start := container.Origin.Along(axis)
	out := make([]entity.Bounds, n)
	cumulative := 0.0
	prevEdge := 0.0
	for i, f := range flexes {
		if uniform {
			f = 1
		}
		cumulative += f

		edge := extent
		if i < n-1 {
			edge = math.Min(math.Round(extent*cumulative/total), extent)
		}
		size := math.Max(edge-prevEdge, 0)

		b := entity.Bounds{Origin: container.Origin}
		if axis == entity.AxisVertical {
			b.Origin.Y = start + prevEdge
			b.Size = entity.Size{Width: cross, Height: size}
		} else {
			b.Origin.X = start + prevEdge
			b.Size = entity.Size{Width: size, Height: cross}
		}
		out[i] = b
		prevEdge = math.Max(prevEdge, edge)
	}
	return out
}

// handleBounds is the hit region straddling the trailing edge of child.
func handleBounds(axis entity.Axis, child entity.Bounds, thickness float64) entity.Bounds {
	b := child
	if axis == entity.AxisVertical {
		b.Origin.Y = child.Bottom() - thickness/2
		b.Size.Height = thickness
	} else {
		b.Origin.X = child.Right() - thickness/2
		b.Size.Width = thickness
	}
	return b
}

// dividerBounds is the visual line starting at the trailing edge of child.
func dividerBounds(axis entity.Axis, child entity.Bounds, thickness float64) entity.Bounds {
	b := child
	if axis == entity.AxisVertical {
		b.Origin.Y = child.Bottom()
		b.Size.Height = thickness
	} else {
		b.Origin.X = child.Right()
		b.Size.Width = thickness
	}
	return b
}
