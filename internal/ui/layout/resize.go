package layout

import (
	"math"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

// pixelEpsilon is the leftover displacement below which a drag is done.
const pixelEpsilon = 1e-6

// ComputeResize applies one drag step of the handle after child ix to flexes.
//
// Sizes are derived from the flexes as extent*flex/len(flexes). A growing
// child takes space from its successors one pair at a time, each donor
// stopping at minSize; a shrinking child only trades with its immediate
// successor. Every adjustment moves flex between a pair, so the sum of
// flexes is unchanged. It reports whether any flex changed.
func ComputeResize(
	flexes []float64,
	ix int,
	axis entity.Axis,
	childStart entity.Point,
	containerSize entity.Size,
	pointer entity.Point,
	minSize float64,
) bool {
	n := len(flexes)
	extent := containerSize.Along(axis)
	if ix < 0 || ix >= n-1 || extent <= 0 {
		return false
	}

	size := func(k int) float64 {
		return extent * flexes[k] / float64(n)
	}

	// A child already squeezed under its minimum cannot be dragged.
	if minSize-1 > size(ix) {
		return false
	}

	proposed := pointer.Sub(childStart).Along(axis) - size(ix)
	forward := proposed > 0

	changed := false
	for k := ix; k+1 < n && math.Abs(proposed) > pixelEpsilon; k++ {
		nextTarget := math.Max(size(k+1)-proposed, minSize)
		currentTarget := math.Max(size(k)+size(k+1)-nextTarget, minSize)
		change := currentTarget - size(k)

		if change != 0 {
			delta := change * float64(n) / extent
			flexes[k] += delta
			flexes[k+1] -= delta
			changed = true
		}
		proposed -= change

		if !forward {
			break
		}
	}
	return changed
}
