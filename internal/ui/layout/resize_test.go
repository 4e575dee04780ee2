package layout_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func sizes(flexes []float64, extent float64) []float64 {
	out := make([]float64, len(flexes))
	for i, f := range flexes {
		out[i] = extent * f / float64(len(flexes))
	}
	return out
}

func TestComputeResize_GrowFirstChild(t *testing.T) {
	flexes := []float64{1, 1}

	changed := layout.ComputeResize(flexes, 0, entity.AxisHorizontal,
		entity.Point{}, entity.Size{Width: 800, Height: 600},
		entity.Point{X: 500, Y: 300}, layout.DefaultMinWidth)

	require.True(t, changed)
	assert.InDeltaSlice(t, []float64{1.25, 0.75}, flexes, 1e-9)
	assert.InDeltaSlice(t, []float64{500, 300}, sizes(flexes, 800), 1e-9)
}

func TestComputeResize_ShrinkStopsAtMinimum(t *testing.T) {
	flexes := []float64{1, 1}

	changed := layout.ComputeResize(flexes, 0, entity.AxisHorizontal,
		entity.Point{}, entity.Size{Width: 800, Height: 600},
		entity.Point{X: -5000}, layout.DefaultMinWidth)

	require.True(t, changed)
	got := sizes(flexes, 800)
	assert.InDelta(t, 80, got[0], 1e-9)
	assert.InDelta(t, 720, got[1], 1e-9)
}

func TestComputeResize_VerticalUsesY(t *testing.T) {
	flexes := []float64{1, 1}

	changed := layout.ComputeResize(flexes, 0, entity.AxisVertical,
		entity.Point{X: 0, Y: 100}, entity.Size{Width: 400, Height: 600},
		entity.Point{X: 9999, Y: 450}, layout.DefaultMinHeight)

	require.True(t, changed)
	got := sizes(flexes, 600)
	assert.InDelta(t, 350, got[0], 1e-9)
	assert.InDelta(t, 250, got[1], 1e-9)
}

func TestComputeResize_RipplesForwardPastSaturatedSibling(t *testing.T) {
	flexes := []float64{1, 1, 1}

	// Child 1 saturates at the minimum and the remaining displacement moves
	// on to the next pair.
	changed := layout.ComputeResize(flexes, 0, entity.AxisHorizontal,
		entity.Point{}, entity.Size{Width: 900},
		entity.Point{X: 700}, layout.DefaultMinWidth)

	require.True(t, changed)
	got := sizes(flexes, 900)
	assert.InDelta(t, 520, got[0], 1e-9)
	assert.InDelta(t, 260, got[1], 1e-9)
	assert.InDelta(t, 120, got[2], 1e-9)
	assert.InDelta(t, 3, sum(flexes), 1e-9)
}

func TestComputeResize_ShrinkDoesNotRippleBackward(t *testing.T) {
	flexes := []float64{1, 1, 1}

	changed := layout.ComputeResize(flexes, 1, entity.AxisHorizontal,
		entity.Point{X: 300}, entity.Size{Width: 900},
		entity.Point{X: 0}, layout.DefaultMinWidth)

	require.True(t, changed)
	got := sizes(flexes, 900)
	assert.InDelta(t, 300, got[0], 1e-9, "predecessor untouched")
	assert.InDelta(t, 80, got[1], 1e-9)
	assert.InDelta(t, 520, got[2], 1e-9)
}

func TestComputeResize_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		flexes  []float64
		ix      int
		extent  float64
		pointer float64
	}{
		{"last child has no handle", []float64{1, 1}, 1, 800, 100},
		{"negative index", []float64{1, 1}, -1, 800, 100},
		{"zero extent", []float64{1, 1}, 0, 0, 100},
		{"already below minimum", []float64{0.1, 1.9}, 0, 800, 500},
		{"no displacement", []float64{1, 1}, 0, 800, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]float64(nil), tt.flexes...)
			changed := layout.ComputeResize(tt.flexes, tt.ix, entity.AxisHorizontal,
				entity.Point{}, entity.Size{Width: tt.extent, Height: 100},
				entity.Point{X: tt.pointer}, layout.DefaultMinWidth)

			assert.False(t, changed)
			assert.Equal(t, before, tt.flexes)
		})
	}
}

func TestComputeResize_AtMinimumCanStillGrow(t *testing.T) {
	flexes := []float64{0.2, 1.8} // 80px and 720px of 800

	changed := layout.ComputeResize(flexes, 0, entity.AxisHorizontal,
		entity.Point{}, entity.Size{Width: 800},
		entity.Point{X: 200}, layout.DefaultMinWidth)

	require.True(t, changed)
	assert.InDelta(t, 200, sizes(flexes, 800)[0], 1e-9)
}

func TestComputeResize_RandomDragsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const extent = 1200.0
	const minSize = layout.DefaultMinWidth

	for run := 0; run < 200; run++ {
		n := 2 + rng.Intn(5)
		flexes := make([]float64, n)
		for i := range flexes {
			flexes[i] = 1
		}

		for step := 0; step < 30; step++ {
			ix := rng.Intn(n - 1)
			start := 0.0
			for k := 0; k < ix; k++ {
				start += extent * flexes[k] / float64(n)
			}
			before := sum(flexes)
			pointer := (rng.Float64()*4 - 2) * 1e5

			layout.ComputeResize(flexes, ix, entity.AxisHorizontal,
				entity.Point{X: start}, entity.Size{Width: extent},
				entity.Point{X: pointer}, minSize)

			require.InDelta(t, before, sum(flexes), 1e-3)
			for k, s := range sizes(flexes, extent) {
				require.GreaterOrEqual(t, s, minSize-1e-6, "child %d below minimum", k)
			}
		}
	}
}
