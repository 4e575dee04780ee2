package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

func uniform(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = 1
	}
	return f
}

func TestChildBounds_TilesContainer(t *testing.T) {
	containers := []entity.Bounds{
		entity.NewBounds(0, 0, 800, 600),
		entity.NewBounds(13, 7, 101, 37),
		entity.NewBounds(0, 0, 0, 0),
		entity.NewBounds(5, 5, 3, 3),
	}

	for _, container := range containers {
		for _, axis := range []entity.Axis{entity.AxisHorizontal, entity.AxisVertical} {
			for _, n := range []int{1, 2, 3, 5} {
				name := fmt.Sprintf("%vx%v/%s/%d", container.Size.Width, container.Size.Height, axis, n)
				t.Run(name, func(t *testing.T) {
					children := layout.ChildBounds(container, axis, uniform(n))
					require.Len(t, children, n)

					next := container.Origin.Along(axis)
					total := 0.0
					for _, child := range children {
						assert.Equal(t, next, child.Origin.Along(axis), "no gap or overlap")
						assert.Equal(t, container.Size.Along(axis.Invert()), child.Size.Along(axis.Invert()))
						assert.Equal(t, container.Origin.Along(axis.Invert()), child.Origin.Along(axis.Invert()))
						assert.GreaterOrEqual(t, child.Size.Along(axis), 0.0)
						next += child.Size.Along(axis)
						total += child.Size.Along(axis)
					}
					assert.Equal(t, container.Size.Along(axis), total)
				})
			}
		}
	}
}

func TestChildBounds_EqualHalves(t *testing.T) {
	children := layout.ChildBounds(entity.NewBounds(0, 0, 800, 600), entity.AxisHorizontal, []float64{1, 1})

	assert.Equal(t, []entity.Bounds{
		entity.NewBounds(0, 0, 400, 600),
		entity.NewBounds(400, 0, 400, 600),
	}, children)
}

func TestChildBounds_WeightedAndRounded(t *testing.T) {
	children := layout.ChildBounds(entity.NewBounds(0, 0, 800, 600), entity.AxisHorizontal, []float64{1.25, 0.75})
	assert.Equal(t, 500.0, children[0].Size.Width)
	assert.Equal(t, 300.0, children[1].Size.Width)

	children = layout.ChildBounds(entity.NewBounds(0, 0, 100, 90), entity.AxisVertical, uniform(3))
	heights := []float64{children[0].Size.Height, children[1].Size.Height, children[2].Size.Height}
	assert.Equal(t, []float64{30, 30, 30}, heights)

	children = layout.ChildBounds(entity.NewBounds(0, 0, 100, 10), entity.AxisHorizontal, uniform(3))
	for _, c := range children {
		assert.Equal(t, c.Size.Width, float64(int(c.Size.Width)), "whole pixels")
	}
}

func TestChildBounds_DegenerateInputs(t *testing.T) {
	assert.Nil(t, layout.ChildBounds(entity.NewBounds(0, 0, 10, 10), entity.AxisHorizontal, nil))

	children := layout.ChildBounds(entity.NewBounds(0, 0, -50, 20), entity.AxisHorizontal, uniform(2))
	for _, c := range children {
		assert.Zero(t, c.Size.Width)
	}

	children = layout.ChildBounds(entity.NewBounds(0, 0, 100, 20), entity.AxisHorizontal, []float64{0, 0})
	assert.Equal(t, 50.0, children[0].Size.Width)
	assert.Equal(t, 50.0, children[1].Size.Width)
}
