package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var screen = entity.NewBounds(0, 0, 800, 600)

func twoPaneWorkspace(t *testing.T) *entity.Workspace {
	t.Helper()
	ws := entity.NewWorkspace("main", "left")
	require.NoError(t, ws.Center.Split("left", "right", entity.SplitRight))
	return ws
}

func TestEngine_LayoutSinglePane(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.Options{})
	ws := entity.NewWorkspace("main", "only")

	frame := engine.Layout(ws, screen)

	require.Len(t, frame.Panes, 1)
	assert.Equal(t, layout.PaneRegion{Pane: "only", Bounds: screen, Active: true}, frame.Panes[0])
	assert.Empty(t, frame.Handles)
	assert.Empty(t, frame.Dividers)
	assert.Nil(t, frame.Zoomed)
	assert.Same(t, frame, engine.Frame())
}

func TestEngine_LayoutTwoPanes(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)

	frame := engine.Layout(ws, screen)

	require.Len(t, frame.Panes, 2)
	assert.Equal(t, entity.NewBounds(0, 0, 400, 600), frame.Panes[0].Bounds)
	assert.Equal(t, entity.NewBounds(400, 0, 400, 600), frame.Panes[1].Bounds)
	assert.True(t, frame.Panes[0].Active)
	assert.False(t, frame.Panes[1].Active)

	require.Len(t, frame.Handles, 1)
	assert.Equal(t, entity.NewBounds(398, 0, 4, 600), frame.Handles[0].Bounds)
	assert.Equal(t, 0, frame.Handles[0].Index)
	require.Len(t, frame.Dividers, 1)
	assert.Equal(t, entity.NewBounds(400, 0, 1, 600), frame.Dividers[0])

	// Bounds are cached into the tree for hit testing.
	b, ok := ws.Center.BoundingBoxForPane("right")
	require.True(t, ok)
	assert.Equal(t, entity.NewBounds(400, 0, 400, 600), b)
	hit, ok := ws.Center.PaneAtPixelPosition(entity.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("left"), hit)
}

func TestEngine_LayoutNestedHandles(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	require.NoError(t, ws.Center.Split("right", "bottom", entity.SplitDown))

	frame := engine.Layout(ws, screen)

	require.Len(t, frame.Panes, 3)
	assert.Equal(t, entity.NewBounds(400, 0, 400, 300), frame.Panes[1].Bounds)
	assert.Equal(t, entity.NewBounds(400, 300, 400, 300), frame.Panes[2].Bounds)

	require.Len(t, frame.Handles, 2)
	nested, ok := frame.HandleAt(entity.Point{X: 600, Y: 299})
	require.True(t, ok)
	assert.Equal(t, entity.AxisVertical, nested.Axis.Axis)
	assert.Equal(t, entity.NewBounds(400, 0, 400, 600), nested.Container)
}

func TestEngine_DragScenario(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	engine.Layout(ws, screen)

	var changes int
	engine.SetOnFlexesChanged(func(*entity.PaneAxis) { changes++ })

	require.True(t, engine.PointerDown(entity.Point{X: 400, Y: 300}, 1))
	assert.True(t, engine.Dragging())
	require.True(t, engine.PointerMove(entity.Point{X: 500, Y: 300}))

	root := ws.Center.Root().(*entity.PaneAxis)
	assert.InDeltaSlice(t, []float64{1.25, 0.75}, root.Flexes(), 1e-9)
	assert.Equal(t, 1, changes)

	frame := engine.Layout(ws, screen)
	assert.Equal(t, 500.0, frame.Panes[0].Bounds.Size.Width)
	assert.Equal(t, 300.0, frame.Panes[1].Bounds.Size.Width)

	engine.PointerUp()
	assert.False(t, engine.Dragging())
	assert.False(t, engine.PointerMove(entity.Point{X: 100, Y: 300}), "moves after release are ignored")
	assert.InDeltaSlice(t, []float64{1.25, 0.75}, root.Flexes(), 1e-9)
}

func TestEngine_HugeDragRespectsMinimum(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	engine.Layout(ws, screen)

	require.True(t, engine.PointerDown(entity.Point{X: 401, Y: 10}, 1))
	engine.PointerMove(entity.Point{X: 1e9, Y: 10})

	root := ws.Center.Root().(*entity.PaneAxis)
	flexes := root.Flexes()
	assert.InDelta(t, 2.0, flexes[0]+flexes[1], 1e-3)

	frame := engine.Layout(ws, screen)
	assert.Equal(t, 720.0, frame.Panes[0].Bounds.Size.Width)
	assert.Equal(t, 80.0, frame.Panes[1].Bounds.Size.Width)
}

func TestEngine_DoubleClickResets(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	root := ws.Center.Root().(*entity.PaneAxis)
	root.UpdateFlexes(func(f []float64) bool {
		f[0], f[1] = 1.5, 0.5
		return true
	})
	engine.Layout(ws, screen)

	var reset *entity.PaneAxis
	engine.SetOnFlexesChanged(func(axis *entity.PaneAxis) { reset = axis })

	require.True(t, engine.PointerDown(entity.Point{X: 600, Y: 100}, 2))

	assert.Equal(t, []float64{1, 1}, root.Flexes())
	assert.Same(t, root, reset)
}

func TestEngine_PointerDownMisses(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())

	assert.False(t, engine.PointerDown(entity.Point{X: 1, Y: 1}, 1), "no frame yet")

	engine.Layout(twoPaneWorkspace(t), screen)
	assert.False(t, engine.PointerDown(entity.Point{X: 100, Y: 100}, 1))
	assert.False(t, engine.Dragging())
}

func TestEngine_ZoomedPaneBecomesPlaceholder(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	ws.ZoomedPaneID = "right"
	ws.ActivePaneID = "right"

	frame := engine.Layout(ws, screen)

	require.NotNil(t, frame.Zoomed)
	assert.Equal(t, layout.PaneRegion{Pane: "right", Bounds: screen, Active: true}, *frame.Zoomed)

	region, ok := frame.Region("right")
	require.True(t, ok)
	assert.True(t, region.Placeholder)
	region, ok = frame.Region("left")
	require.True(t, ok)
	assert.False(t, region.Placeholder)

	hit, ok := frame.PaneAt(entity.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("right"), hit)

	assert.False(t, engine.PointerDown(entity.Point{X: 400, Y: 300}, 1), "handles hidden under zoom")
}

func TestEngine_StaleZoomIgnored(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)
	ws.ZoomedPaneID = "gone"

	frame := engine.Layout(ws, screen)

	assert.Nil(t, frame.Zoomed)
	for _, r := range frame.Panes {
		assert.False(t, r.Placeholder)
	}
}

func TestEngine_SetOptionsAppliesOnNextLayout(t *testing.T) {
	engine := layout.NewEngine(testContext(), layout.DefaultOptions())
	ws := twoPaneWorkspace(t)

	engine.SetOptions(layout.Options{HandleSize: 10, DividerSize: 2})

	opts := engine.Options()
	assert.Equal(t, 10.0, opts.HandleSize)
	assert.Equal(t, layout.DefaultMinWidth, opts.MinWidth)

	frame := engine.Layout(ws, screen)
	require.Len(t, frame.Handles, 1)
	assert.Equal(t, entity.NewBounds(395, 0, 10, 600), frame.Handles[0].Bounds)
	assert.Equal(t, entity.NewBounds(400, 0, 2, 600), frame.Dividers[0])
}
