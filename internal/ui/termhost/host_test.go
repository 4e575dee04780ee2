package termhost

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/application/port/mocks"
	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

const (
	testCols = 100
	testRows = 38
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	host     *Host
	screen   tcell.SimulationScreen
	registry *Registry
	ws       *entity.Workspace
	clock    *fakeClock
	saves    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := testCtx()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(testCols, testRows)
	t.Cleanup(screen.Fini)

	registry := NewRegistry()
	first, err := registry.NewPane(ctx)
	require.NoError(t, err)
	ws := entity.NewWorkspace("test", first.ID())

	f := &fixture{
		screen:   screen,
		registry: registry,
		ws:       ws,
		clock:    &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	serializer := mocks.NewMockLayoutSerializer(t)
	serializer.EXPECT().SerializeLayout(mock.Anything, ws).
		Run(func(context.Context, *entity.Workspace) { f.saves++ }).
		Return().Maybe()

	f.host, err = NewHost(ctx, Config{
		Screen:     screen,
		Engine:     layout.NewEngine(ctx, layout.DefaultOptions()),
		Panes:      usecase.NewManagePanesUseCase(registry, nil, 0),
		Registry:   registry,
		Serializer: serializer,
		Workspace:  ws,
		Mouse:      true,
		Now:        f.clock.Now,
	})
	require.NoError(t, err)
	f.host.Render()
	return f
}

func (f *fixture) key(k tcell.Key) bool {
	return f.host.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (f *fixture) runes(s string) {
	for _, r := range s {
		f.host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (f *fixture) paneCmd(s string) {
	f.key(tcell.KeyCtrlP)
	f.runes(s)
	f.key(tcell.KeyEsc)
}

func (f *fixture) mouse(x, y int, buttons tcell.ButtonMask) {
	f.host.HandleEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func (f *fixture) click(x, y int) {
	f.mouse(x, y, tcell.Button1)
	f.mouse(x, y, tcell.ButtonNone)
}

func (f *fixture) line(y int) string {
	runes := make([]rune, 0, testCols)
	for x := 0; x < testCols; x++ {
		ch, _, _, _ := f.screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
	}
	return strings.TrimRight(string(runes), " ")
}

func (f *fixture) rootFlexes(t *testing.T) []float64 {
	t.Helper()
	root, ok := f.ws.Center.Root().(*entity.PaneAxis)
	require.True(t, ok, "root should be an axis")
	return root.Flexes()
}

func TestNewHost_RequiresDependencies(t *testing.T) {
	_, err := NewHost(testCtx(), Config{})
	require.Error(t, err)
}

func TestHost_RendersSinglePane(t *testing.T) {
	f := newFixture(t)

	ch, _, _, _ := f.screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, ch)
	ch, _, _, _ = f.screen.GetContent(testCols-1, testRows-2)
	assert.Equal(t, tcell.RuneLRCorner, ch)

	assert.Contains(t, f.line(0), "pane-1")
	status := f.line(testRows - 1)
	assert.Contains(t, status, "NORMAL")
	assert.Contains(t, status, "1 panes")

	p, ok := f.registry.Lookup("pane-1")
	require.True(t, ok)
	assert.True(t, p.HasFocus())
}

func TestHost_SplitFromPaneMode(t *testing.T) {
	f := newFixture(t)

	f.key(tcell.KeyCtrlP)
	assert.Contains(t, f.line(testRows-1), "PANE")
	f.runes("r")

	assert.Equal(t, 2, f.ws.PaneCount())
	assert.Equal(t, entity.PaneID("pane-2"), f.ws.ActivePaneID)

	top := f.line(0)
	assert.Contains(t, top, "pane-1")
	assert.Contains(t, top, "pane-2")
	ch, _, _, _ := f.screen.GetContent(49, 0)
	assert.Equal(t, tcell.RuneURCorner, ch)
	ch, _, _, _ = f.screen.GetContent(50, 0)
	assert.Equal(t, tcell.RuneVLine, ch)

	f.key(tcell.KeyEsc)
	assert.Contains(t, f.line(testRows-1), "NORMAL")
}

func TestHost_DrawsDividersAtConfiguredThickness(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	ch, _, _, _ := f.screen.GetContent(50, 20)
	assert.Equal(t, tcell.RuneVLine, ch)
	ch, _, _, _ = f.screen.GetContent(51, 20)
	assert.NotEqual(t, tcell.RuneVLine, ch)

	// 16px is two cells wide.
	f.host.engine.SetOptions(layout.Options{DividerSize: 16})
	f.host.Render()
	for _, x := range []int{50, 51} {
		ch, _, _, _ = f.screen.GetContent(x, 20)
		assert.Equal(t, tcell.RuneVLine, ch, "column %d", x)
	}
	ch, _, _, _ = f.screen.GetContent(52, 20)
	assert.NotEqual(t, tcell.RuneVLine, ch)
}

func TestHost_StackedPanesGetHorizontalDivider(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("d")
	require.Equal(t, 2, f.ws.PaneCount())

	f.host.engine.SetOptions(layout.Options{DividerSize: 32})
	f.host.Render()

	frame := f.host.engine.Layout(f.ws, f.host.container())
	require.Len(t, frame.Dividers, 1)
	_, y0, _, y1 := f.host.cellRect(frame.Dividers[0])
	require.Equal(t, 2, y1-y0)
	for y := y0; y < y1; y++ {
		ch, _, _, _ := f.screen.GetContent(20, y)
		assert.Equal(t, tcell.RuneHLine, ch, "row %d", y)
	}
}

func TestHost_DragResizesAdjacentPanes(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.mouse(49, 10, tcell.Button1)
	require.True(t, f.host.engine.Dragging())

	f.mouse(60, 10, tcell.Button1)
	f.mouse(60, 10, tcell.ButtonNone)
	assert.False(t, f.host.engine.Dragging())

	flexes := f.rootFlexes(t)
	assert.InDelta(t, 1.2, flexes[0], 1e-9)
	assert.InDelta(t, 0.8, flexes[1], 1e-9)
	assert.Positive(t, f.saves)

	ch, _, _, _ := f.screen.GetContent(59, 0)
	assert.Equal(t, tcell.RuneURCorner, ch)
	ch, _, _, _ = f.screen.GetContent(60, 0)
	assert.Equal(t, tcell.RuneVLine, ch)
	// Pressing on a handle does not move focus.
	assert.Equal(t, entity.PaneID("pane-2"), f.ws.ActivePaneID)
}

func TestHost_DoubleClickResetsFlexes(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.mouse(49, 10, tcell.Button1)
	f.mouse(60, 10, tcell.Button1)
	f.mouse(60, 10, tcell.ButtonNone)
	require.InDelta(t, 1.2, f.rootFlexes(t)[0], 1e-9)

	f.clock.Advance(time.Second)
	f.click(60, 10)
	f.clock.Advance(100 * time.Millisecond)
	f.click(60, 10)

	assert.Equal(t, []float64{1, 1}, f.rootFlexes(t))
}

func TestHost_SlowClicksDoNotReset(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.mouse(49, 10, tcell.Button1)
	f.mouse(60, 10, tcell.Button1)
	f.mouse(60, 10, tcell.ButtonNone)

	f.clock.Advance(time.Second)
	f.click(60, 10)
	f.clock.Advance(time.Second)
	f.click(60, 10)

	assert.InDelta(t, 1.2, f.rootFlexes(t)[0], 1e-9)
}

func TestHost_ClickFocusesPane(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")
	require.Equal(t, entity.PaneID("pane-2"), f.ws.ActivePaneID)

	f.click(10, 10)

	assert.Equal(t, entity.PaneID("pane-1"), f.ws.ActivePaneID)
	focused, ok := f.registry.Focused()
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("pane-1"), focused.ID())
	require.NotNil(t, f.ws.Cursor)
	assert.Equal(t, entity.Point{X: 84, Y: 168}, *f.ws.Cursor)
}

func TestHost_DirectionalFocusAndSwap(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.key(tcell.KeyCtrlP)
	f.runes("h")
	assert.Equal(t, entity.PaneID("pane-1"), f.ws.ActivePaneID)

	f.runes("h")
	assert.Contains(t, f.line(testRows-1), "no pane left")

	f.runes("L")
	assert.Equal(t, []entity.PaneID{"pane-2", "pane-1"}, f.ws.AllPanes())
	assert.Equal(t, entity.PaneID("pane-1"), f.ws.ActivePaneID)

	f.key(tcell.KeyLeft)
	assert.Equal(t, entity.PaneID("pane-2"), f.ws.ActivePaneID)
}

func TestHost_ZoomCoversContainer(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("rz")

	assert.Equal(t, entity.PaneID("pane-2"), f.ws.ZoomedPaneID)
	top := f.line(0)
	assert.Contains(t, top, "pane-2 [zoom]")
	assert.NotContains(t, top, "pane-1")
	ch, _, _, _ := f.screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, ch)

	// Handles are hidden behind the zoomed pane.
	f.mouse(49, 10, tcell.Button1)
	assert.False(t, f.host.engine.Dragging())
	f.mouse(49, 10, tcell.ButtonNone)

	f.paneCmd("z")
	assert.Empty(t, f.ws.ZoomedPaneID)
	assert.Contains(t, f.line(0), "pane-1")
}

func TestHost_CloseActivePane(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.paneCmd("x")
	assert.Equal(t, 1, f.ws.PaneCount())
	assert.Equal(t, 1, f.registry.Len())
	assert.Equal(t, entity.PaneID("pane-1"), f.ws.ActivePaneID)

	f.key(tcell.KeyCtrlP)
	f.runes("x")
	assert.Equal(t, 1, f.ws.PaneCount())
	assert.Contains(t, f.line(testRows-1), "cannot close the last pane")
}

func TestHost_TypingCommitsItems(t *testing.T) {
	f := newFixture(t)

	f.runes("hi")
	f.key(tcell.KeyBackspace2)
	f.runes("ey")
	f.key(tcell.KeyEnter)

	p, ok := f.registry.Lookup("pane-1")
	require.True(t, ok)
	assert.Equal(t, 1, p.ItemCount())
	assert.Contains(t, f.line(1), "hey")
	assert.Contains(t, f.line(2), "_")
}

func TestHost_IndexKeys(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.key(tcell.KeyCtrlP)
	f.runes("1")
	assert.Equal(t, entity.PaneID("pane-1"), f.ws.ActivePaneID)

	// Nothing to clone into a new pane yet.
	f.runes("5")
	assert.Equal(t, 2, f.ws.PaneCount())
	assert.Contains(t, f.line(testRows-1), "no pane 5")
	f.key(tcell.KeyEsc)

	f.runes("item")
	f.key(tcell.KeyEnter)
	f.paneCmd("5")
	assert.Equal(t, 3, f.ws.PaneCount())
	assert.Equal(t, entity.PaneID("pane-3"), f.ws.ActivePaneID)
}

func TestHost_EqualizeResetsEveryAxis(t *testing.T) {
	f := newFixture(t)
	f.paneCmd("r")

	f.mouse(49, 10, tcell.Button1)
	f.mouse(60, 10, tcell.Button1)
	f.mouse(60, 10, tcell.ButtonNone)
	saves := f.saves

	f.paneCmd("=")
	assert.Equal(t, []float64{1, 1}, f.rootFlexes(t))
	assert.Greater(t, f.saves, saves)
}

func TestHost_QuitKey(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.key(tcell.KeyCtrlQ))

	f.key(tcell.KeyCtrlP)
	assert.True(t, f.key(tcell.KeyCtrlQ))
}

func TestHost_RunStops(t *testing.T) {
	t.Run("on quit key", func(t *testing.T) {
		f := newFixture(t)
		done := make(chan error, 1)
		go func() { done <- f.host.Run(testCtx()) }()

		f.screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("host did not quit")
		}
	})

	t.Run("on context cancel", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(testCtx())
		done := make(chan error, 1)
		go func() { done <- f.host.Run(ctx) }()

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("host did not stop")
		}
	})
}

func TestHost_PostRunsOnEventLoop(t *testing.T) {
	f := newFixture(t)
	ran := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- f.host.Run(testCtx()) }()

	require.NoError(t, f.host.Post(func() {
		f.host.engine.SetOptions(layout.Options{HandleSize: 12})
		close(ran)
	}))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("posted func did not run")
	}
	assert.Equal(t, 12.0, f.host.engine.Options().HandleSize)

	f.screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	require.NoError(t, <-done)
}
