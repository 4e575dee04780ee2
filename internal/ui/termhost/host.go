package termhost

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

const (
	DefaultCellWidth   = 8
	DefaultCellHeight  = 16
	DefaultDoubleClick = 400 * time.Millisecond
)

// Config wires a Host.
type Config struct {
	Screen   tcell.Screen
	Engine   *layout.Engine
	Panes    *usecase.ManagePanesUseCase
	Registry *Registry
	// Serializer receives the workspace after every resize step. Optional.
	Serializer port.LayoutSerializer
	Workspace  *entity.Workspace

	// CellWidth and CellHeight give the pixel size of one terminal cell.
	CellWidth   int
	CellHeight  int
	Mouse       bool
	DoubleClick time.Duration
	Now         func() time.Time
}

// Host drives one workspace on a tcell screen. The last screen row is a
// status bar; the rest is the layout container, measured in pixels of
// CellWidth x CellHeight per cell.
//
// Host is not safe for concurrent use. Run owns it once started.
type Host struct {
	screen     tcell.Screen
	engine     *layout.Engine
	panes      *usecase.ManagePanesUseCase
	registry   *Registry
	serializer port.LayoutSerializer
	ws         *entity.Workspace

	cellW       float64
	cellH       float64
	mouse       bool
	doubleClick time.Duration
	now         func() time.Time

	ctx    context.Context
	logger zerolog.Logger

	paneMode bool
	status   string

	buttons    tcell.ButtonMask
	lastClick  time.Time
	lastClickX int
	lastClickY int
	clicks     int
}

// NewHost creates a host. The engine's flex callback is taken over by the
// host to persist resizes.
func NewHost(ctx context.Context, cfg Config) (*Host, error) {
	switch {
	case cfg.Screen == nil:
		return nil, errors.New("termhost: screen is required")
	case cfg.Engine == nil:
		return nil, errors.New("termhost: layout engine is required")
	case cfg.Panes == nil:
		return nil, errors.New("termhost: pane use case is required")
	case cfg.Registry == nil:
		return nil, errors.New("termhost: pane registry is required")
	case cfg.Workspace == nil || cfg.Workspace.Center == nil:
		return nil, errors.New("termhost: workspace is required")
	}

	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = DefaultCellHeight
	}
	if cfg.DoubleClick <= 0 {
		cfg.DoubleClick = DefaultDoubleClick
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	h := &Host{
		screen:      cfg.Screen,
		engine:      cfg.Engine,
		panes:       cfg.Panes,
		registry:    cfg.Registry,
		serializer:  cfg.Serializer,
		ws:          cfg.Workspace,
		cellW:       float64(cfg.CellWidth),
		cellH:       float64(cfg.CellHeight),
		mouse:       cfg.Mouse,
		doubleClick: cfg.DoubleClick,
		now:         cfg.Now,
		ctx:         ctx,
		logger:      logging.FromContext(ctx).With().Str("component", "termhost").Logger(),
	}
	cfg.Engine.SetOnFlexesChanged(func(*entity.PaneAxis) {
		h.serialize()
	})

	if p, ok := h.registry.Lookup(h.ws.ActivePaneID); ok {
		p.Focus()
	}
	return h, nil
}

// Workspace returns the hosted workspace.
func (h *Host) Workspace() *entity.Workspace {
	return h.ws
}

// Run renders the workspace and processes screen events until the user
// quits or ctx is cancelled. The caller owns screen Init and Fini.
func (h *Host) Run(ctx context.Context) error {
	h.ctx = ctx
	if h.mouse {
		h.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	h.Render()

	stop := context.AfterFunc(ctx, func() {
		if err := h.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			h.logger.Debug().Err(err).Msg("failed to post interrupt")
		}
	})
	defer stop()

	h.logger.Info().
		Str("workspace_id", string(h.ws.ID)).
		Int("panes", h.ws.PaneCount()).
		Msg("terminal host started")

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			h.logger.Debug().Msg("terminal host cancelled")
			return nil
		}
		if h.HandleEvent(ev) {
			h.logger.Info().Msg("quit requested")
			return nil
		}
	}
}

// Post queues fn to run on the event loop, followed by a redraw. Other
// goroutines use it to touch the engine or the workspace.
func (h *Host) Post(fn func()) error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// HandleEvent applies one screen event and redraws. It reports whether the
// user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		if h.handleKey(ev) {
			return true
		}
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventInterrupt:
		fn, ok := ev.Data().(func())
		if !ok {
			return false
		}
		fn()
	default:
		return false
	}
	h.Render()
	return false
}

// container is the layout area in pixels, excluding the status row.
func (h *Host) container() entity.Bounds {
	cols, rows := h.screen.Size()
	rows = max(rows-1, 0)
	return entity.NewBounds(0, 0, float64(cols)*h.cellW, float64(rows)*h.cellH)
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	buttons := ev.Buttons()
	down := buttons&tcell.Button1 != 0
	wasDown := h.buttons&tcell.Button1 != 0
	h.buttons = buttons

	edge := entity.Point{X: float64(cx) * h.cellW, Y: float64(cy) * h.cellH}
	center := entity.Point{X: edge.X + h.cellW/2, Y: edge.Y + h.cellH/2}
	if h.container().Contains(center) {
		h.ws.Cursor = &center
	}

	switch {
	case down && !wasDown:
		h.press(cx, cy, center)
	case down && wasDown:
		// Moves report the cell's leading edge so boundaries land on cell
		// boundaries.
		if h.engine.Dragging() {
			h.engine.PointerMove(edge)
		}
	case !down && wasDown:
		h.engine.PointerUp()
	}
}

func (h *Host) press(cx, cy int, center entity.Point) {
	clicks := h.countClick(cx, cy)
	if p, ok := h.handlePoint(cx, cy, center); ok && h.engine.PointerDown(p, clicks) {
		return
	}

	id, ok := h.engine.Frame().PaneAt(center)
	if !ok || id == h.ws.ActivePaneID {
		return
	}
	if err := h.panes.ActivatePane(h.ctx, h.ws, id); err != nil {
		h.logger.Warn().Err(err).Str("pane_id", string(id)).Msg("click focus failed")
	}
}

// handlePoint maps a press on cell (cx, cy) onto a resize handle. A handle is
// thinner than a cell, so any handle overlapping the cell counts, and the
// press is moved onto the handle's centre line.
func (h *Host) handlePoint(cx, cy int, center entity.Point) (entity.Point, bool) {
	frame := h.engine.Frame()
	if frame == nil || frame.Zoomed != nil {
		return entity.Point{}, false
	}
	cell := entity.NewBounds(float64(cx)*h.cellW, float64(cy)*h.cellH, h.cellW, h.cellH)
	for i := len(frame.Handles) - 1; i >= 0; i-- {
		handle := frame.Handles[i]
		if !overlaps(handle.Bounds, cell) {
			continue
		}
		p := center
		if handle.Axis.Axis == entity.AxisVertical {
			p.Y = handle.Bounds.Center().Y
		} else {
			p.X = handle.Bounds.Center().X
		}
		return p, true
	}
	return entity.Point{}, false
}

func (h *Host) countClick(cx, cy int) int {
	now := h.now()
	if h.clicks > 0 && cx == h.lastClickX && cy == h.lastClickY && now.Sub(h.lastClick) <= h.doubleClick {
		h.clicks++
	} else {
		h.clicks = 1
	}
	h.lastClick = now
	h.lastClickX, h.lastClickY = cx, cy
	return h.clicks
}

func (h *Host) serialize() {
	if h.serializer != nil {
		h.serializer.SerializeLayout(h.ctx, h.ws)
	}
}

func overlaps(a, b entity.Bounds) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// cellRect converts pixel bounds to the cell rectangle [x0,x1)x[y0,y1).
func (h *Host) cellRect(b entity.Bounds) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(b.Left() / h.cellW))
	y0 = int(math.Round(b.Top() / h.cellH))
	x1 = int(math.Round(b.Right() / h.cellW))
	y1 = int(math.Round(b.Bottom() / h.cellH))
	return x0, y0, x1, y1
}
