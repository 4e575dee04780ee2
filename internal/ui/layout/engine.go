// Package layout turns a pane tree into rectangles and turns pointer events on
// the boundaries between panes into flex changes.
package layout

import (
	"context"
	"sync"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
	"github.com/rs/zerolog"
)

// Engine lays out workspaces and drives interactive resizing.
//
// Layout caches every axis's child rectangles into the axis itself, which is
// what hit testing and directional lookup read afterwards. The engine keeps
// the most recent Frame so pointer events can find the handle under the
// pointer. At most one handle is captured at a time; it is released on
// PointerUp wherever the pointer is.
type Engine struct {
	opts   Options
	logger zerolog.Logger

	mu      sync.Mutex
	frame   *Frame
	dragged *Handle

	onFlexesChanged func(axis *entity.PaneAxis)
}

// NewEngine creates a layout engine. Zero option fields take defaults.
func NewEngine(ctx context.Context, opts Options) *Engine {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating layout engine")

	return &Engine{
		opts:   opts.withDefaults(),
		logger: log.With().Str("component", "layout-engine").Logger(),
	}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions replaces the geometry. Zero fields take defaults. Call it from
// the goroutine that runs Layout and the pointer methods; the new values
// apply from the next layout pass.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts.withDefaults()
	e.logger.Debug().
		Float64("min_width", e.opts.MinWidth).
		Float64("min_height", e.opts.MinHeight).
		Msg("layout options updated")
}

// SetOnFlexesChanged registers the callback run after every resize step and
// double-click reset. It runs on the caller's goroutine without engine locks.
func (e *Engine) SetOnFlexesChanged(fn func(axis *entity.PaneAxis)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onFlexesChanged = fn
}

// Frame returns the most recent layout result, or nil before the first pass.
func (e *Engine) Frame() *Frame {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.frame
}

// Dragging reports whether a handle is captured.
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dragged != nil
}

// Layout runs one layout pass of ws inside container.
func (e *Engine) Layout(ws *entity.Workspace, container entity.Bounds) *Frame {
	frame := &Frame{Container: container}
	if ws == nil || ws.Center == nil {
		e.setFrame(frame)
		return frame
	}

	zoomed := entity.PaneID("")
	if ws.ZoomedPaneID != "" && ws.Center.Contains(ws.ZoomedPaneID) {
		zoomed = ws.ZoomedPaneID
		frame.Zoomed = &PaneRegion{
			Pane:   zoomed,
			Bounds: container,
			Active: ws.ActivePaneID == zoomed,
		}
	}

	e.layoutMember(frame, ws.Center.Root(), container, ws.ActivePaneID, zoomed)
	e.setFrame(frame)

	e.logger.Trace().
		Int("panes", len(frame.Panes)).
		Int("handles", len(frame.Handles)).
		Float64("width", container.Size.Width).
		Float64("height", container.Size.Height).
		Msg("layout pass")

	return frame
}

func (e *Engine) setFrame(frame *Frame) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.frame = frame
}

func (e *Engine) layoutMember(frame *Frame, m entity.Member, bounds entity.Bounds, active, zoomed entity.PaneID) {
	switch m := m.(type) {
	case entity.Leaf:
		frame.Panes = append(frame.Panes, PaneRegion{
			Pane:        m.Pane,
			Bounds:      bounds,
			Placeholder: m.Pane == zoomed,
			Active:      m.Pane == active,
		})
	case *entity.PaneAxis:
		e.layoutAxis(frame, m, bounds, active, zoomed)
	}
}

func (e *Engine) layoutAxis(frame *Frame, axis *entity.PaneAxis, container entity.Bounds, active, zoomed entity.PaneID) {
	children := ChildBounds(container, axis.Axis, axis.Flexes())
	axis.CacheBounds(children)

	last := len(axis.Members) - 1
	for i, member := range axis.Members {
		if i >= len(children) {
			break
		}
		if i < last {
			frame.Handles = append(frame.Handles, Handle{
				Axis:      axis,
				Index:     i,
				Bounds:    handleBounds(axis.Axis, children[i], e.opts.HandleSize),
				Container: container,
			})
			frame.Dividers = append(frame.Dividers, dividerBounds(axis.Axis, children[i], e.opts.DividerSize))
		}
		e.layoutMember(frame, member, children[i], active, zoomed)
	}
}

// PointerDown captures the handle under p. With clicks >= 2 the handle's axis
// is reset to uniform flexes instead. It reports whether a handle was hit.
func (e *Engine) PointerDown(p entity.Point, clicks int) bool {
	e.mu.Lock()
	handle, ok := e.frame.HandleAt(p)
	if !ok {
		e.mu.Unlock()
		return false
	}
	e.dragged = &handle
	cb := e.onFlexesChanged
	e.mu.Unlock()

	e.logger.Debug().
		Int("handle", handle.Index).
		Str("axis", handle.Axis.Axis.String()).
		Int("clicks", clicks).
		Msg("handle captured")

	if clicks >= 2 {
		handle.Axis.ResetFlexes()
		e.logger.Debug().Int("handle", handle.Index).Msg("flexes reset")
		if cb != nil {
			cb(handle.Axis)
		}
	}
	return true
}

// PointerMove resizes the captured handle's axis so the boundary follows p.
// It reports whether any flex changed.
func (e *Engine) PointerMove(p entity.Point) bool {
	e.mu.Lock()
	if e.dragged == nil {
		e.mu.Unlock()
		return false
	}
	handle := *e.dragged
	cb := e.onFlexesChanged
	e.mu.Unlock()

	child, ok := handle.Axis.BoundsAt(handle.Index)
	if !ok {
		return false
	}

	minSize := e.opts.MinSize(handle.Axis.Axis)
	changed := handle.Axis.UpdateFlexes(func(flexes []float64) bool {
		return ComputeResize(flexes, handle.Index, handle.Axis.Axis, child.Origin, handle.Container.Size, p, minSize)
	})
	if !changed {
		return false
	}

	e.logger.Trace().
		Int("handle", handle.Index).
		Float64("x", p.X).
		Float64("y", p.Y).
		Msg("resize step")

	if cb != nil {
		cb(handle.Axis)
	}
	return true
}

// PointerUp releases any captured handle.
func (e *Engine) PointerUp() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dragged != nil {
		e.logger.Debug().Int("handle", e.dragged.Index).Msg("handle released")
	}
	e.dragged = nil
}
