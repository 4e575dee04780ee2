package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
)

// DefaultProbeMargin is how far past the active pane's edge directional
// lookup probes for a neighbour. It matches the resize handle thickness so
// the probe always clears the shared boundary.
const DefaultProbeMargin = 4.0

// ErrNoActivePane is returned when an operation needs an active pane and the
// workspace has none that is part of its tree.
var ErrNoActivePane = errors.New("no active pane")

// ManagePanesUseCase handles pane tree operations on a workspace.
type ManagePanesUseCase struct {
	registry    port.PaneRegistry
	serializer  port.LayoutSerializer
	probeMargin float64
}

// NewManagePanesUseCase creates a new pane management use case.
// serializer may be nil when layouts are not persisted.
func NewManagePanesUseCase(registry port.PaneRegistry, serializer port.LayoutSerializer, probeMargin float64) *ManagePanesUseCase {
	if probeMargin <= 0 {
		probeMargin = DefaultProbeMargin
	}
	return &ManagePanesUseCase{
		registry:    registry,
		serializer:  serializer,
		probeMargin: probeMargin,
	}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Workspace *entity.Workspace
	// Target is the pane to split. Empty means the active pane.
	Target    entity.PaneID
	Direction entity.SplitDirection
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPane port.Pane
}

// SplitPane creates a new pane next to the target and focuses it.
func (uc *ManagePanesUseCase) SplitPane(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)

	ws := input.Workspace
	if ws == nil || ws.Center == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	target := input.Target
	if target == "" {
		target = ws.ActivePaneID
	}

	log.Debug().
		Str("direction", input.Direction.String()).
		Str("target_id", string(target)).
		Msg("splitting pane")

	if !ws.Center.Contains(target) {
		return nil, fmt.Errorf("split %s: %w", target, entity.ErrPaneNotFound)
	}

	newPane, err := uc.registry.NewPane(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pane: %w", err)
	}

	if err := ws.Center.Split(target, newPane.ID(), input.Direction); err != nil {
		uc.registry.Forget(newPane.ID())
		return nil, err
	}

	uc.focus(ctx, ws, newPane.ID())
	uc.serialize(ctx, ws)

	log.Info().
		Str("target_id", string(target)).
		Str("new_pane_id", string(newPane.ID())).
		Int("pane_count", ws.PaneCount()).
		Msg("pane split")

	return &SplitPaneOutput{NewPane: newPane}, nil
}

// RemovePane takes a pane out of the workspace. It returns false when the
// pane is the last one: the workspace itself must be closed instead.
// If the removed pane was active, focus moves to the last pane in tree order.
func (uc *ManagePanesUseCase) RemovePane(ctx context.Context, ws *entity.Workspace, id entity.PaneID) (bool, error) {
	log := logging.FromContext(ctx)
	if ws == nil || ws.Center == nil {
		return false, fmt.Errorf("workspace is required")
	}
	log.Debug().Str("pane_id", string(id)).Msg("removing pane")

	removed, err := ws.Center.Remove(id)
	if err != nil {
		return false, err
	}
	if !removed {
		log.Debug().Str("pane_id", string(id)).Msg("last pane in workspace, not removed")
		return false, nil
	}

	uc.registry.Forget(id)
	if ws.ZoomedPaneID == id {
		ws.ZoomedPaneID = ""
	}
	if ws.ActivePaneID == id {
		panes := ws.Center.Panes()
		uc.focus(ctx, ws, panes[len(panes)-1])
	}
	uc.serialize(ctx, ws)

	log.Info().
		Str("pane_id", string(id)).
		Str("active_pane_id", string(ws.ActivePaneID)).
		Msg("pane removed")

	return true, nil
}

// FindPaneInDirection returns the pane next to the active one.
//
// The probe starts at the last known cursor position when it lies inside the
// active pane, otherwise at the pane's center, and is pushed past the pane's
// edge in direction by the probe margin. Lookup uses the bounds cached by the
// most recent layout pass, so nothing is found before the first layout or
// when the probe leaves the workspace.
func (uc *ManagePanesUseCase) FindPaneInDirection(ctx context.Context, ws *entity.Workspace, direction entity.SplitDirection) (entity.PaneID, bool) {
	log := logging.FromContext(ctx)
	if ws == nil || ws.Center == nil {
		return "", false
	}

	box, ok := ws.Center.BoundingBoxForPane(ws.ActivePaneID)
	if !ok {
		log.Debug().Str("active", string(ws.ActivePaneID)).Msg("active pane has no cached bounds")
		return "", false
	}

	probe := box.Center()
	if ws.Cursor != nil && box.Contains(*ws.Cursor) {
		probe = *ws.Cursor
	}

	switch direction {
	case entity.SplitLeft:
		probe.X = box.Left() - uc.probeMargin
	case entity.SplitRight:
		probe.X = box.Right() + uc.probeMargin
	case entity.SplitUp:
		probe.Y = box.Top() - uc.probeMargin
	case entity.SplitDown:
		probe.Y = box.Bottom() + uc.probeMargin
	}

	target, found := ws.Center.PaneAtPixelPosition(probe)
	log.Debug().
		Str("direction", direction.String()).
		Float64("probe_x", probe.X).
		Float64("probe_y", probe.Y).
		Str("target", string(target)).
		Bool("found", found).
		Msg("directional lookup")

	return target, found
}

// ActivatePaneInDirection focuses the neighbour in direction, if any.
func (uc *ManagePanesUseCase) ActivatePaneInDirection(ctx context.Context, ws *entity.Workspace, direction entity.SplitDirection) bool {
	target, ok := uc.FindPaneInDirection(ctx, ws, direction)
	if !ok || target == ws.ActivePaneID {
		return false
	}
	uc.focus(ctx, ws, target)
	uc.serialize(ctx, ws)
	return true
}

// SwapPaneInDirection exchanges the active pane with its neighbour in
// direction. The active pane keeps focus and moves with the swap.
func (uc *ManagePanesUseCase) SwapPaneInDirection(ctx context.Context, ws *entity.Workspace, direction entity.SplitDirection) bool {
	log := logging.FromContext(ctx)

	target, ok := uc.FindPaneInDirection(ctx, ws, direction)
	if !ok || target == ws.ActivePaneID {
		return false
	}

	ws.Center.Swap(ws.ActivePaneID, target)
	uc.serialize(ctx, ws)

	log.Debug().
		Str("pane_id", string(ws.ActivePaneID)).
		Str("swapped_with", string(target)).
		Msg("panes swapped")
	return true
}

// ActivatePane focuses a pane of the workspace.
func (uc *ManagePanesUseCase) ActivatePane(ctx context.Context, ws *entity.Workspace, id entity.PaneID) error {
	if ws == nil || ws.Center == nil {
		return fmt.Errorf("workspace is required")
	}
	if !ws.Center.Contains(id) {
		return fmt.Errorf("activate %s: %w", id, entity.ErrPaneNotFound)
	}
	if ws.ActivePaneID == id {
		return nil
	}
	uc.focus(ctx, ws, id)
	uc.serialize(ctx, ws)
	return nil
}

// ActivateNextPane focuses the pane after the active one in tree order,
// wrapping around.
func (uc *ManagePanesUseCase) ActivateNextPane(ctx context.Context, ws *entity.Workspace) bool {
	return uc.cycle(ctx, ws, 1)
}

// ActivatePreviousPane focuses the pane before the active one in tree order,
// wrapping around.
func (uc *ManagePanesUseCase) ActivatePreviousPane(ctx context.Context, ws *entity.Workspace) bool {
	return uc.cycle(ctx, ws, -1)
}

func (uc *ManagePanesUseCase) cycle(ctx context.Context, ws *entity.Workspace, step int) bool {
	if ws == nil || ws.Center == nil {
		return false
	}
	panes := ws.Center.Panes()
	for i, id := range panes {
		if id != ws.ActivePaneID {
			continue
		}
		next := panes[(i+step+len(panes))%len(panes)]
		if next == id {
			return false
		}
		uc.focus(ctx, ws, next)
		uc.serialize(ctx, ws)
		return true
	}
	return false
}

// ActivatePaneAtIndex focuses the index-th pane in tree order. When there is
// no such pane and the active pane holds items, the active pane is split to
// the right instead and the new pane is returned.
func (uc *ManagePanesUseCase) ActivatePaneAtIndex(ctx context.Context, ws *entity.Workspace, index int) (entity.PaneID, error) {
	log := logging.FromContext(ctx)
	if ws == nil || ws.Center == nil {
		return "", fmt.Errorf("workspace is required")
	}

	panes := ws.Center.Panes()
	if index >= 0 && index < len(panes) {
		if err := uc.ActivatePane(ctx, ws, panes[index]); err != nil {
			return "", err
		}
		return panes[index], nil
	}

	active, ok := uc.registry.Pane(ws.ActivePaneID)
	if !ok || active.ItemCount() == 0 {
		log.Debug().Int("index", index).Msg("no pane at index and nothing to clone")
		return "", nil
	}

	out, err := uc.SplitPane(ctx, SplitPaneInput{Workspace: ws, Direction: entity.SplitRight})
	if err != nil {
		return "", err
	}
	return out.NewPane.ID(), nil
}

// ToggleZoom zooms the active pane, or unzooms it when it already is.
func (uc *ManagePanesUseCase) ToggleZoom(ctx context.Context, ws *entity.Workspace) (bool, error) {
	log := logging.FromContext(ctx)
	if ws == nil || ws.Center == nil {
		return false, fmt.Errorf("workspace is required")
	}
	if !ws.Center.Contains(ws.ActivePaneID) {
		return false, ErrNoActivePane
	}

	zoomed := !ws.IsZoomed(ws.ActivePaneID)
	if zoomed {
		uc.unzoom(ws)
		ws.ZoomedPaneID = ws.ActivePaneID
	} else {
		ws.ZoomedPaneID = ""
	}
	if pane, ok := uc.registry.Pane(ws.ActivePaneID); ok {
		pane.SetZoomed(zoomed)
	}
	uc.serialize(ctx, ws)

	log.Debug().
		Str("pane_id", string(ws.ActivePaneID)).
		Bool("zoomed", zoomed).
		Msg("zoom toggled")
	return zoomed, nil
}

// focus makes id the active pane. Focusing a pane other than the zoomed one
// dismisses the zoom.
func (uc *ManagePanesUseCase) focus(ctx context.Context, ws *entity.Workspace, id entity.PaneID) {
	if ws.ZoomedPaneID != "" && ws.ZoomedPaneID != id {
		uc.unzoom(ws)
	}
	ws.ActivePaneID = id
	if pane, ok := uc.registry.Pane(id); ok {
		pane.Focus()
	} else {
		logging.FromContext(ctx).Warn().Str("pane_id", string(id)).Msg("focused pane is not registered")
	}
}

func (uc *ManagePanesUseCase) unzoom(ws *entity.Workspace) {
	if ws.ZoomedPaneID == "" {
		return
	}
	if pane, ok := uc.registry.Pane(ws.ZoomedPaneID); ok {
		pane.SetZoomed(false)
	}
	ws.ZoomedPaneID = ""
}

func (uc *ManagePanesUseCase) serialize(ctx context.Context, ws *entity.Workspace) {
	if uc.serializer != nil {
		uc.serializer.SerializeLayout(ctx, ws)
	}
}
