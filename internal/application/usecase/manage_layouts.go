package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	"github.com/bnema/splitgrid/internal/logging"
)

// ErrLayoutNotFound is returned when no layout is stored for a workspace.
var ErrLayoutNotFound = errors.New("layout not found")

// ManageLayoutsUseCase lists, restores and deletes saved layouts.
type ManageLayoutsUseCase struct {
	repo repository.LayoutRepository
}

// NewManageLayoutsUseCase creates a new ManageLayoutsUseCase.
func NewManageLayoutsUseCase(repo repository.LayoutRepository) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{repo: repo}
}

// List returns a summary of every saved layout.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]repository.LayoutSummary, error) {
	summaries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return summaries, nil
}

// Get returns the saved snapshot of a workspace.
func (uc *ManageLayoutsUseCase) Get(ctx context.Context, id entity.WorkspaceID) (*entity.LayoutSnapshot, error) {
	snap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrLayoutNotFound)
	}
	return snap, nil
}

// Delete removes the saved layout of a workspace.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, id entity.WorkspaceID) error {
	log := logging.FromContext(ctx)

	snap, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}

	log.Info().
		Str("workspace_id", string(id)).
		Int("panes", snap.CountPanes()).
		Msg("layout deleted")
	return nil
}

// RestoreInput contains parameters for restoring a workspace.
type RestoreInput struct {
	WorkspaceID entity.WorkspaceID
	Registry    port.PaneRegistry
}

// Restore rebuilds a workspace from its saved layout and registers its panes
// with the host. Without a saved layout it starts a workspace with one new
// pane. A zoomed pane is zoomed again.
func (uc *ManageLayoutsUseCase) Restore(ctx context.Context, input RestoreInput) (*entity.Workspace, error) {
	log := logging.FromContext(ctx)
	if input.Registry == nil {
		return nil, fmt.Errorf("pane registry is required")
	}

	snap, err := uc.repo.Get(ctx, input.WorkspaceID)
	if err != nil {
		log.Warn().Err(err).Str("workspace_id", string(input.WorkspaceID)).Msg("failed to load layout, starting fresh")
		snap = nil
	}

	if snap != nil {
		ws, err := entity.RestoreWorkspace(snap)
		if err == nil {
			if err := uc.registerPanes(ctx, ws, input.Registry); err != nil {
				return nil, err
			}
			log.Info().
				Str("workspace_id", string(ws.ID)).
				Int("panes", ws.PaneCount()).
				Msg("layout restored")
			return ws, nil
		}
		log.Warn().Err(err).Str("workspace_id", string(input.WorkspaceID)).Msg("discarding unusable layout")
	}

	pane, err := input.Registry.NewPane(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pane: %w", err)
	}
	pane.Focus()
	return entity.NewWorkspace(input.WorkspaceID, pane.ID()), nil
}

func (uc *ManageLayoutsUseCase) registerPanes(ctx context.Context, ws *entity.Workspace, registry port.PaneRegistry) error {
	for _, id := range ws.AllPanes() {
		pane, err := registry.RestorePane(ctx, id)
		if err != nil {
			for _, done := range ws.AllPanes() {
				if done == id {
					break
				}
				registry.Forget(done)
			}
			return fmt.Errorf("failed to restore pane %s: %w", id, err)
		}
		if id == ws.ZoomedPaneID {
			pane.SetZoomed(true)
		}
		if id == ws.ActivePaneID {
			pane.Focus()
		}
	}
	return nil
}
