// Package repository declares persistence interfaces for domain entities.
package repository

//go:generate mockgen -destination=mocks/mock_layout.go -package=mocks . LayoutRepository

import (
	"context"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

// LayoutSummary describes a stored layout without its tree.
type LayoutSummary struct {
	WorkspaceID entity.WorkspaceID
	PaneCount   int
	SizeBytes   int64
	UpdatedAt   int64 // unix seconds
}

// LayoutRepository persists layout snapshots keyed by workspace.
type LayoutRepository interface {
	// Save inserts or replaces the snapshot of a workspace.
	Save(ctx context.Context, snap *entity.LayoutSnapshot) error

	// Get returns the stored snapshot, or nil when none exists.
	Get(ctx context.Context, id entity.WorkspaceID) (*entity.LayoutSnapshot, error)

	// List returns a summary of every stored layout, most recent first.
	List(ctx context.Context) ([]LayoutSummary, error)

	// Delete removes a workspace's snapshot. Deleting a missing one is not an error.
	Delete(ctx context.Context, id entity.WorkspaceID) error
}
