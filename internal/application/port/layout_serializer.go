package port

import (
	"context"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

// LayoutSerializer is notified after every change to a workspace's layout:
// split, remove, swap, zoom, each resize step and each flex reset.
// Implementations must not block; they are called on the UI goroutine.
type LayoutSerializer interface {
	SerializeLayout(ctx context.Context, ws *entity.Workspace)
}
