package port

import (
	"context"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

// Pane is a content pane owned by the host. The layout tree only stores its
// ID; everything else is reached through this interface.
type Pane interface {
	ID() entity.PaneID
	// Focus moves input focus to the pane.
	Focus()
	HasFocus() bool
	IsZoomed() bool
	SetZoomed(zoomed bool)
	// ItemCount is the number of items the pane holds. A pane with no items
	// has nothing to clone when a split is requested by index.
	ItemCount() int
	Title() string
}

// PaneRegistry creates panes and resolves IDs back to them.
// Implemented by the UI host.
type PaneRegistry interface {
	// NewPane creates and registers an empty pane.
	NewPane(ctx context.Context) (Pane, error)
	// RestorePane registers a pane under an ID read back from a saved layout.
	RestorePane(ctx context.Context, id entity.PaneID) (Pane, error)
	// Pane returns a registered pane, or false when the ID is unknown.
	Pane(id entity.PaneID) (Pane, bool)
	// Forget drops a pane that left the tree.
	Forget(id entity.PaneID)
}
