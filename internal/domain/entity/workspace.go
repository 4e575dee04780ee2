package entity

import "time"

// WorkspaceID uniquely identifies a workspace.
type WorkspaceID string

// Workspace is a pane group plus the interaction state that lives next to it:
// which pane is active, which one is zoomed and where the cursor was last
// seen inside the active pane.
type Workspace struct {
	ID           WorkspaceID
	Center       *PaneGroup
	ActivePaneID PaneID  // Currently focused pane
	ZoomedPaneID PaneID  // Empty when nothing is zoomed
	Cursor       *Point  // Last known pointer position, nil when unknown
	CreatedAt    time.Time
}

// NewWorkspace creates a new workspace with an initial pane.
func NewWorkspace(id WorkspaceID, initialPane PaneID) *Workspace {
	return &Workspace{
		ID:           id,
		Center:       NewPaneGroup(initialPane),
		ActivePaneID: initialPane,
		CreatedAt:    time.Now(),
	}
}

// PaneCount returns the number of panes in the workspace.
func (w *Workspace) PaneCount() int {
	if w.Center == nil {
		return 0
	}
	return w.Center.Len()
}

// AllPanes returns all panes in tree order.
func (w *Workspace) AllPanes() []PaneID {
	if w.Center == nil {
		return nil
	}
	return w.Center.Panes()
}

// IsZoomed reports whether the given pane is the zoomed one.
func (w *Workspace) IsZoomed(id PaneID) bool {
	return w.ZoomedPaneID != "" && w.ZoomedPaneID == id
}
