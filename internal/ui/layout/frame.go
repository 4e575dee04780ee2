package layout

import "github.com/bnema/splitgrid/internal/domain/entity"

// PaneRegion is the rectangle a host renderer fills with a pane's content.
type PaneRegion struct {
	Pane   entity.PaneID
	Bounds entity.Bounds
	// Placeholder is set for the zoomed pane's slot in the tree; the pane
	// itself is drawn in Frame.Zoomed.
	Placeholder bool
	Active      bool
}

// Handle is a draggable boundary between member Index and Index+1 of Axis.
type Handle struct {
	Axis      *entity.PaneAxis
	Index     int
	Bounds    entity.Bounds
	Container entity.Bounds
}

// Frame is the output of one layout pass.
type Frame struct {
	Container entity.Bounds
	Panes     []PaneRegion
	Dividers  []entity.Bounds
	Handles   []Handle
	// Zoomed covers the whole container when a pane is zoomed.
	Zoomed *PaneRegion
}

// HandleAt returns the handle whose hit region contains p. Handles of nested
// axes are installed after their parents and win on overlap. The zoom overlay
// hides every handle.
func (f *Frame) HandleAt(p entity.Point) (Handle, bool) {
	if f == nil || f.Zoomed != nil {
		return Handle{}, false
	}
	for i := len(f.Handles) - 1; i >= 0; i-- {
		if f.Handles[i].Bounds.Contains(p) {
			return f.Handles[i], true
		}
	}
	return Handle{}, false
}

// Region returns the tree region assigned to pane.
func (f *Frame) Region(pane entity.PaneID) (PaneRegion, bool) {
	if f == nil {
		return PaneRegion{}, false
	}
	for _, r := range f.Panes {
		if r.Pane == pane {
			return r, true
		}
	}
	return PaneRegion{}, false
}

// PaneAt returns the pane drawn at p, honouring the zoom overlay.
func (f *Frame) PaneAt(p entity.Point) (entity.PaneID, bool) {
	if f == nil {
		return "", false
	}
	if f.Zoomed != nil {
		if f.Zoomed.Bounds.Contains(p) {
			return f.Zoomed.Pane, true
		}
		return "", false
	}
	for _, r := range f.Panes {
		if r.Bounds.Contains(p) {
			return r.Pane, true
		}
	}
	return "", false
}
