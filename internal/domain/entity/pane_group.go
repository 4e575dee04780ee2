package entity

import "fmt"

// PaneGroup owns the root of a pane tree. A group of one pane has a bare Leaf
// root; any split turns the root into a *PaneAxis.
type PaneGroup struct {
	root Member
}

// NewPaneGroup creates a group holding a single pane.
func NewPaneGroup(pane PaneID) *PaneGroup {
	return &PaneGroup{root: Leaf{Pane: pane}}
}

// LoadPaneGroup creates a group around an already built tree.
func LoadPaneGroup(root Member) *PaneGroup {
	return &PaneGroup{root: root}
}

// Root returns the root member.
func (g *PaneGroup) Root() Member {
	return g.root
}

// Split places newPane next to oldPane on the side given by direction.
func (g *PaneGroup) Split(oldPane, newPane PaneID, direction SplitDirection) error {
	switch root := g.root.(type) {
	case Leaf:
		if root.Pane != oldPane {
			return fmt.Errorf("split %s: %w", oldPane, ErrPaneNotFound)
		}
		g.root = newAxisMember(oldPane, newPane, direction)
		return nil
	case *PaneAxis:
		return root.split(oldPane, newPane, direction)
	}
	return fmt.Errorf("split %s: %w", oldPane, ErrPaneNotFound)
}

// Remove takes a pane out of the group. It returns false without error when
// the group only holds one pane: the caller must drop the whole group instead.
func (g *PaneGroup) Remove(pane PaneID) (bool, error) {
	root, ok := g.root.(*PaneAxis)
	if !ok {
		return false, nil
	}
	last, err := root.remove(pane)
	if err != nil {
		return false, err
	}
	if last != nil {
		g.root = last
	}
	return true, nil
}

// Swap exchanges the tree positions of two panes. Absent panes are ignored.
func (g *PaneGroup) Swap(from, to PaneID) {
	root, ok := g.root.(*PaneAxis)
	if !ok || !root.Contains(from) || !root.Contains(to) {
		return
	}
	root.swap(from, to)
}

// BoundingBoxForPane returns the rectangle the pane occupied in the most
// recent layout pass. A single-pane group tracks no geometry.
func (g *PaneGroup) BoundingBoxForPane(pane PaneID) (Bounds, bool) {
	root, ok := g.root.(*PaneAxis)
	if !ok {
		return Bounds{}, false
	}
	return root.boundingBoxForPane(pane)
}

// PaneAtPixelPosition resolves a point to the pane whose cached rectangle
// contains it. A single-pane group returns its pane for any point.
func (g *PaneGroup) PaneAtPixelPosition(p Point) (PaneID, bool) {
	switch root := g.root.(type) {
	case Leaf:
		return root.Pane, true
	case *PaneAxis:
		return root.paneAtPixelPosition(p)
	}
	return "", false
}

// Panes lists every pane in tree order.
func (g *PaneGroup) Panes() []PaneID {
	return CollectPanes(g.root)
}

// FirstPane returns the first pane in tree order.
func (g *PaneGroup) FirstPane() PaneID {
	return g.root.FirstPane()
}

// Contains reports whether the pane is part of the group.
func (g *PaneGroup) Contains(pane PaneID) bool {
	return g.root.Contains(pane)
}

// Len returns the number of panes in the group.
func (g *PaneGroup) Len() int {
	return len(g.Panes())
}

// Walk visits every axis in pre-order, stopping early when fn returns false.
func (g *PaneGroup) Walk(fn func(axis *PaneAxis) bool) {
	walkAxes(g.root, fn)
}

func walkAxes(m Member, fn func(*PaneAxis) bool) bool {
	axis, ok := m.(*PaneAxis)
	if !ok {
		return true
	}
	if !fn(axis) {
		return false
	}
	for _, child := range axis.Members {
		if !walkAxes(child, fn) {
			return false
		}
	}
	return true
}
