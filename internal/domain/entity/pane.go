// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "errors"

// PaneID identifies an externally owned content pane. Panes are compared by
// identity, which for the tree means equality of their ids.
type PaneID string

// ErrPaneNotFound is returned when a structural operation targets a pane that
// is not part of the tree. It usually means the caller holds a stale handle.
var ErrPaneNotFound = errors.New("pane not found")

// Member is a node of the pane tree: either a Leaf holding one pane or a
// *PaneAxis holding two or more members.
type Member interface {
	// Contains reports whether the pane appears anywhere under this member.
	Contains(id PaneID) bool
	// FirstPane descends through first children down to a leaf.
	FirstPane() PaneID

	collectPanes(dst []PaneID) []PaneID
}

// Leaf is a member holding a single pane.
type Leaf struct {
	Pane PaneID
}

func (l Leaf) Contains(id PaneID) bool { return l.Pane == id }

func (l Leaf) FirstPane() PaneID { return l.Pane }

func (l Leaf) collectPanes(dst []PaneID) []PaneID { return append(dst, l.Pane) }

// CollectPanes returns every pane under m in pre-order.
func CollectPanes(m Member) []PaneID {
	if m == nil {
		return nil
	}
	return m.collectPanes(nil)
}

// newAxisMember wraps an existing pane and a new one into a two-member axis
// oriented and ordered according to direction.
func newAxisMember(oldPane, newPane PaneID, direction SplitDirection) *PaneAxis {
	members := []Member{Leaf{Pane: oldPane}, Leaf{Pane: newPane}}
	if !direction.Increasing() {
		members[0], members[1] = members[1], members[0]
	}
	return NewPaneAxis(direction.Axis(), members)
}
