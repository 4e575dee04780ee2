package entity

import (
	"errors"
	"fmt"
	"time"
)

// LayoutStateVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// ErrInvalidSnapshot is returned when a snapshot cannot be turned back into a tree.
var ErrInvalidSnapshot = errors.New("invalid layout snapshot")

// LayoutSnapshot is a serialisable copy of a workspace's pane tree.
// This is serialized to JSON and stored in the database.
type LayoutSnapshot struct {
	Version      int             `json:"version"`
	WorkspaceID  WorkspaceID     `json:"workspace_id"`
	Root         *MemberSnapshot `json:"root"`
	ActivePaneID PaneID          `json:"active_pane_id"`
	ZoomedPaneID PaneID          `json:"zoomed_pane_id,omitempty"`
	SavedAt      time.Time       `json:"saved_at"`
}

// MemberSnapshot captures one node of the pane tree. Exactly one of Pane or
// Members is set.
type MemberSnapshot struct {
	Pane    *PaneID           `json:"pane,omitempty"`
	Axis    Axis              `json:"axis"`
	Members []*MemberSnapshot `json:"members,omitempty"`
	Flexes  []float64         `json:"flexes,omitempty"`
}

// SnapshotWorkspace copies the workspace tree. It reads flexes under each
// axis's lock and is safe to call from the UI goroutine while pointer
// handlers run.
func SnapshotWorkspace(ws *Workspace) *LayoutSnapshot {
	if ws == nil {
		return nil
	}
	var root *MemberSnapshot
	if ws.Center != nil {
		root = snapshotMember(ws.Center.Root())
	}
	return &LayoutSnapshot{
		Version:      LayoutStateVersion,
		WorkspaceID:  ws.ID,
		Root:         root,
		ActivePaneID: ws.ActivePaneID,
		ZoomedPaneID: ws.ZoomedPaneID,
		SavedAt:      time.Now(),
	}
}

func snapshotMember(m Member) *MemberSnapshot {
	switch m := m.(type) {
	case Leaf:
		id := m.Pane
		return &MemberSnapshot{Pane: &id}
	case *PaneAxis:
		snap := &MemberSnapshot{
			Axis:    m.Axis,
			Members: make([]*MemberSnapshot, 0, len(m.Members)),
			Flexes:  m.Flexes(),
		}
		for _, child := range m.Members {
			snap.Members = append(snap.Members, snapshotMember(child))
		}
		return snap
	}
	return nil
}

// CountPanes returns the number of panes in the snapshot.
func (s *LayoutSnapshot) CountPanes() int {
	if s == nil {
		return 0
	}
	return countPanesInMember(s.Root)
}

func countPanesInMember(snap *MemberSnapshot) int {
	if snap == nil {
		return 0
	}
	if snap.Pane != nil {
		return 1
	}
	count := 0
	for _, child := range snap.Members {
		count += countPanesInMember(child)
	}
	return count
}

// RestoreWorkspace rebuilds a workspace from a snapshot. Axes that lost
// members collapse the same way a live removal would, flexes that no longer
// fit their axis are reset to uniform, and an active pane that is not in the
// tree falls back to the first pane.
// This is the inverse of SnapshotWorkspace.
func RestoreWorkspace(snap *LayoutSnapshot) (*Workspace, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if snap.Version > LayoutStateVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.Version)
	}

	seen := make(map[PaneID]bool)
	root, err := memberFromSnapshot(snap.Root, seen)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no panes", ErrInvalidSnapshot)
	}

	group := LoadPaneGroup(root)
	ws := &Workspace{
		ID:           snap.WorkspaceID,
		Center:       group,
		ActivePaneID: snap.ActivePaneID,
		CreatedAt:    time.Now(),
	}
	if !group.Contains(ws.ActivePaneID) {
		ws.ActivePaneID = group.FirstPane()
	}
	if snap.ZoomedPaneID != "" && group.Contains(snap.ZoomedPaneID) {
		ws.ZoomedPaneID = snap.ZoomedPaneID
	}
	return ws, nil
}

func memberFromSnapshot(snap *MemberSnapshot, seen map[PaneID]bool) (Member, error) {
	if snap == nil {
		return nil, nil
	}

	if snap.Pane != nil {
		id := *snap.Pane
		if id == "" {
			return nil, fmt.Errorf("%w: empty pane id", ErrInvalidSnapshot)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate pane %s", ErrInvalidSnapshot, id)
		}
		seen[id] = true
		return Leaf{Pane: id}, nil
	}

	if snap.Axis != AxisHorizontal && snap.Axis != AxisVertical {
		return nil, fmt.Errorf("%w: unknown axis %d", ErrInvalidSnapshot, snap.Axis)
	}

	members := make([]Member, 0, len(snap.Members))
	keptFlexes := make([]float64, 0, len(snap.Members))
	for i, childSnap := range snap.Members {
		child, err := memberFromSnapshot(childSnap, seen)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		members = append(members, child)
		if i < len(snap.Flexes) {
			keptFlexes = append(keptFlexes, snap.Flexes[i])
		}
	}

	switch len(members) {
	case 0:
		return nil, nil
	case 1:
		return members[0], nil
	}
	return LoadPaneAxis(snap.Axis, members, keptFlexes), nil
}
