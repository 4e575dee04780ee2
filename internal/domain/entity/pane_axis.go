package entity

import (
	"fmt"
	"math"
	"sync"
)

// flexTolerance is the allowed drift of sum(flexes) from len(members).
const flexTolerance = 1e-3

type cachedBounds struct {
	bounds Bounds
	ok     bool
}

// PaneAxis is a container whose members share one orientation.
//
// Each member has a flex weight (its proportional share of the primary axis,
// averaging 1.0) and a bounding box cached by the most recent layout pass.
// Flexes and bounds are guarded by mu because pointer handlers write them and
// the snapshot service reads them outside the layout pass. Members themselves
// are only touched from the UI goroutine.
type PaneAxis struct {
	Axis    Axis
	Members []Member

	mu     sync.Mutex
	flexes []float64
	bounds []cachedBounds
}

// NewPaneAxis creates an axis with uniform flexes.
func NewPaneAxis(axis Axis, members []Member) *PaneAxis {
	return &PaneAxis{
		Axis:    axis,
		Members: members,
		flexes:  uniformFlexes(len(members)),
		bounds:  make([]cachedBounds, len(members)),
	}
}

// LoadPaneAxis creates an axis with previously saved flexes. Flexes that do
// not match the members (wrong length, non-positive weight, or a sum that
// strays from len(members)) are replaced by uniform weights.
func LoadPaneAxis(axis Axis, members []Member, flexes []float64) *PaneAxis {
	a := NewPaneAxis(axis, members)
	if FlexesValid(flexes, len(members)) {
		copy(a.flexes, flexes)
	}
	return a
}

// FlexesValid reports whether flexes is a usable weight vector for n members.
func FlexesValid(flexes []float64, n int) bool {
	if len(flexes) != n || n == 0 {
		return false
	}
	sum := 0.0
	for _, f := range flexes {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		sum += f
	}
	return math.Abs(sum-float64(n)) < flexTolerance
}

func uniformFlexes(n int) []float64 {
	flexes := make([]float64, n)
	for i := range flexes {
		flexes[i] = 1
	}
	return flexes
}

// Contains reports whether the pane appears anywhere under this axis.
func (a *PaneAxis) Contains(id PaneID) bool {
	for _, m := range a.Members {
		if m.Contains(id) {
			return true
		}
	}
	return false
}

// FirstPane returns the first leaf reached through first children.
func (a *PaneAxis) FirstPane() PaneID {
	return a.Members[0].FirstPane()
}

func (a *PaneAxis) collectPanes(dst []PaneID) []PaneID {
	for _, m := range a.Members {
		dst = m.collectPanes(dst)
	}
	return dst
}

// Flexes returns a copy of the flex weights.
func (a *PaneAxis) Flexes() []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]float64, len(a.flexes))
	copy(out, a.flexes)
	return out
}

// ResetFlexes sets every weight back to 1.0.
func (a *PaneAxis) ResetFlexes() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flexes = uniformFlexes(len(a.Members))
}

// UpdateFlexes runs fn against the live flex vector while holding the lock.
// fn reports whether it changed anything; that result is returned.
func (a *PaneAxis) UpdateFlexes(fn func(flexes []float64) bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.flexes)
}

// CacheBounds replaces the cached bounding boxes with the given layout.
// Entries beyond len(bounds) are left without a rectangle.
func (a *PaneAxis) CacheBounds(bounds []Bounds) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bounds = make([]cachedBounds, len(a.Members))
	for i := range a.bounds {
		if i < len(bounds) {
			a.bounds[i] = cachedBounds{bounds: bounds[i], ok: true}
		}
	}
}

// BoundsAt returns the cached bounding box of member i.
func (a *PaneAxis) BoundsAt(i int) (Bounds, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.bounds) {
		return Bounds{}, false
	}
	return a.bounds[i].bounds, a.bounds[i].ok
}

// resetLocked resizes flexes and bounds to the member count with uniform
// weights and no cached rectangles.
func (a *PaneAxis) resetLocked() {
	a.flexes = uniformFlexes(len(a.Members))
	a.bounds = make([]cachedBounds, len(a.Members))
}

func (a *PaneAxis) split(oldPane, newPane PaneID, direction SplitDirection) error {
	for idx, member := range a.Members {
		switch m := member.(type) {
		case *PaneAxis:
			if err := m.split(oldPane, newPane, direction); err == nil {
				return nil
			}
		case Leaf:
			if m.Pane != oldPane {
				continue
			}
			if direction.Axis() == a.Axis {
				if direction.Increasing() {
					idx++
				}
				a.Members = append(a.Members, nil)
				copy(a.Members[idx+1:], a.Members[idx:])
				a.Members[idx] = Leaf{Pane: newPane}

				a.mu.Lock()
				a.resetLocked()
				a.mu.Unlock()
			} else {
				a.Members[idx] = newAxisMember(oldPane, newPane, direction)
			}
			return nil
		}
	}
	return fmt.Errorf("split %s: %w", oldPane, ErrPaneNotFound)
}

// remove deletes the pane from this axis or a nested one. When only one member
// remains it is popped and returned so the caller can put it in this axis's
// slot; otherwise the returned member is nil.
func (a *PaneAxis) remove(id PaneID) (Member, error) {
	found := false
	removeIdx := -1

search:
	for idx, member := range a.Members {
		switch m := member.(type) {
		case *PaneAxis:
			last, err := m.remove(id)
			if err != nil {
				continue
			}
			if last != nil {
				a.Members[idx] = last
			}
			found = true
			break search
		case Leaf:
			if m.Pane == id {
				found = true
				removeIdx = idx
				break search
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("remove %s: %w", id, ErrPaneNotFound)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if removeIdx >= 0 {
		a.Members = append(a.Members[:removeIdx], a.Members[removeIdx+1:]...)
		a.resetLocked()
	}

	if len(a.Members) == 1 {
		last := a.Members[0]
		a.Members = nil
		a.resetLocked()
		return last, nil
	}
	return nil, nil
}

// swap exchanges every occurrence of from and to across the whole subtree.
func (a *PaneAxis) swap(from, to PaneID) {
	for idx, member := range a.Members {
		switch m := member.(type) {
		case *PaneAxis:
			m.swap(from, to)
		case Leaf:
			if m.Pane == from {
				a.Members[idx] = Leaf{Pane: to}
			} else if m.Pane == to {
				a.Members[idx] = Leaf{Pane: from}
			}
		}
	}
}

func (a *PaneAxis) boundingBoxForPane(id PaneID) (Bounds, bool) {
	for idx, member := range a.Members {
		switch m := member.(type) {
		case Leaf:
			if m.Pane == id {
				return a.BoundsAt(idx)
			}
		case *PaneAxis:
			if b, ok := m.boundingBoxForPane(id); ok {
				return b, true
			}
		}
	}
	return Bounds{}, false
}

func (a *PaneAxis) paneAtPixelPosition(p Point) (PaneID, bool) {
	for idx, member := range a.Members {
		b, ok := a.BoundsAt(idx)
		if !ok || !b.Contains(p) {
			continue
		}
		switch m := member.(type) {
		case Leaf:
			return m.Pane, true
		case *PaneAxis:
			return m.paneAtPixelPosition(p)
		}
	}
	return "", false
}
