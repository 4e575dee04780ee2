// Package termhost renders a workspace in a terminal and feeds keyboard and
// mouse input to the pane use cases and the layout engine.
package termhost

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/logging"
)

const paneIDPrefix = "pane-"

// Registry owns the terminal panes of one host. Exactly one pane holds focus
// at a time.
type Registry struct {
	mu      sync.Mutex
	panes   map[entity.PaneID]*Pane
	next    int
	focused entity.PaneID
}

var _ port.PaneRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		panes: make(map[entity.PaneID]*Pane),
		next:  1,
	}
}

// NewPane creates a pane with the next free "pane-N" ID.
func (r *Registry) NewPane(ctx context.Context) (port.Pane, error) {
	r.mu.Lock()
	var id entity.PaneID
	for {
		id = entity.PaneID(fmt.Sprintf("%s%d", paneIDPrefix, r.next))
		r.next++
		if _, taken := r.panes[id]; !taken {
			break
		}
	}
	p := &Pane{id: id, registry: r}
	r.panes[id] = p
	r.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("pane created")
	return p, nil
}

// RestorePane registers a pane under a saved ID. Later NewPane calls never
// hand out that ID again.
func (r *Registry) RestorePane(ctx context.Context, id entity.PaneID) (port.Pane, error) {
	if id == "" {
		return nil, fmt.Errorf("restore pane: empty id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.panes[id]; ok {
		return p, nil
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(string(id), paneIDPrefix)); err == nil && n >= r.next {
		r.next = n + 1
	}
	p := &Pane{id: id, registry: r}
	r.panes[id] = p

	logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("pane restored")
	return p, nil
}

// Pane implements port.PaneRegistry.
func (r *Registry) Pane(id entity.PaneID) (port.Pane, bool) {
	p, ok := r.Lookup(id)
	if !ok {
		return nil, false
	}
	return p, true
}

// Lookup returns the concrete pane for id.
func (r *Registry) Lookup(id entity.PaneID) (*Pane, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.panes[id]
	return p, ok
}

// Forget drops a pane. A forgotten focused pane leaves nothing focused.
func (r *Registry) Forget(id entity.PaneID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.panes, id)
	if r.focused == id {
		r.focused = ""
	}
}

// Len returns the number of registered panes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.panes)
}

// Focused returns the pane holding focus, if any.
func (r *Registry) Focused() (*Pane, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.panes[r.focused]
	return p, ok
}

func (r *Registry) setFocus(id entity.PaneID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.panes[id]; ok {
		r.focused = id
	}
}

func (r *Registry) hasFocus(id entity.PaneID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.focused == id
}
