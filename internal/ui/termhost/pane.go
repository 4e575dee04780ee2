package termhost

import (
	"sync"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/domain/entity"
)

// Pane is a scratch text pane: typed runes fill an input line and Enter
// commits it as an item.
type Pane struct {
	id       entity.PaneID
	registry *Registry

	mu     sync.Mutex
	lines  []string
	input  []rune
	zoomed bool
}

var _ port.Pane = (*Pane)(nil)

func (p *Pane) ID() entity.PaneID { return p.id }

// Focus makes p the registry's focused pane.
func (p *Pane) Focus() { p.registry.setFocus(p.id) }

func (p *Pane) HasFocus() bool { return p.registry.hasFocus(p.id) }

func (p *Pane) IsZoomed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zoomed
}

func (p *Pane) SetZoomed(zoomed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.zoomed = zoomed
}

// ItemCount is the number of committed lines.
func (p *Pane) ItemCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

func (p *Pane) Title() string { return string(p.id) }

// Type appends r to the input line.
func (p *Pane) Type(r rune) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = append(p.input, r)
}

// Backspace deletes the last rune of the input line.
func (p *Pane) Backspace() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Commit turns the input line into an item. Empty input is ignored.
func (p *Pane) Commit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.input) == 0 {
		return false
	}
	p.lines = append(p.lines, string(p.input))
	p.input = p.input[:0]
	return true
}

// Content returns the committed lines and the pending input.
func (p *Pane) Content() (lines []string, input string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...), string(p.input)
}
