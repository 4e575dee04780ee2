// Package mainloop schedules work onto a single event-loop goroutine.
package mainloop

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Post after Close.
var ErrClosed = errors.New("mainloop: coalescer closed")

// PostFunc hands fn to the event loop, which runs it later on its own
// goroutine.
type PostFunc func(fn func()) error

// Coalescer merges bursts of work under the same key into one event-loop
// task. The most recent fn for a key is the one that runs.
type Coalescer struct {
	post PostFunc

	mu      sync.Mutex
	pending map[string]func()
	closed  bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post PostFunc) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		post:    post,
		pending: make(map[string]func()),
	}
}

// Post schedules fn under key. While a task for key is queued, later calls
// only replace the fn it will run.
func (c *Coalescer) Post(key string, fn func()) error {
	if fn == nil || key == "" {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()
	if queued {
		return nil
	}

	if err := c.post(func() { c.run(key) }); err != nil {
		c.mu.Lock()
		delete(c.pending, key)
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	closed := c.closed
	c.mu.Unlock()

	if fn != nil && !closed {
		fn()
	}
}

// Close drops queued work. Tasks already handed to the loop become no-ops.
func (c *Coalescer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	clear(c.pending)
}
