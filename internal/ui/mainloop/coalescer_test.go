package mainloop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoop struct {
	queue []func()
	err   error
}

func (l *fakeLoop) post(fn func()) error {
	if l.err != nil {
		return l.err
	}
	l.queue = append(l.queue, fn)
	return nil
}

func (l *fakeLoop) drain() {
	queue := l.queue
	l.queue = nil
	for _, fn := range queue {
		fn()
	}
}

func TestCoalescer_MergesBurstIntoLatest(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	value := 0
	for i := 1; i <= 5; i++ {
		require.NoError(t, c.Post("layout-options", func() { value = i }))
	}
	require.Len(t, loop.queue, 1)

	loop.drain()
	assert.Equal(t, 5, value)

	require.NoError(t, c.Post("layout-options", func() { value = 6 }))
	require.Len(t, loop.queue, 1, "key is free again after running")
	loop.drain()
	assert.Equal(t, 6, value)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	var ran []string
	require.NoError(t, c.Post("a", func() { ran = append(ran, "a") }))
	require.NoError(t, c.Post("b", func() { ran = append(ran, "b") }))
	loop.drain()

	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCoalescer_CloseDropsQueuedWork(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	ran := false
	require.NoError(t, c.Post("k", func() { ran = true }))
	c.Close()
	loop.drain()
	assert.False(t, ran)

	assert.ErrorIs(t, c.Post("k", func() { ran = true }), ErrClosed)
	assert.Empty(t, loop.queue)
}

func TestCoalescer_PostErrorReleasesKey(t *testing.T) {
	loop := &fakeLoop{err: errors.New("screen gone")}
	c := NewCoalescer(loop.post)

	require.Error(t, c.Post("k", func() {}))

	loop.err = nil
	require.NoError(t, c.Post("k", func() {}))
	assert.Len(t, loop.queue, 1)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
