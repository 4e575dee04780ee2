package termhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/domain/entity"
)

func TestRegistry_NewPaneAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()

	a, err := r.NewPane(testCtx())
	require.NoError(t, err)
	b, err := r.NewPane(testCtx())
	require.NoError(t, err)

	assert.Equal(t, entity.PaneID("pane-1"), a.ID())
	assert.Equal(t, entity.PaneID("pane-2"), b.ID())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_RestorePaneReservesID(t *testing.T) {
	r := NewRegistry()

	restored, err := r.RestorePane(testCtx(), "pane-7")
	require.NoError(t, err)
	again, err := r.RestorePane(testCtx(), "pane-7")
	require.NoError(t, err)
	assert.Same(t, restored, again)

	_, err = r.RestorePane(testCtx(), "notes")
	require.NoError(t, err)

	next, err := r.NewPane(testCtx())
	require.NoError(t, err)
	assert.Equal(t, entity.PaneID("pane-8"), next.ID())

	_, err = r.RestorePane(testCtx(), "")
	assert.Error(t, err)
}

func TestRegistry_FocusIsExclusive(t *testing.T) {
	r := NewRegistry()
	a, _ := r.NewPane(testCtx())
	b, _ := r.NewPane(testCtx())

	a.Focus()
	assert.True(t, a.HasFocus())
	assert.False(t, b.HasFocus())

	b.Focus()
	assert.False(t, a.HasFocus())
	assert.True(t, b.HasFocus())

	r.Forget(b.ID())
	_, ok := r.Focused()
	assert.False(t, ok)
	assert.False(t, b.HasFocus())
}

func TestRegistry_PaneUnknownID(t *testing.T) {
	r := NewRegistry()

	p, ok := r.Pane("missing")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestPane_ItemsAndZoom(t *testing.T) {
	r := NewRegistry()
	created, _ := r.NewPane(testCtx())
	p, ok := r.Lookup(created.ID())
	require.True(t, ok)

	assert.False(t, p.Commit())
	p.Type('o')
	p.Type('k')
	assert.True(t, p.Commit())
	assert.Equal(t, 1, p.ItemCount())

	lines, input := p.Content()
	assert.Equal(t, []string{"ok"}, lines)
	assert.Empty(t, input)

	p.SetZoomed(true)
	assert.True(t, p.IsZoomed())
	assert.Equal(t, "pane-1", p.Title())
}
