package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/cli/styles"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	repomocks "github.com/bnema/splitgrid/internal/domain/repository/mocks"
)

var testNow = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func newTestLayoutsModel(t *testing.T) (LayoutsModel, *repomocks.MockLayoutRepository) {
	t.Helper()
	repo := repomocks.NewMockLayoutRepository(gomock.NewController(t))
	m := NewLayoutsModel(context.Background(), styles.NewTheme(), LayoutsModelConfig{
		Layouts: usecase.NewManageLayoutsUseCase(repo),
		Now:     func() time.Time { return testNow },
	})
	return m, repo
}

func testSummaries() []repository.LayoutSummary {
	return []repository.LayoutSummary{
		{WorkspaceID: "main", PaneCount: 3, SizeBytes: 420, UpdatedAt: testNow.Add(-5 * time.Minute).Unix()},
		{WorkspaceID: "scratch", PaneCount: 1, SizeBytes: 120, UpdatedAt: testNow.Add(-3 * time.Hour).Unix()},
	}
}

func testSnapshot(t *testing.T, id entity.WorkspaceID) *entity.LayoutSnapshot {
	t.Helper()
	ws := entity.NewWorkspace(id, "a")
	require.NoError(t, ws.Center.Split("a", "b", entity.SplitDown))
	return entity.SnapshotWorkspace(ws)
}

// update feeds msg to m and runs any returned command once.
func update(t *testing.T, m LayoutsModel, msg tea.Msg) (LayoutsModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(LayoutsModel)
	require.True(t, ok)
	if cmd == nil {
		return lm, nil
	}
	return lm, cmd()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLayoutsModel_LoadsAndRendersTable(t *testing.T) {
	m, repo := newTestLayoutsModel(t)
	repo.EXPECT().List(gomock.Any()).Return(testSummaries(), nil)

	m, _ = update(t, m, m.Init()())

	view := m.View()
	assert.Contains(t, view, "Layouts")
	assert.Contains(t, view, "2 saved")
	assert.Contains(t, view, "main")
	assert.Contains(t, view, "scratch")
	assert.Contains(t, view, "5m ago")
}

func TestLayoutsModel_ShowTogglesTree(t *testing.T) {
	m, repo := newTestLayoutsModel(t)
	repo.EXPECT().List(gomock.Any()).Return(testSummaries(), nil)
	repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(testSnapshot(t, "main"), nil)

	m, _ = update(t, m, m.Init()())

	m, msg := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.IsType(t, layoutDetailMsg{}, msg)
	m, _ = update(t, m, msg)
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "vertical")

	m, msg = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, msg)
	assert.Nil(t, m.detail)
}

func TestLayoutsModel_DeleteAfterConfirm(t *testing.T) {
	m, repo := newTestLayoutsModel(t)
	gomock.InOrder(
		repo.EXPECT().List(gomock.Any()).Return(testSummaries(), nil),
		repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("scratch")).Return(testSnapshot(t, "scratch"), nil),
		repo.EXPECT().Delete(gomock.Any(), entity.WorkspaceID("scratch")).Return(nil),
		repo.EXPECT().List(gomock.Any()).Return(testSummaries()[:1], nil),
	)

	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, msg := update(t, m, keyRunes("x"))
	assert.Nil(t, msg)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Delete layout scratch?")

	m, _ = update(t, m, keyRunes("y"))
	m, msg = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.confirm)
	require.Equal(t, layoutDeletedMsg{id: "scratch"}, msg)

	m, msg = update(t, m, msg)
	assert.Contains(t, m.View(), "Layout scratch deleted")
	m, _ = update(t, m, msg)
	assert.Len(t, m.items, 1)
}

func TestLayoutsModel_CancelDeleteKeepsLayout(t *testing.T) {
	m, repo := newTestLayoutsModel(t)
	repo.EXPECT().List(gomock.Any()).Return(testSummaries(), nil)

	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, keyRunes("x"))
	m, msg := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.confirm)
	assert.Nil(t, msg)
	assert.Len(t, m.items, 2)
}

func TestLayoutsModel_EmptyAndQuit(t *testing.T) {
	m, repo := newTestLayoutsModel(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	m, _ = update(t, m, m.Init()())
	assert.Contains(t, m.View(), "No saved layouts found.")

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
