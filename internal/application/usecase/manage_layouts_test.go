package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/splitgrid/internal/application/port"
	portmocks "github.com/bnema/splitgrid/internal/application/port/mocks"
	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	repomocks "github.com/bnema/splitgrid/internal/domain/repository/mocks"
)

func savedLayout(t *testing.T) *entity.LayoutSnapshot {
	t.Helper()
	ws := entity.NewWorkspace("main", "a")
	require.NoError(t, ws.Center.Split("a", "b", entity.SplitRight))
	ws.ActivePaneID = "b"
	ws.ZoomedPaneID = "b"
	return entity.SnapshotWorkspace(ws)
}

func TestManageLayouts_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	uc := usecase.NewManageLayoutsUseCase(repo)

	want := []repository.LayoutSummary{{WorkspaceID: "main", PaneCount: 2}}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := uc.List(testContext())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManageLayouts_GetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	uc := usecase.NewManageLayoutsUseCase(repo)

	repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("nope")).Return(nil, nil)

	_, err := uc.Get(testContext(), "nope")
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestManageLayouts_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	uc := usecase.NewManageLayoutsUseCase(repo)

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(savedLayout(t), nil),
		repo.EXPECT().Delete(gomock.Any(), entity.WorkspaceID("main")).Return(nil),
	)

	require.NoError(t, uc.Delete(testContext(), "main"))
}

func TestManageLayouts_DeleteMissingSkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	uc := usecase.NewManageLayoutsUseCase(repo)

	repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(nil, nil)

	err := uc.Delete(testContext(), "main")
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestManageLayouts_RestoreSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	registry := portmocks.NewMockPaneRegistry(t)
	uc := usecase.NewManageLayoutsUseCase(repo)

	repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(savedLayout(t), nil)

	paneA := portmocks.NewMockPane(t)
	paneB := portmocks.NewMockPane(t)
	registry.EXPECT().RestorePane(mock.Anything, entity.PaneID("a")).Return(paneA, nil).Once()
	registry.EXPECT().RestorePane(mock.Anything, entity.PaneID("b")).Return(paneB, nil).Once()
	paneB.EXPECT().SetZoomed(true).Return().Once()
	paneB.EXPECT().Focus().Return().Once()

	ws, err := uc.Restore(testContext(), usecase.RestoreInput{WorkspaceID: "main", Registry: registry})

	require.NoError(t, err)
	assert.Equal(t, []entity.PaneID{"a", "b"}, ws.AllPanes())
	assert.Equal(t, entity.PaneID("b"), ws.ActivePaneID)
	assert.True(t, ws.IsZoomed("b"))
}

func TestManageLayouts_RestoreFailureForgetsRestoredPanes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLayoutRepository(ctrl)
	registry := portmocks.NewMockPaneRegistry(t)
	uc := usecase.NewManageLayoutsUseCase(repo)
	boom := errors.New("boom")

	repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(savedLayout(t), nil)
	registry.EXPECT().RestorePane(mock.Anything, entity.PaneID("a")).Return(portmocks.NewMockPane(t), nil).Once()
	registry.EXPECT().RestorePane(mock.Anything, entity.PaneID("b")).Return(nil, boom).Once()
	registry.EXPECT().Forget(entity.PaneID("a")).Return().Once()

	_, err := uc.Restore(testContext(), usecase.RestoreInput{WorkspaceID: "main", Registry: registry})
	assert.ErrorIs(t, err, boom)
}

func TestManageLayouts_RestoreFreshWorkspace(t *testing.T) {
	tests := []struct {
		name string
		snap *entity.LayoutSnapshot
		err  error
	}{
		{"nothing saved", nil, nil},
		{"repository error", nil, errors.New("disk on fire")},
		{"unusable snapshot", &entity.LayoutSnapshot{Version: entity.LayoutStateVersion}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockLayoutRepository(ctrl)
			registry := portmocks.NewMockPaneRegistry(t)
			uc := usecase.NewManageLayoutsUseCase(repo)

			repo.EXPECT().Get(gomock.Any(), entity.WorkspaceID("main")).Return(tt.snap, tt.err)
			fresh := portmocks.NewMockPane(t)
			fresh.EXPECT().ID().Return(entity.PaneID("fresh")).Maybe()
			fresh.EXPECT().Focus().Return().Once()
			registry.EXPECT().NewPane(mock.Anything).RunAndReturn(func(context.Context) (port.Pane, error) {
				return fresh, nil
			}).Once()

			ws, err := uc.Restore(testContext(), usecase.RestoreInput{WorkspaceID: "main", Registry: registry})

			require.NoError(t, err)
			assert.Equal(t, entity.WorkspaceID("main"), ws.ID)
			assert.Equal(t, []entity.PaneID{"fresh"}, ws.AllPanes())
			assert.Equal(t, entity.PaneID("fresh"), ws.ActivePaneID)
		})
	}
}
