package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	"github.com/bnema/splitgrid/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/splitgrid/internal/logging"
)

type layoutRepo struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewLayoutRepository creates a new layout repository.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{
		db:      db,
		queries: sqlc.New(db),
	}
}

// Save inserts or replaces the snapshot of a workspace.
func (r *layoutRepo) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snap.WorkspaceID == "" {
		return errors.New("layout snapshot has no workspace id")
	}

	stateJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal layout snapshot: %w", err)
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	log.Debug().
		Str("workspace_id", string(snap.WorkspaceID)).
		Int("pane_count", snap.CountPanes()).
		Int("bytes", len(stateJSON)).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	if err := r.queries.WithTx(tx).UpsertLayout(ctx, sqlc.UpsertLayoutParams{
		WorkspaceID: string(snap.WorkspaceID),
		StateJson:   string(stateJSON),
		Version:     int64(snap.Version),
		PaneCount:   int64(snap.CountPanes()),
		UpdatedAt:   savedAt.Unix(),
	}); err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}
	return nil
}

// Get returns the stored snapshot, or nil when none exists.
func (r *layoutRepo) Get(ctx context.Context, id entity.WorkspaceID) (*entity.LayoutSnapshot, error) {
	row, err := r.queries.GetLayout(ctx, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(row.StateJson), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("workspace_id", string(id)).
			Msg("failed to unmarshal layout snapshot")
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidSnapshot, err)
	}
	return &snap, nil
}

// List returns a summary of every stored layout, most recent first.
func (r *layoutRepo) List(ctx context.Context) ([]repository.LayoutSummary, error) {
	rows, err := r.queries.ListLayouts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]repository.LayoutSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, repository.LayoutSummary{
			WorkspaceID: entity.WorkspaceID(row.WorkspaceID),
			PaneCount:   int(row.PaneCount),
			SizeBytes:   row.SizeBytes,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return summaries, nil
}

// Delete removes a workspace's snapshot.
func (r *layoutRepo) Delete(ctx context.Context, id entity.WorkspaceID) error {
	logging.FromContext(ctx).Debug().Str("workspace_id", string(id)).Msg("deleting layout snapshot")
	return r.queries.DeleteLayout(ctx, string(id))
}
