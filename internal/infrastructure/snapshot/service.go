// Package snapshot persists workspace layouts with debounced writes.
package snapshot

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/splitgrid/internal/application/port"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	"github.com/bnema/splitgrid/internal/logging"
)

// DefaultInterval is the debounce delay used when none is configured.
const DefaultInterval = 500 * time.Millisecond

const tracerName = "github.com/bnema/splitgrid/internal/infrastructure/snapshot"

// Service implements port.LayoutSerializer. Each call captures the tree
// immediately on the caller's goroutine; the write happens once the layout
// has been quiet for the debounce interval.
type Service struct {
	repo     repository.LayoutRepository
	interval time.Duration
	tracer   trace.Tracer

	mu      sync.Mutex
	timer   *time.Timer
	pending *entity.LayoutSnapshot
	ctx     context.Context
	cancel  context.CancelFunc

	// writeMu keeps a timer flush and SaveNow from writing concurrently.
	writeMu sync.Mutex
}

var _ port.LayoutSerializer = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// NewService creates a new snapshot service.
func NewService(repo repository.LayoutRepository, intervalMs int, opts ...Option) *Service {
	interval := DefaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	s := &Service{
		repo:     repo,
		interval: interval,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start enables debounced writes. Snapshots taken before Start are kept
// until the first flush.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	if s.pending != nil {
		s.armLocked()
	}
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop cancels pending timers and writes the last snapshot.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.ctx = nil
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// SerializeLayout records the workspace's current layout for saving.
func (s *Service) SerializeLayout(ctx context.Context, ws *entity.Workspace) {
	snap := entity.SnapshotWorkspace(ws)
	if snap == nil || snap.Root == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = snap
	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(snap.WorkspaceID)).
		Int("panes", snap.CountPanes()).
		Msg("layout marked dirty")

	if s.ctx != nil {
		s.armLocked()
	}
}

// armLocked restarts the debounce timer. Must be called with s.mu held.
func (s *Service) armLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.flush)
}

func (s *Service) flush() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}
	if err := s.SaveNow(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
	}
}

// SaveNow writes the pending snapshot immediately, if any.
func (s *Service) SaveNow(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()

	if snap == nil {
		return nil
	}

	if err := s.save(ctx, snap); err != nil {
		s.mu.Lock()
		// Keep the failed snapshot unless a newer one arrived meanwhile.
		if s.pending == nil {
			s.pending = snap
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// Dirty reports whether a snapshot is waiting to be written.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Service) save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	ctx, span := s.tracer.Start(ctx, "snapshot.save", trace.WithAttributes(
		attribute.String("workspace.id", string(snap.WorkspaceID)),
		attribute.Int("layout.panes", snap.CountPanes()),
	))
	defer span.End()

	start := time.Now()
	if err := s.repo.Save(ctx, snap); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(snap.WorkspaceID)).
		Dur("took", time.Since(start)).
		Msg("layout snapshot saved")
	return nil
}
