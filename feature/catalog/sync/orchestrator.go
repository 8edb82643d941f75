package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"sync/atomic"
	"time"

	"catalog-sync/core/feed"
	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/feature/catalog/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCycleInFlight is returned when a trigger arrives while a cycle runs.
var ErrCycleInFlight = errors.New("sync cycle already in flight")

// ErrClosed is returned for triggers arriving after Close.
var ErrClosed = errors.New("syncer closed")

// CommitHook runs after a pass commits.
type CommitHook func(ctx context.Context, pass PassReport)

// Syncer runs the reconcilers one after another as a sync cycle.
// At most one cycle runs at a time; extra triggers are dropped, not queued.
type Syncer struct {
	reconcilers []reconcile.Reconciler
	hooks       []CommitHook
	logger      *zap.Logger

	running atomic.Bool
	closed  atomic.Bool
	cycles  stdsync.WaitGroup
	last    atomic.Pointer[CycleReport]
	now     func() time.Time
}

// NewSyncer creates an orchestrator running reconcilers in the given order.
func NewSyncer(logger *zap.Logger, reconcilers ...reconcile.Reconciler) *Syncer {
	return &Syncer{
		reconcilers: reconcilers,
		logger:      logger,
		now:         time.Now,
	}
}

// OnCommit registers a hook called after every committed pass.
// Hooks must be registered before the first cycle starts.
func (s *Syncer) OnCommit(h CommitHook) {
	s.hooks = append(s.hooks, h)
}

// Running reports whether a cycle is in flight.
func (s *Syncer) Running() bool {
	return s.running.Load()
}

// Last returns the report of the most recent finished cycle, or nil.
func (s *Syncer) Last() *CycleReport {
	return s.last.Load()
}

// Status returns the running flag with the last report.
func (s *Syncer) Status() Status {
	return Status{Running: s.Running(), Last: s.Last()}
}

// Trigger runs one cycle and blocks until it finishes. It returns
// ErrCycleInFlight immediately when another cycle is running.
func (s *Syncer) Trigger(ctx context.Context) (*CycleReport, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	return s.runCycle(ctx, uuid.NewString()), nil
}

// Start begins a cycle in the background and returns its id, or
// ErrCycleInFlight when one is already running.
func (s *Syncer) Start(ctx context.Context) (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	go func() {
		defer s.release()
		s.runCycle(ctx, id)
	}()
	return id, nil
}

// Tick is the scheduler entry point: Trigger with the drop logged.
func (s *Syncer) Tick(ctx context.Context) {
	if _, err := s.Trigger(ctx); err != nil {
		s.logger.Info("Sync trigger dropped", zap.Error(err))
	}
}

// Close refuses further triggers and waits for the cycle in flight, if any,
// until ctx is done. The store must stay open until Close returns.
func (s *Syncer) Close(ctx context.Context) error {
	s.closed.Store(true)

	done := make(chan struct{})
	go func() {
		s.cycles.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Syncer) acquire() error {
	if s.closed.Load() {
		return ErrClosed
	}
	if !s.running.CompareAndSwap(false, true) {
		metrics.CyclesSkipped.Inc()
		return ErrCycleInFlight
	}
	s.cycles.Add(1)
	return nil
}

func (s *Syncer) release() {
	s.running.Store(false)
	s.cycles.Done()
}

func (s *Syncer) runCycle(ctx context.Context, id string) *CycleReport {
	l := logger.WithCycle(s.logger, id)
	report := &CycleReport{ID: id, StartedAt: s.now()}

	l.Info("Catalog sync cycle started", zap.Int("reconcilers", len(s.reconcilers)))

	// Passes run in order: the product/category links of the secondary feed
	// need the categories of the primary feed.
	for _, r := range s.reconcilers {
		pass := s.runPass(ctx, l, r)
		report.Passes = append(report.Passes, pass)

		if pass.Outcome == OutcomeCommitted {
			s.runHooks(ctx, l, pass)
		}
	}

	report.FinishedAt = s.now()
	s.last.Store(report)
	metrics.ObserveCycle(report.OK(), report.FinishedAt.Sub(report.StartedAt), report.FinishedAt)

	l.Info("catalog sync cycle completed",
		zap.Bool("ok", report.OK()),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report
}

func (s *Syncer) runPass(ctx context.Context, l *zap.Logger, r reconcile.Reconciler) (pass PassReport) {
	l = l.With(zap.String("feed", r.Name()))
	start := s.now()
	pass = PassReport{Reconciler: r.Name()}

	defer func() {
		if rec := recover(); rec != nil {
			pass.Outcome = OutcomeRolledBack
			pass.Error = fmt.Sprintf("panic: %v", rec)
			pass.Stats = nil
			l.Error("Reconciler panicked", zap.Any("panic", rec))
			metrics.ObserveReconciler(r.Name(), errors.New(pass.Error))
		}
		pass.Duration = s.now().Sub(start)
	}()

	stats, err := r.Run(ctx)
	metrics.ObserveReconciler(r.Name(), err)

	if err != nil {
		pass.Error = err.Error()

		var fetchErr *feed.FetchError
		var decodeErr *feed.DecodeError
		if errors.As(err, &fetchErr) || errors.As(err, &decodeErr) {
			pass.Outcome = OutcomeSkipped
			l.Error("Feed unavailable, pass skipped", zap.Error(err))
			return pass
		}

		pass.Outcome = OutcomeRolledBack
		l.Error("Reconciliation failed, pass rolled back", zap.Error(err))
		return pass
	}

	pass.Outcome = OutcomeCommitted
	pass.Stats = stats
	for entity, c := range stats {
		metrics.AddRecords(entity, c.Created, c.Updated, c.Skipped)
	}

	total := stats.Total()
	l.Info("Reconciliation pass committed",
		zap.Int("created", total.Created),
		zap.Int("updated", total.Updated),
		zap.Int("skipped", total.Skipped),
	)
	return pass
}

func (s *Syncer) runHooks(ctx context.Context, l *zap.Logger, pass PassReport) {
	for _, h := range s.hooks {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					l.Error("Commit hook panicked", zap.Any("panic", rec))
				}
			}()
			h(ctx, pass)
		}()
	}
}
