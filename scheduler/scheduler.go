package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/models"
)

// Refresher recomputes the unread snapshot. ok is false when the underlying
// fetch failed and the snapshot carries no information.
type Refresher interface {
	Refresh(ctx context.Context) (snapshot models.UnreadSnapshot, ok bool)
}

// Subscriber receives each recomputed unread snapshot.
type Subscriber func(snapshot models.UnreadSnapshot)

// Scheduler owns the single periodic unread refresh shared by every consumer,
// so two badge widgets never start two polling loops against the same count.
type Scheduler struct {
	cron     *cron.Cron
	counter  Refresher
	interval time.Duration

	mu          sync.Mutex
	subscribers map[string]Subscriber
	last        models.UnreadSnapshot
}

// New creates a scheduler around the counter. A non-positive interval falls
// back to the 30 second default.
func New(counter Refresher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		counter:     counter,
		interval:    interval,
		subscribers: make(map[string]Subscriber),
	}
}

// Start registers the refresh job, runs one immediate refresh, and begins the
// interval.
func (s *Scheduler) Start() {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, s.refresh)
	if err != nil {
		zap.S().Errorw("failed to register unread refresh job", "error", err)
	}
	s.cron.Start()
	zap.S().Infow("unread refresh scheduler started", "interval", s.interval.String())

	s.refresh()
}

// Stop gracefully stops the scheduler, waiting for a running refresh to
// finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("unread refresh scheduler stopped")
}

// Subscribe registers fn for every future snapshot and returns its
// unsubscribe. fn is immediately called with the last known snapshot.
func (s *Scheduler) Subscribe(fn Subscriber) (unsubscribe func()) {
	id := uuid.NewString()
	s.mu.Lock()
	s.subscribers[id] = fn
	last := s.last
	s.mu.Unlock()

	fn(last)
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Kick forces an immediate refresh outside the interval, used after
// mark-read, mark-all-read, delete and app foreground.
func (s *Scheduler) Kick() {
	s.refresh()
}

// Last returns the most recent snapshot.
func (s *Scheduler) Last() models.UnreadSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout())
	defer cancel()

	snapshot, ok := s.counter.Refresh(ctx)
	if !ok {
		// keep the last known counts; a failed fetch must stay invisible
		zap.S().Warn("unread refresh failed, keeping previous snapshot")
		return
	}

	s.mu.Lock()
	s.last = snapshot
	fns := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// refreshTimeout keeps an in-flight refresh from overlapping the next tick.
func (s *Scheduler) refreshTimeout() time.Duration {
	timeout := s.interval - time.Second
	if timeout < time.Second {
		timeout = time.Second
	}
	return timeout
}
