// Package countdown drives the once-per-second countdown loop.
//
// Wake-ups are scheduled against absolute deadlines (start + k seconds)
// so time spent rendering a tick never accumulates into drift.
package countdown

import (
	"context"
	"fmt"
	"time"

	"github.com/flarebyte/timers/internal/clock"
	"go.uber.org/zap"
)

// Tick is the spacing between two renders.
const Tick = time.Second

// Display shows the remaining seconds.
type Display interface {
	Clear() error
	Render(remaining int64) error
}

// Notifier is told once when the countdown reaches zero.
type Notifier interface {
	Notify(ctx context.Context) error
}

// Scheduler runs one countdown. Log may be nil.
type Scheduler struct {
	Clock    clock.Clock
	Display  Display
	Notifier Notifier
	Log      *zap.Logger
}

// Run counts down from total seconds. For each elapsed second it clears
// the display and renders total-elapsed, then waits until the next
// absolute tick deadline. When the count reaches zero the notifier is
// called exactly once. A zero total renders nothing and notifies at once.
//
// Display and notifier errors abort the run and are returned. If ctx is
// cancelled the run stops without notifying.
func (s *Scheduler) Run(ctx context.Context, total int64) error {
	if total < 0 {
		return fmt.Errorf("countdown: negative total %d", total)
	}
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	start := s.Clock.Now()
	log.Debug("countdown started", zap.Int64("total", total), zap.Time("start", start))
	for elapsed := int64(0); elapsed < total; elapsed++ {
		remaining := total - elapsed
		if err := s.Display.Clear(); err != nil {
			return fmt.Errorf("clear display: %w", err)
		}
		if err := s.Display.Render(remaining); err != nil {
			return fmt.Errorf("render %d: %w", remaining, err)
		}
		deadline := start.Add(time.Duration(elapsed+1) * Tick)
		if err := s.Clock.SleepUntil(ctx, deadline); err != nil {
			log.Debug("countdown interrupted", zap.Int64("remaining", remaining), zap.Error(err))
			return err
		}
		log.Debug("tick",
			zap.Int64("remaining", remaining-1),
			zap.Duration("lag", s.Clock.Now().Sub(deadline)),
		)
	}
	if err := s.Notifier.Notify(ctx); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	log.Debug("countdown finished", zap.Duration("took", s.Clock.Now().Sub(start)))
	return nil
}
