// Package clock abstracts wall-clock reads and deadline waits so the
// countdown loop can be driven by a fake clock in tests.
package clock

import (
	"context"
	"time"
)

// Clock provides the current time and a cooperative wait bound to an
// absolute deadline.
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until deadline has been reached or ctx is done.
	// A deadline in the past returns immediately.
	SleepUntil(ctx context.Context, deadline time.Time) error
}

// Real is the Clock backed by the time package.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) SleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
