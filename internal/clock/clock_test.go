package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReal_SleepUntilWaitsForDeadline(t *testing.T) {
	var c Real
	deadline := c.Now().Add(50 * time.Millisecond)
	require.NoError(t, c.SleepUntil(context.Background(), deadline))
	assert.False(t, c.Now().Before(deadline))
}

func TestReal_SleepUntilPastDeadlineReturnsImmediately(t *testing.T) {
	var c Real
	start := time.Now()
	require.NoError(t, c.SleepUntil(context.Background(), start.Add(-time.Second)))
	assert.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestReal_SleepUntilHonoursCancel(t *testing.T) {
	var c Real
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.SleepUntil(ctx, time.Now().Add(time.Minute))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
