package cliargs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/flarebyte/timers/internal/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneDuration(t *testing.T) {
	err := OneDuration(nil, nil)
	require.Error(t, err)
	assert.Equal(t, "didn't get a countdown", err.Error())

	require.NoError(t, OneDuration(nil, []string{"1m"}))

	err = OneDuration(nil, []string{"1m", "2s"})
	assert.True(t, IsUsage(err))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Problem parsing arguments: didn't get a countdown",
		Describe(&ArgumentError{Msg: ErrMissingDuration}))

	_, perr := duration.Parse("1x")
	wrapped := fmt.Errorf("countdown: %w", perr)
	assert.Equal(t, "Problem parsing arguments: "+wrapped.Error(), Describe(wrapped))

	assert.Equal(t, "Error: notify: no daemon", Describe(errors.New("notify: no daemon")))
}

func TestFlagError(t *testing.T) {
	err := FlagError(nil, errors.New("unknown shorthand flag: '5' in -5s"))
	assert.True(t, IsUsage(err))
}
