package parse

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/flarebyte/timers/internal/cliargs"
	"github.com/flarebyte/timers/internal/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { flagJSON = false })
	var out bytes.Buffer
	ParseCmd.SetOut(&out)
	ParseCmd.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	ParseCmd.SetArgs(args)
	ParseCmd.SilenceUsage = true
	ParseCmd.SilenceErrors = true
	err := ParseCmd.Execute()
	return out.String(), err
}

func TestParseCmd_Table(t *testing.T) {
	out, err := run(t, "90s1h")
	require.NoError(t, err)
	assert.Contains(t, out, "hours")
	assert.Contains(t, out, "SECONDS")
	assert.Contains(t, out, "1h1m30s")
	assert.Contains(t, out, "3690")
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := run(t, "--json", "10m10s")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "10m10s", got["input"])
	assert.EqualValues(t, 10, got["minutes"])
	assert.EqualValues(t, 10, got["seconds"])
	assert.EqualValues(t, 0, got["hours"])
	assert.EqualValues(t, 610, got["total_seconds"])
	assert.Equal(t, "10m10s", got["canonical"])
}

func TestParseCmd_InvalidDuration(t *testing.T) {
	_, err := run(t, "1h30")
	require.ErrorIs(t, err, duration.ErrInvalid)
	assert.True(t, cliargs.IsUsage(err))
}

func TestParseCmd_MissingArgument(t *testing.T) {
	_, err := run(t)
	require.Error(t, err)
	assert.Equal(t, "Problem parsing arguments: didn't get a countdown", cliargs.Describe(err))
}
