// Package cliargs holds the argument validation and error reporting shared
// by the timers commands.
package cliargs

import (
	"errors"
	"fmt"

	"github.com/flarebyte/timers/internal/duration"
	"github.com/spf13/cobra"
)

// ArgumentError reports a missing or malformed command-line argument.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// ErrMissingDuration is the message used when no duration was supplied.
const ErrMissingDuration = "didn't get a countdown"

// OneDuration accepts exactly one positional argument.
func OneDuration(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &ArgumentError{Msg: ErrMissingDuration}
	case 1:
		return nil
	default:
		return &ArgumentError{Msg: fmt.Sprintf("expected a single duration, got %d arguments", len(args))}
	}
}

// FlagError turns pflag parse failures into ArgumentErrors.
func FlagError(_ *cobra.Command, err error) error {
	return &ArgumentError{Msg: err.Error()}
}

// IsUsage reports whether err came from bad user input rather than from
// the display or notification side.
func IsUsage(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae) || errors.Is(err, duration.ErrInvalid)
}

// Describe returns the one-line message printed to stderr for err.
func Describe(err error) string {
	if IsUsage(err) {
		return "Problem parsing arguments: " + err.Error()
	}
	return "Error: " + err.Error()
}
