// Package notify delivers the completion notification through the host
// desktop notification service.
package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

const (
	DefaultTitle = "Timer"
	DefaultBody  = "Time's up!"
	DefaultIcon  = "clock"
)

// AppName is reported to the notification service as the sender.
const AppName = "timers"

// Desktop sends one desktop notification per Notify call.
type Desktop struct {
	Title string
	Body  string
	Icon  string

	// send defaults to beeep.Notify; tests replace it.
	send func(title, message string, icon any) error
}

// NewDesktop returns a Desktop notifier. Empty fields fall back to the
// defaults.
func NewDesktop(title, body, icon string) *Desktop {
	if title == "" {
		title = DefaultTitle
	}
	if body == "" {
		body = DefaultBody
	}
	if icon == "" {
		icon = DefaultIcon
	}
	beeep.AppName = AppName
	return &Desktop{Title: title, Body: body, Icon: icon, send: beeep.Notify}
}

// Notify delivers the notification. beeep does not take a context, so
// ctx is only checked before sending.
func (d *Desktop) Notify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	send := d.send
	if send == nil {
		send = beeep.Notify
	}
	if err := send(d.Title, d.Body, d.Icon); err != nil {
		return fmt.Errorf("deliver %q: %w", d.Title, err)
	}
	return nil
}
