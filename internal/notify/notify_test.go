package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	title, body string
	icon        any
}

func capture(d *Desktop, err error) *[]sent {
	var got []sent
	d.send = func(title, message string, icon any) error {
		got = append(got, sent{title, message, icon})
		return err
	}
	return &got
}

func TestNewDesktop_Defaults(t *testing.T) {
	d := NewDesktop("", "", "")
	assert.Equal(t, "Timer", d.Title)
	assert.Equal(t, "Time's up!", d.Body)
	assert.Equal(t, "clock", d.Icon)
}

func TestNotify_SendsConfiguredFields(t *testing.T) {
	d := NewDesktop("Tea", "Steeped", "cup")
	got := capture(d, nil)

	require.NoError(t, d.Notify(context.Background()))
	require.Len(t, *got, 1)
	assert.Equal(t, sent{"Tea", "Steeped", "cup"}, (*got)[0])
}

func TestNotify_WrapsDeliveryError(t *testing.T) {
	boom := errors.New("dbus unavailable")
	d := NewDesktop("", "", "")
	capture(d, boom)

	err := d.Notify(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"Timer"`)
}

func TestNotify_CancelledContext(t *testing.T) {
	d := NewDesktop("", "", "")
	got := capture(d, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, d.Notify(ctx), context.Canceled)
	assert.Empty(t, *got)
}
