package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-api/internal/events"
)

func TestDispatcherInvokesAllHandlers(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(events.EventContactReceived, func(context.Context, events.Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(events.EventContactReceived, func(context.Context, events.Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), events.Event{Type: events.EventContactReceived})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, calls, "a failing handler must not stop the rest")
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), events.Event{Type: events.EventUserSignedIn}))
}
