package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup1()
	defer cleanup2()

	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(Event{Entity: "attendance_records", Action: "created"})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "attendance_records", ev1.Entity)
	assert.Equal(t, "created", ev2.Action)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount())

	// Publishing with no subscribers must not panic.
	hub.Publish(Event{Entity: "vendor_payments", Action: "created"})
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	defer cleanup()

	// Channel capacity is 10; publishing more must not block.
	for i := 0; i < 25; i++ {
		hub.Publish(Event{Entity: "shift_assignments", Action: "updated"})
	}
}
