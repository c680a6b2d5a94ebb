package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBusPublishDeliversToSubscriber(t *testing.T) {
	b := NewBus()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	evt := GameEvent{ID: "1", GameID: uuid.New(), Type: TypeCardDrawn, Timestamp: time.Unix(0, 0)}
	b.Publish(evt)

	select {
	case got := <-ch:
		assert.Equal(t, evt, got)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestBusSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBus()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	for i := 0; i < 64; i++ {
		b.Publish(GameEvent{ID: "x", Type: TypeCardDrawn})
	}
}

func TestPublisherWithoutRedisStillFansOutLocally(t *testing.T) {
	b := NewBus()
	p := NewPublisher(b)
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	p.Publish(GameEvent{ID: "1", Type: TypeGameFinished})

	select {
	case got := <-ch:
		assert.Equal(t, TypeGameFinished, got.Type)
	case <-time.After(time.Second):
		t.Fatal("expected local fan-out even without redis")
	}
}
