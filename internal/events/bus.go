// Package events is the non-core real-time push channel: it fans game
// state changes out to subscribed clients. It is not consulted by the
// engine or the Game Registry for any correctness decision — the core runs
// identically whether or not anyone is listening.
package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// GameEvent is one published notification about a game's state.
type GameEvent struct {
	ID        string    `json:"id"`
	GameID    uuid.UUID `json:"gameId"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Event type names.
const (
	TypePlayerEnrolled    = "player_enrolled"
	TypeEnrollmentClosed  = "enrollment_closed"
	TypeCardDrawn         = "card_drawn"
	TypePlayerStood       = "player_stood"
	TypeGameFinished      = "game_finished"
	TypePlayerKicked      = "player_kicked"
	TypeInvitationCreated = "invitation_created"
)

// Bus fans events out to all locally-subscribed clients.
type Bus struct {
	mu      sync.RWMutex
	clients map[chan GameEvent]struct{}
}

func NewBus() *Bus {
	return &Bus{clients: make(map[chan GameEvent]struct{})}
}

func (b *Bus) Subscribe() chan GameEvent {
	ch := make(chan GameEvent, 32)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Bus) Unsubscribe(ch chan GameEvent) {
	b.mu.Lock()
	delete(b.clients, ch)
	b.mu.Unlock()
	close(ch)
}

func (b *Bus) Publish(evt GameEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.clients {
		select {
		case ch <- evt:
		default:
			// slow client — drop rather than block the publisher
		}
	}
}

// redisChannel is the pub/sub channel every tablecore process shares when a
// Redis broker is configured, letting multiple instances fan the same
// events out to their own locally-connected clients.
const redisChannel = "tablecore:events"

// Publisher publishes GameEvents to the local Bus and, when connected, to
// Redis so other instances' buses see the same events. It degrades to
// local-only fan-out if Redis was never reachable — after its last attempt
// Connect logs and moves on rather than failing startup on a broker that
// may not exist in this deployment.
type Publisher struct {
	bus *Bus
	rdb *redis.Client
}

// NewPublisher wraps bus with no Redis connection. Call Connect to attempt
// one.
func NewPublisher(bus *Bus) *Publisher {
	return &Publisher{bus: bus}
}

// Connect retries addr a fixed number of times with a fixed backoff.
// Failure is not fatal: Publish still fans out locally.
func (p *Publisher) Connect(addr string, attempts int, backoff time.Duration) {
	for i := 0; i < attempts; i++ {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			log.Printf("[events] redis connected at %s", addr)
			p.rdb = rdb
			go p.subscribe()
			return
		}
		log.Printf("[events] redis not ready (%d/%d), retrying...", i+1, attempts)
		rdb.Close()
		time.Sleep(backoff)
	}
	log.Printf("[events] redis unavailable at %s — falling back to local-only fan-out", addr)
}

// subscribe relays messages from the shared Redis channel into the local
// bus, so this process's clients also see events published by others.
func (p *Publisher) subscribe() {
	sub := p.rdb.Subscribe(context.Background(), redisChannel)
	defer sub.Close()

	ch := sub.Channel()
	for msg := range ch {
		var evt GameEvent
		if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
			log.Printf("[events] malformed event on %s: %v", redisChannel, err)
			continue
		}
		p.bus.Publish(evt)
	}
}

// Publish fans evt out locally and, if connected, broadcasts it to Redis
// for other instances. Redis publish errors are logged, not returned —
// the core operation this event describes has already committed.
func (p *Publisher) Publish(evt GameEvent) {
	p.bus.Publish(evt)

	if p.rdb == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[events] marshal error: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.rdb.Publish(ctx, redisChannel, payload).Err(); err != nil {
		log.Printf("[events] redis publish error: %v", err)
	}
}

// Close releases the Redis connection, if one was established.
func (p *Publisher) Close() error {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
