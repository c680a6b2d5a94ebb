// Package ratelimit implements a sliding-window request limiter keyed by
// authenticated user_id. Anonymous callers bypass it entirely.
package ratelimit

import (
	"sync"
	"time"

	"github.com/swarm-blackjack/tablecore/internal/apierrors"
)

const window = 60 * time.Second

// Limiter tracks request timestamps per principal key under a single lock.
type Limiter struct {
	mu               sync.Mutex
	requests         map[string][]time.Time
	requestsPerMin   int
	nowFn            func() time.Time
}

func New(requestsPerMinute int) *Limiter {
	return &Limiter{
		requests:       make(map[string][]time.Time),
		requestsPerMin: requestsPerMinute,
		nowFn:          time.Now,
	}
}

// Check enforces at most N requests per 60-second window for key.
// 1. Drop instants older than now-60s from the head.
// 2. If remaining count >= N, fail.
// 3. Otherwise append now and succeed.
func (l *Limiter) Check(key string) error {
	// An empty key is an anonymous caller, which is never limited.
	if key == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	cutoff := now.Add(-window)

	bucket := l.requests[key]
	i := 0
	for i < len(bucket) && bucket[i].Before(cutoff) {
		i++
	}
	bucket = bucket[i:]

	if len(bucket) >= l.requestsPerMin {
		l.requests[key] = bucket
		return apierrors.ErrRateLimitExceeded
	}

	l.requests[key] = append(bucket, now)
	return nil
}
