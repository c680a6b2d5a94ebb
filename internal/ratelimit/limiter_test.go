package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
)

func TestCheckAllowsUpToLimit(t *testing.T) {
	l := New(3)
	for i := 0; i < 3; i++ {
		assert.NoError(t, l.Check("user-1"))
	}
	assert.ErrorIs(t, l.Check("user-1"), apierrors.ErrRateLimitExceeded)
}

func TestCheckIndependentKeys(t *testing.T) {
	l := New(1)
	assert.NoError(t, l.Check("user-1"))
	assert.NoError(t, l.Check("user-2"))
	assert.ErrorIs(t, l.Check("user-1"), apierrors.ErrRateLimitExceeded)
}

func TestCheckWindowSlides(t *testing.T) {
	l := New(1)
	current := time.Now()
	l.nowFn = func() time.Time { return current }

	assert.NoError(t, l.Check("user-1"))
	assert.ErrorIs(t, l.Check("user-1"), apierrors.ErrRateLimitExceeded)

	current = current.Add(61 * time.Second)
	assert.NoError(t, l.Check("user-1"))
}
