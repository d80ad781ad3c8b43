package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowSendMessageBurst(t *testing.T) {
	now := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter()
	rl.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		ok, _ := rl.Allow("alice", ActionSendMessage)
		assert.True(t, ok, "message %d should pass", i+1)
	}

	ok, wait := rl.Allow("alice", ActionSendMessage)
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, 6*time.Second)

	// Other users and actions have their own buckets.
	ok, _ = rl.Allow("bob", ActionSendMessage)
	assert.True(t, ok)

	now = now.Add(6 * time.Second)
	ok, _ = rl.Allow("alice", ActionSendMessage)
	assert.True(t, ok)
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter()
	rl.now = func() time.Time { return now }

	rl.Allow("alice", ActionSendMessage)
	rl.Allow("bob", "unknown_action")
	assert.Len(t, rl.buckets, 2)

	now = now.Add(2 * time.Hour)
	rl.Allow("bob", "unknown_action")
	rl.Cleanup()

	assert.Len(t, rl.buckets, 1)
	assert.Contains(t, rl.buckets, "bob:unknown_action")
}
