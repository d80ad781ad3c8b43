package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	ActionSendMessage    = "send_message"
	ActionStartChat      = "start_chat"
	ActionSubmitTicket   = "submit_ticket"
	ActionUploadFile     = "upload_file"
	bucketIdleExpiration = time.Hour
)

// Policy is a token bucket: Burst tokens, one more every Every.
type Policy struct {
	Burst int
	Every time.Duration
}

var defaultPolicies = map[string]Policy{
	ActionSendMessage:  {Burst: 10, Every: 6 * time.Second},
	ActionStartChat:    {Burst: 5, Every: 12 * time.Minute},
	ActionSubmitTicket: {Burst: 3, Every: 10 * time.Minute},
}

var fallbackPolicy = Policy{Burst: 20, Every: 3 * time.Second}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one limiter per user and action.
type RateLimiter struct {
	buckets  map[string]*bucket
	policies map[string]Policy
	now      func() time.Time
	mutex    sync.RWMutex
}

func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithPolicies(defaultPolicies)
}

func NewRateLimiterWithPolicies(policies map[string]Policy) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		policies: policies,
		now:      time.Now,
	}
}

// Allow consumes a token for the user action. When none is left it reports how
// long until one is.
func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	now := rl.now()
	b := rl.bucketFor(userID+":"+action, action, now)

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (rl *RateLimiter) bucketFor(key, action string, now time.Time) *bucket {
	rl.mutex.RLock()
	b, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if exists {
		rl.mutex.Lock()
		b.lastSeen = now
		rl.mutex.Unlock()
		return b
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if b, exists = rl.buckets[key]; !exists {
		policy, ok := rl.policies[action]
		if !ok {
			policy = fallbackPolicy
		}
		b = &bucket{limiter: rate.NewLimiter(rate.Every(policy.Every), policy.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

// Cleanup removes buckets idle for longer than an hour.
func (rl *RateLimiter) Cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > bucketIdleExpiration {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup every 30 minutes until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}
