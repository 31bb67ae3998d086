package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a per-key refillable bucket. Registration, the contact
// form, and engagement writes are cheap to spam, so each caller gets a
// bounded allowance that refills over time.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

type RateLimiter struct {
	buckets map[string]*TokenBucket
	mutex   sync.RWMutex

	maxTokens  int
	refillRate int
	refillTime time.Duration
}

func NewRateLimiter(maxTokens, refillRate int, refillTime time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}
}

func newTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available.
func (tb *TokenBucket) Allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	if elapsed >= tb.refillTime {
		refills := int(elapsed / tb.refillTime)
		tb.tokens += refills * tb.refillRate
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = tb.lastRefill.Add(time.Duration(refills) * tb.refillTime)
	}

	if tb.tokens <= 0 {
		return false
	}
	tb.tokens--
	return true
}

// Allow returns whether the keyed caller may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.RLock()
	bucket, ok := rl.buckets[key]
	rl.mutex.RUnlock()

	if !ok {
		rl.mutex.Lock()
		bucket, ok = rl.buckets[key]
		if !ok {
			bucket = newTokenBucket(rl.maxTokens, rl.refillRate, rl.refillTime)
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow()
}

// Cleanup drops buckets idle longer than maxIdle. Run periodically.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := bucket.lastRefill.Before(cutoff) && bucket.tokens == bucket.maxTokens
		bucket.mutex.Unlock()
		if idle {
			delete(rl.buckets, key)
		}
	}
}
