// Package ratelimit enforces per-client request limits using token
// buckets from golang.org/x/time/rate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxBucketIdle is how long a client bucket may sit unused before the
// cleanup pass reclaims it.
const maxBucketIdle = time.Hour

// Info describes the rate limit state behind a single allow/deny
// decision. Fields map onto the X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int           // Requests permitted per window (0 = unlimited)
	Remaining  int           // Tokens left in the bucket
	ResetTime  time.Time     // When the bucket is back at capacity
	RetryAfter time.Duration // Wait before retrying (set when denied)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// clientBucket pairs a token bucket with its last access time so idle
// entries can be reclaimed.
type clientBucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter tracks one token bucket per client, endpoint and method
// combination.
type Limiter struct {
	config *Config

	mu      sync.Mutex
	buckets map[string]*clientBucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with the given configuration. A nil
// config enables limiting with the package defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    300,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			EndpointConfigs: DefaultEndpointConfigs(),
		}
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*clientBucket),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID may proceed against the
// given endpoint and method, along with the current limit state.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}

	// A non-positive limit means the endpoint is unmetered.
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	bucket := l.bucketFor(clientID+":"+endpoint+":"+method, cfg, now)

	res := bucket.ReserveN(now, 1)
	if !res.OK() {
		// The burst is smaller than a single request; nothing can
		// ever be admitted, so report a full-window wait.
		return false, Info{Limit: cfg.Limit, RetryAfter: cfg.Window}
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, Info{
			Limit:      cfg.Limit,
			ResetTime:  fullAt(bucket, now),
			RetryAfter: delay,
		}
	}

	remaining := int(bucket.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return true, Info{
		Allowed:   true,
		Limit:     cfg.Limit,
		Remaining: remaining,
		ResetTime: fullAt(bucket, now),
	}
}

// bucketFor returns the bucket for key, creating it on first use, and
// marks it as recently accessed.
func (l *Limiter) bucketFor(key string, cfg *EndpointConfig, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(refillRate(cfg), burstSize(cfg))}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b.limiter
}

// refillRate converts a limit-per-window config into tokens per second.
func refillRate(cfg *EndpointConfig) rate.Limit {
	if cfg.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds())
}

// burstSize returns the burst capacity, defaulting to the full limit.
func burstSize(cfg *EndpointConfig) int {
	if cfg.Burst > 0 {
		return cfg.Burst
	}
	return cfg.Limit
}

// fullAt reports when the bucket will be back at burst capacity.
func fullAt(bucket *rate.Limiter, now time.Time) time.Time {
	missing := float64(bucket.Burst()) - bucket.TokensAt(now)
	if missing <= 0 {
		return now
	}
	wait := missing / float64(bucket.Limit())
	return now.Add(time.Duration(wait * float64(time.Second)))
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdleBuckets(time.Now().Add(-maxBucketIdle))
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdleBuckets drops buckets whose last access predates cutoff.
func (l *Limiter) removeIdleBuckets(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
