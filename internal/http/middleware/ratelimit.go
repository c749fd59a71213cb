// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements a process-local token-bucket limiter
// (golang.org/x/time/rate) with one bucket per client key. Idle buckets are
// evicted opportunistically. Requests flagged as idempotent replays by
// IdempotencyValidator do not consume tokens.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/platcon/platcon-api/internal/resmsg"
)

const (
	visitorTTL     = 10 * time.Minute
	gcEveryLookups = 5000
)

// KeyFunc maps a request to its bucket.
type KeyFunc func(*gin.Context) string

// KeyByClientIP buckets requests per client address.
func KeyByClientIP() KeyFunc {
	return func(c *gin.Context) string { return "ip:" + c.ClientIP() }
}

// KeyByClientIPAndMethod gives writes and reads separate buckets so bulk
// reads cannot starve creates from the same client.
func KeyByClientIPAndMethod() KeyFunc {
	return func(c *gin.Context) string { return "ip:" + c.ClientIP() + "|" + c.Request.Method }
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds per-key buckets. Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn KeyFunc

	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	lookups  uint64
}

// NewRateLimiter builds a limiter refilling rps tokens per second with the
// given burst (coerced to at least 1).
func NewRateLimiter(rps float64, burst int, keyFn KeyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	if keyFn == nil {
		keyFn = KeyByClientIP()
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
		ttl:      visitorTTL,
	}
}

// getVisitor returns the bucket for key. Eviction runs before the lookup so a
// stale bucket is replaced rather than refreshed.
func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= gcEveryLookups {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Size reports the number of live buckets.
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// IsRateBypass reports whether IdempotencyValidator exempted this request.
func IsRateBypass(c *gin.Context) bool {
	return c.GetBool(ctxKeyRateBypass)
}

// Handler enforces the limit. Rejected requests get 429 with Retry-After and
// the standard error body.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		r := rl.getVisitor(rl.keyFn(c)).Reserve()
		if r.OK() && r.Delay() == 0 {
			c.Next()
			return
		}
		retry := 1
		if r.OK() {
			retry = int(math.Ceil(r.Delay().Seconds()))
			r.Cancel()
		}

		c.Header("Retry-After", strconv.Itoa(retry))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			resmsg.NewErrorBody(http.StatusTooManyRequests, "Too many requests, retry in "+strconv.Itoa(retry)+"s"))
	}
}
