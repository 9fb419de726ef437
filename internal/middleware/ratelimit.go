// Package middleware provides the Gin middleware the API server mounts.
package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"seoKeywordAnalyzerGO/internal/config"
)

// RateLimiter throttles requests per client IP using token buckets.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perIP    rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing the configured requests per
// second with the configured burst for each client IP.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		perIP:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}
}

// RateLimit rejects requests that exceed the client's bucket with 429.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status_code": http.StatusTooManyRequests,
				"message":     "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// getLimiter returns or creates the limiter for the given IP.
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[ip]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.perIP, rl.burst)
	rl.limiters[ip] = limiter

	return limiter
}
