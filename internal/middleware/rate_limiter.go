package middleware

import (
	"net/http"
	"sync"
	"time"

	"lavapos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// bucket tracks request counts per client IP within a sliding window.
type bucket struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limiter is a per-IP sliding-window rate limiter. Each instance owns its own
// map, so login and general API limits are tracked independently.
type limiter struct {
	limit   int
	window  time.Duration
	message string

	buckets map[string]*bucket
	mu      sync.Mutex
}

func newLimiter(limit int, window time.Duration, message string) *limiter {
	l := &limiter{
		limit:   limit,
		window:  window,
		message: message,
		buckets: make(map[string]*bucket),
	}
	go l.purgeLoop()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		b, ok := l.buckets[ip]
		if !ok {
			b = &bucket{}
			l.buckets[ip] = b
		}
		l.mu.Unlock()

		b.mu.Lock()
		defer b.mu.Unlock()

		now := time.Now()
		if now.After(b.windowEnd) {
			b.count = 0
			b.windowEnd = now.Add(l.window)
		}

		b.count++
		if b.count > l.limit {
			c.Header("Retry-After", b.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// purgeLoop drops expired buckets so IPs that never return do not accumulate.
func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, b := range l.buckets {
			b.mu.Lock()
			if now.After(b.windowEnd) {
				delete(l.buckets, ip)
				purged++
			}
			b.mu.Unlock()
		}
		remaining := len(l.buckets)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter buckets purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general-purpose API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
