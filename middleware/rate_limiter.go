package middleware

import (
	"net/http"
	"sync"
	"time"

	"skillbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterEntry pairs a per-client limiter with its last use, so idle entries
// can be evicted and the store stays bounded.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterStore holds per-IP rate limiters with TTL eviction. Its
// lifecycle is owned by the caller: construct it at startup, Close it at
// shutdown.
type RateLimiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	done    chan struct{}
}

// NewRateLimiterStore creates a store allowing requestsPerMin sustained
// requests per client and evicting limiters idle longer than ttl.
func NewRateLimiterStore(requestsPerMin int, ttl time.Duration) *RateLimiterStore {
	s := &RateLimiterStore{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:   requestsPerMin,
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.evictLoop()
	return s
}

// Close stops the eviction goroutine.
func (s *RateLimiterStore) Close() {
	close(s.done)
}

// Allow reports whether the client may proceed.
func (s *RateLimiterStore) Allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (s *RateLimiterStore) evictLoop() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for ip, entry := range s.entries {
				if entry.lastSeen.Before(cutoff) {
					delete(s.entries, ip)
				}
			}
			s.mu.Unlock()
		}
	}
}

// size reports the current number of tracked clients. Test hook.
func (s *RateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RateLimitMiddleware limits requests per client IP using the given store.
func RateLimitMiddleware(store *RateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.Allow(ip) {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			utils.RespondError(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Rate limit exceeded. Try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
