package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/domain/dto"
)

type client struct {
	windowStart time.Time
	count       int
}

// RateLimiter allows up to limit requests per window for each client IP
// and answers 429 beyond that. A non-positive limit disables limiting.
//
// Counters live in process memory, so each replica limits independently.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
		sweptAt = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		// drop idle clients at most once per window
		if now.Sub(sweptAt) > window {
			for k, cl := range clients {
				if now.Sub(cl.windowStart) > window {
					delete(clients, k)
				}
			}
			sweptAt = now
		}
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		resetAt := cl.windowStart.Add(window)
		mu.Unlock()

		if exceeded {
			wait := int(math.Ceil(resetAt.Sub(now).Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(wait, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("Rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
