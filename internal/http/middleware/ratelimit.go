package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles requests per client IP to perMinute with a burst of
// the same size. Throttled requests get 429. perMinute <= 0 disables it.
func LoginLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
		every    = rate.Every(time.Minute / time.Duration(perMinute))
	)

	allow := func(ip string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if len(visitors) >= limiterSweepSize {
			for k, v := range visitors {
				if now.Sub(v.lastSeen) > limiterIdleTTL {
					delete(visitors, k)
				}
			}
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(every, perMinute)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter.AllowN(now, 1)
	}

	return func(c *fiber.Ctx) error {
		if !allow(c.IP(), time.Now()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return fiber.NewError(fiber.StatusTooManyRequests, "too many login attempts")
		}
		return c.Next()
	}
}
