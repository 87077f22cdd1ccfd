package ratelimit

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// janitorInterval controls how often idle client limiters are evicted.
const janitorInterval = time.Minute

// Store keeps one token-bucket limiter per client key.
type Store struct {
	rps   float64
	burst int

	mu       sync.Mutex
	limiters map[string]*entry

	stop chan struct{}
	once sync.Once
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewStore creates a limiter store and starts its eviction janitor.
// A burst below 1 is raised to 1 so a configured limit always admits
// at least one request.
func NewStore(rps float64, burst int) *Store {
	if burst < 1 {
		burst = 1
	}
	s := &Store{
		rps:      rps,
		burst:    burst,
		limiters: map[string]*entry{},
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Allow reports whether the client identified by key may proceed.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	e, ok := s.limiters[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.limiters[key] = e
	}
	e.lastSeen = time.Now()
	s.mu.Unlock()
	return e.lim.Allow()
}

// Close stops the eviction janitor.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, e := range s.limiters {
				if now.Sub(e.lastSeen) > 3*janitorInterval {
					delete(s.limiters, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// New returns a middleware that rate limits requests per client IP.
// Blocked requests get 429 with a Retry-After header.
func New(store *Store, retryAfter time.Duration) fiber.Handler {
	if retryAfter <= 0 {
		retryAfter = time.Second
	}
	return func(c *fiber.Ctx) error {
		if store.Allow(c.IP()) {
			return c.Next()
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "rate limit exceeded",
		})
	}
}
