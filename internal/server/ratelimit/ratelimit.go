// Package ratelimit keeps a token bucket per client and route class.
package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
)

// Class groups the routes that share one budget.
type Class string

const (
	ClassRead   Class = "read"
	ClassSubmit Class = "submit"
	ClassBatch  Class = "batch"
)

// Classify maps a request to its budget. Health checks are never limited.
func Classify(method, path string) (Class, bool) {
	switch {
	case method == http.MethodGet && path == "/health":
		return "", false
	case method == http.MethodPost && path == "/screenings":
		return ClassSubmit, true
	case method == http.MethodPost && path == "/screenings/batch":
		return ClassBatch, true
	default:
		return ClassRead, true
	}
}

// Info describes the outcome of one Allow call. Limit is 0 for unlimited requests.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// Limiter tracks one rate.Limiter per client and class. Buckets idle for longer
// than the configured TTL are dropped on a later call.
type Limiter struct {
	policies map[Class]config.RatePolicy
	exempt   map[string]bool
	idleTTL  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// New builds a Limiter from cfg. It returns nil when rate limiting is disabled.
func New(cfg config.RateLimitConfig) *Limiter {
	if !cfg.Enabled {
		return nil
	}
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	exempt := make(map[string]bool, len(cfg.Exempt))
	for _, id := range cfg.Exempt {
		exempt[id] = true
	}
	return &Limiter{
		policies: map[Class]config.RatePolicy{
			ClassRead:   cfg.Read,
			ClassSubmit: cfg.Submit,
			ClassBatch:  cfg.Batch,
		},
		exempt:  exempt,
		idleTTL: ttl,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// Allow spends one token of clientID's budget for the request's class.
func (l *Limiter) Allow(clientID, method, path string) Info {
	class, limited := Classify(method, path)
	if !limited || l.exempt[clientID] {
		return Info{Allowed: true}
	}
	policy := l.policies[class]
	if policy.PerMinute <= 0 {
		return Info{Allowed: true}
	}

	now := l.now()
	lim := l.bucket(clientID+" "+string(class), policy, now)
	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     policy.PerMinute,
		Remaining: max(int(tokens), 0),
		ResetTime: now.Add(refill(lim, float64(lim.Burst())-tokens)),
	}
	if !allowed {
		info.RetryAfter = refill(lim, 1-tokens)
	}
	return info
}

func (l *Limiter) bucket(key string, policy config.RatePolicy, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idleTTL {
		for k, c := range l.clients {
			if now.Sub(c.seen) >= l.idleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		burst := policy.Burst
		if burst <= 0 {
			burst = policy.PerMinute
		}
		c = &client{limiter: rate.NewLimiter(rate.Limit(float64(policy.PerMinute)/60), burst)}
		l.clients[key] = c
	}
	c.seen = now
	return c.limiter
}

// refill returns how long lim takes to gain n tokens.
func refill(lim *rate.Limiter, n float64) time.Duration {
	if n <= 0 || lim.Limit() <= 0 {
		return 0
	}
	return time.Duration(n / float64(lim.Limit()) * float64(time.Second))
}
