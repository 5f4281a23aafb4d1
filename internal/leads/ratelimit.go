package leads

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/RMTN1/silicon-prairie/internal/config"
)

// pruneThreshold is the map size above which idle limiters are dropped
const pruneThreshold = 4096

// Limiter keeps one token bucket per client key
type Limiter struct {
	mu       sync.RWMutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows perMinute events per key with the given burst
func NewLimiter(perMinute, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*entry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func NewLimiterFromConfig(cfg *config.Config) *Limiter {
	return NewLimiter(cfg.Leads.RatePerMinute, cfg.Leads.RateBurst)
}

// Allow reports whether key may submit now
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	return l.get(key, now).AllowN(now, 1)
}

func (l *Limiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.RLock()
	e, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		e.lastSeen = now
		l.mu.Unlock()
		return e.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if e, ok := l.limiters[key]; ok {
		e.lastSeen = now
		return e.limiter
	}

	if len(l.limiters) >= pruneThreshold {
		l.pruneLocked(now)
	}

	e = &entry{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.limiters[key] = e
	return e.limiter
}

func (l *Limiter) pruneLocked(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.limiters, k)
		}
	}
}

// Len returns the number of tracked keys
func (l *Limiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}
