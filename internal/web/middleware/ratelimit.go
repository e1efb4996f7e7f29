package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per client address with a token
// bucket per key.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter creates a limiter allowing r attempts per second with
// the given burst, per client.
func NewLoginLimiter(r rate.Limit, burst int) *LoginLimiter {
	l := &LoginLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     r,
		burst:    burst,
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client identified by key may attempt a
// login now.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

// ClientKey derives the limiter key for a request: the remote IP
// without the port.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (l *LoginLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-30 * time.Minute)
		l.mu.Lock()
		for key, cl := range l.limiters {
			if cl.lastSeen.Before(cutoff) {
				delete(l.limiters, key)
			}
		}
		l.mu.Unlock()
	}
}
