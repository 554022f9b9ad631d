package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

const (
	// bucketTTL is how long an idle client keeps its token bucket.
	bucketTTL = 5 * time.Minute

	// maxBuckets caps the number of tracked clients. When full, expired
	// buckets are dropped first, then the least recently seen one.
	maxBuckets = 10000
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client key.
type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	limit      rate.Limit
	burst      int
	maxBuckets int
	now        func() time.Time
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &rateLimiter{
		buckets:    make(map[string]*bucket),
		limit:      rate.Limit(perSecond),
		burst:      burst,
		maxBuckets: maxBuckets,
		now:        time.Now,
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.maxBuckets {
			l.evictLocked(now)
		}
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// prune drops buckets idle for longer than bucketTTL.
func (l *rateLimiter) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(l.now())
}

func (l *rateLimiter) pruneLocked(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > bucketTTL {
			delete(l.buckets, key)
		}
	}
}

// evictLocked makes room for one more bucket.
func (l *rateLimiter) evictLocked(now time.Time) {
	l.pruneLocked(now)
	if len(l.buckets) < l.maxBuckets {
		return
	}

	var (
		oldestKey  string
		oldestSeen time.Time
	)
	for key, b := range l.buckets {
		if oldestKey == "" || b.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, b.lastSeen
		}
	}
	delete(l.buckets, oldestKey)
}

func (l *rateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// run prunes periodically until ctx is done.
func (l *rateLimiter) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.prune()
		}
	}
}

// withPeerAddr records the connection's remote address before RealIP
// rewrites it from client-supplied forwarding headers.
func withPeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.ContextWithPeerAddr(r.Context(), r.RemoteAddr)))
	})
}

// rateLimit throttles requests per TCP peer. Forwarding headers are ignored
// so that a client cannot pick a fresh bucket for every attempt.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		if !h.limiter.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the peer address, falling back to
// RemoteAddr when withPeerAddr did not run.
func clientIP(r *http.Request) string {
	addr, ok := utils.PeerAddrFromContext(r.Context())
	if !ok {
		addr = r.RemoteAddr
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
