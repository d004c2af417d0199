package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/garage/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket profile: Requests per Window with Burst headroom.
type Limit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// Rate converts the profile into a per-second refill rate.
func (l Limit) Rate() rate.Limit {
	if l.Window <= 0 || l.Requests <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// Default profiles. Each can be overridden with RATELIMIT_<NAME>_REQUESTS,
// RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	// Strict guards login, registration and workshop submissions.
	Strict = Limit{Requests: 5, Window: time.Minute, Burst: 5}
	// Moderate guards authenticated writes.
	Moderate = Limit{Requests: 30, Window: time.Minute, Burst: 30}
	// Lenient guards authenticated reads.
	Lenient = Limit{Requests: 120, Window: time.Minute, Burst: 120}
	// Public guards probes and documentation.
	Public = Limit{Requests: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	Strict = LimitFromEnv("STRICT", Strict)
	Moderate = LimitFromEnv("MODERATE", Moderate)
	Lenient = LimitFromEnv("LENIENT", Lenient)
	Public = LimitFromEnv("PUBLIC", Public)
}

// LimitFromEnv overlays RATELIMIT_<name>_* variables onto def. Invalid or
// non-positive values are ignored.
func LimitFromEnv(name string, def Limit) Limit {
	l := def
	if n, ok := positiveEnv("RATELIMIT_" + name + "_REQUESTS"); ok {
		l.Requests = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_WINDOW_SEC"); ok {
		l.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_BURST"); ok {
		l.Burst = n
	}
	return l
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyFunc picks the bucket a request is charged against. An empty key
// bypasses limiting.
type KeyFunc func(*http.Request) string

// ClientIP keys on the first X-Forwarded-For hop, then X-Real-IP, then the
// socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// OwnerKey keys on the authenticated owner.
func OwnerKey(r *http.Request) string {
	return OwnerID(r.Context())
}

// QueryKey keys on a URL query parameter. The body is never read, so
// multipart uploads stay untouched.
func QueryKey(param string) KeyFunc {
	return func(r *http.Request) string {
		return r.URL.Query().Get(param)
	}
}

// JoinKeys concatenates the non-empty keys produced by fns.
func JoinKeys(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, "|")
	}
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter holds one token bucket per key.
type Limiter struct {
	limit Limit
	idle  time.Duration

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// NewLimiter builds a limiter for l. Buckets idle for longer than one window
// are dropped lazily.
func NewLimiter(l Limit) *Limiter {
	idle := max(l.Window, time.Minute)
	return &Limiter{
		limit:     l,
		idle:      idle,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow charges one request to key.
func (l *Limiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	b, found := l.buckets[key]
	if !found {
		b = &bucket{lim: rate.NewLimiter(l.limit.Rate(), l.limit.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	res := b.lim.ReserveN(now, 1)
	if !res.OK() {
		return false, l.limit.Window
	}
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return false, d
	}
	return true, 0
}

// Len reports the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.buckets, k)
		}
	}
}

// RateLimit rejects requests with 429 once the bucket chosen by key is empty.
func RateLimit(l Limit, key KeyFunc) Middleware {
	lim := NewLimiter(l)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := lim.Allow(k)
			if !ok {
				secs := max(int(wait.Round(time.Second)/time.Second), 1)
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Requests))
				w.Header().Set("X-RateLimit-Window", l.Window.String())

				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"path", r.URL.Path,
					"retry_after", secs,
				)
				WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(l Limit) Middleware {
	return RateLimit(l, ClientIP)
}

// RateLimitByOwner limits per authenticated owner, falling back to address.
func RateLimitByOwner(l Limit) Middleware {
	return RateLimit(l, func(r *http.Request) string {
		if id := OwnerKey(r); id != "" {
			return "owner:" + id
		}
		return "ip:" + ClientIP(r)
	})
}
