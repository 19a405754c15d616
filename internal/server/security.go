package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
)

// window counts one client's hits. Entries are mutated in place so the
// cache TTL runs from the first hit and the window stays fixed.
type window struct {
	count int
}

// Guard authenticates API callers and throttles requests per client address.
// Counters live in bounded expiring caches.
type Guard struct {
	apiKey         []byte
	trustedProxies []netip.Prefix

	mu       sync.Mutex
	requests *expirable.LRU[string, *window]
	failures *expirable.LRU[string, *window]
}

// NewGuard builds a guard. Trusted proxies may be single addresses or CIDR ranges;
// unparseable entries are logged and ignored.
func NewGuard(apiKey string, trustedProxies []string) *Guard {
	return &Guard{
		apiKey:         []byte(apiKey),
		trustedProxies: parseTrustedProxies(trustedProxies),
		requests:       expirable.NewLRU[string, *window](TrackedClients, nil, RateLimitWindow),
		failures:       expirable.NewLRU[string, *window](TrackedClients, nil, RateLimitWindow),
	}
}

func parseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(a.Unmap(), a.Unmap().BitLen()))
			continue
		}
		slog.Warn(LogMsgBadTrustedProxy, "entry", e)
	}
	return prefixes
}

func (g *Guard) hit(c *expirable.LRU[string, *window], ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := c.Get(ip)
	if !ok {
		w = &window{}
		c.Add(ip, w)
	}
	w.count++
	return w.count
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Authenticate rejects requests without the API key, except on public paths
func (g *Guard) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		providedKey := r.Header.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(providedKey), g.apiKey) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		ip := g.ClientIP(r)
		metrics.AuthFailuresTotal.Inc()
		if n := g.hit(g.failures, ip); n >= FailedAuthAlertThreshold {
			slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
		}

		logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
			"path", r.URL.Path,
			"has_key", providedKey != "",
			"ip", ip)

		http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
	})
}

// RateLimit caps requests per client address within RateLimitWindow
func (g *Guard) RateLimit(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(RateLimitWindow.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := g.ClientIP(r)
		n := g.hit(g.requests, ip)
		if n <= RateLimitPerWindow {
			next.ServeHTTP(w, r)
			return
		}

		metrics.RateLimitedTotal.Inc()
		if n%RateLimitLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
		}
		w.Header().Set(HeaderRetryAfter, retryAfter)
		http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
	})
}

// ClientIP returns the caller's address. X-Forwarded-For is honored only when
// the direct peer is a trusted proxy, and then only its rightmost hop.
func (g *Guard) ClientIP(r *http.Request) string {
	remote, err := netip.ParseAddrPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	addr := remote.Addr().Unmap()

	if !g.trusted(addr) {
		return addr.String()
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return addr.String()
	}
	hops := strings.Split(forwarded, ",")
	last := strings.TrimSpace(hops[len(hops)-1])
	if hop, err := netip.ParseAddr(last); err == nil {
		return hop.Unmap().String()
	}
	return addr.String()
}

func (g *Guard) trusted(addr netip.Addr) bool {
	for _, p := range g.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// LimitBody caps request bodies at maxBytes
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders sets the static hardening headers on every response
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, h := range securityHeaders {
			w.Header().Set(h[0], h[1])
		}
		next.ServeHTTP(w, r)
	})
}
