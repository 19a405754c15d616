package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/GardenBot_Go/internal/metrics"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestGuard_Authenticate(t *testing.T) {
	guard := NewGuard("secret-key", nil)
	handler := guard.Authenticate(okHandler)

	tests := []struct {
		name   string
		key    string
		path   string
		status int
	}{
		{"valid key", "secret-key", "/api/v1/plant", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/plant", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/plant/water", http.StatusUnauthorized},
		{"public healthz", "", "/healthz", http.StatusOK},
		{"public metrics", "", "/metrics", http.StatusOK},
		{"public swagger", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGuard_AuthFailuresCounted(t *testing.T) {
	guard := NewGuard("secret-key", nil)
	handler := guard.Authenticate(okHandler)
	before := testutil.ToFloat64(metrics.AuthFailuresTotal)

	for i := 0; i < FailedAuthAlertThreshold; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/feed", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, before+FailedAuthAlertThreshold, testutil.ToFloat64(metrics.AuthFailuresTotal))

	w, ok := guard.failures.Get("203.0.113.7")
	assert.True(t, ok)
	assert.Equal(t, FailedAuthAlertThreshold, w.count)
}

func TestGuard_RateLimit(t *testing.T) {
	guard := NewGuard("k", nil)
	handler := guard.RateLimit(okHandler)
	before := testutil.ToFloat64(metrics.RateLimitedTotal)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plant", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RateLimitPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, "request %d", i) {
			return
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "300", rec.Header().Get(HeaderRetryAfter))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitedTotal))

	// Other clients are unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/plant", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuard_ClientIP(t *testing.T) {
	guard := NewGuard("k", []string{"10.0.0.0/8", "192.0.2.1", "not-an-ip"})

	tests := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{"direct peer", "198.51.100.9:443", "", "198.51.100.9"},
		{"untrusted peer ignores header", "198.51.100.9:443", "1.2.3.4", "198.51.100.9"},
		{"trusted range uses last hop", "10.1.2.3:443", "1.2.3.4, 5.6.7.8", "5.6.7.8"},
		{"trusted single address", "192.0.2.1:80", "9.9.9.9", "9.9.9.9"},
		{"trusted without header", "10.1.2.3:443", "", "10.1.2.3"},
		{"garbage hop falls back", "10.1.2.3:443", "nonsense", "10.1.2.3"},
		{"ipv6 peer", "[2001:db8::1]:443", "", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, guard.ClientIP(req))
		})
	}

	assert.Len(t, guard.trustedProxies, 2)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
	assert.Equal(t, "DENY", rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, "0", rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, "no-referrer", rec.Header().Get(HeaderReferrerPolicy))
}

func TestLimitBody(t *testing.T) {
	handler := LimitBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		var maxErr *http.MaxBytesError
		if assert.ErrorAs(t, err, &maxErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789abcdef"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
