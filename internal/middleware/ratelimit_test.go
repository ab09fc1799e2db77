// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyByIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "192.0.2.10:51234",
			want:       "ratelimit:ip:192.0.2.10",
		},
		{
			name:       "x-forwarded-for uses last hop",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 198.51.100.7"},
			want:       "ratelimit:ip:198.51.100.7",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			want:       "ratelimit:ip:203.0.113.9",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.10",
			want:       "ratelimit:ip:192.0.2.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, KeyByIP(r))
		})
	}
}

func TestKeyByUser(t *testing.T) {
	t.Parallel()

	t.Run("authenticated requests key by user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "u1")
		r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		assert.Equal(t, "ratelimit:user:u1", KeyByUser(r))
	})

	t.Run("anonymous requests fall back to ip", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.10:443"

		assert.Equal(t, "ratelimit:ip:192.0.2.10", KeyByUser(r))
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/projects", "/api/v1/projects"},
		{
			"/api/v1/projects/3e2c9a40-94a2-4fae-8f4f-2dbab0a7d6a3",
			"/api/v1/projects/{id}",
		},
		{"/api/v1/blog/42", "/api/v1/blog/{id}"},
		{"/api/v1/blog/my-first-post", "/api/v1/blog/my-first-post"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeEndpoint(tt.path))
		})
	}
}

func TestLocalLimiterAllows(t *testing.T) {
	t.Parallel()

	l := newLocalLimiter()

	limit := PerMinute(60, 2)

	res, err := l.allow("k1", limit)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)

	res, err = l.allow("k1", limit)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)

	// Burst of 2 exhausted; the next request within the same second is
	// rejected with a retry hint.
	res, err = l.allow("k1", limit)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Allowed)
	assert.Greater(t, res.RetryAfter, time.Duration(0))

	// A different key has its own budget.
	res, err = l.allow("k2", limit)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)
}

func TestPerWindowHelpers(t *testing.T) {
	t.Parallel()

	m := PerMinute(100, 10)
	assert.Equal(t, 100, m.Rate)
	assert.Equal(t, time.Minute, m.Period)

	s := PerSecond(5, 5)
	assert.Equal(t, time.Second, s.Period)

	h := PerHour(1000, 50)
	assert.Equal(t, time.Hour, h.Period)
}
