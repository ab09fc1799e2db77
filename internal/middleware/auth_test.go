// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/portfolio-api/internal/core"
)

type stubVerifier struct {
	claims *TokenClaims
	err    error
}

func (s *stubVerifier) VerifyToken(
	_ context.Context,
	_ string,
) (*TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

type stubLoader struct {
	identity *Identity
	err      error

	gotUserID string
}

func (s *stubLoader) LoadIdentity(
	_ context.Context,
	userID string,
) (*Identity, error) {
	s.gotUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body core.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func authedRequest(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestAuthenticator(t *testing.T) {
	t.Parallel()

	okNext := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		handler := Authenticator(&stubVerifier{}, &stubLoader{})(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization token required", decodeMessage(t, rec))
	})

	t.Run("malformed header", func(t *testing.T) {
		handler := Authenticator(&stubVerifier{}, &stubLoader{})(okNext)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Token abc123")
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization token required", decodeMessage(t, rec))
	})

	t.Run("expired token", func(t *testing.T) {
		verifier := &stubVerifier{
			err: fmt.Errorf("verify token: %w", core.ErrTokenExpired),
		}
		handler := Authenticator(verifier, &stubLoader{})(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("expired"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token expired", decodeMessage(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		verifier := &stubVerifier{
			err: fmt.Errorf("verify token: %w", core.ErrTokenInvalid),
		}
		handler := Authenticator(verifier, &stubLoader{})(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("garbage"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeMessage(t, rec))
	})

	t.Run("user no longer exists", func(t *testing.T) {
		verifier := &stubVerifier{claims: &TokenClaims{UserID: "u1", Role: "user"}}
		loader := &stubLoader{
			err: fmt.Errorf("load identity: %w", core.ErrNotFound),
		}
		handler := Authenticator(verifier, loader)(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("valid"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Not authorized", decodeMessage(t, rec))
	})

	t.Run("user deactivated", func(t *testing.T) {
		verifier := &stubVerifier{claims: &TokenClaims{UserID: "u1", Role: "user"}}
		loader := &stubLoader{
			err: fmt.Errorf("load identity: %w", core.ErrUserInactive),
		}
		handler := Authenticator(verifier, loader)(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("valid"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Not authorized", decodeMessage(t, rec))
	})

	t.Run("store fault is a server error, not an auth failure", func(t *testing.T) {
		verifier := &stubVerifier{claims: &TokenClaims{UserID: "u1", Role: "user"}}
		loader := &stubLoader{err: errors.New("connection refused")}
		handler := Authenticator(verifier, loader)(okNext)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest("valid"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Server error", decodeMessage(t, rec))
	})

	t.Run("context carries the freshly loaded role", func(t *testing.T) {
		// Token still says "user" but the stored record was promoted to
		// admin; the context must reflect the stored role.
		verifier := &stubVerifier{claims: &TokenClaims{UserID: "u1", Role: "user"}}
		loader := &stubLoader{identity: &Identity{ID: "u1", Role: "admin"}}

		var gotID, gotRole string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = GetUserID(r.Context())
			gotRole = GetUserRole(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		Authenticator(verifier, loader)(next).ServeHTTP(rec, authedRequest("valid"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", gotID)
		assert.Equal(t, "admin", gotRole)
		assert.Equal(t, "u1", loader.gotUserID)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "u1")
		ctx = context.WithValue(ctx, UserRoleKey, RoleAdmin)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin", nil).WithContext(ctx)
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "u1")
		ctx = context.WithValue(ctx, UserRoleKey, "user")

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin", nil).WithContext(ctx)
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Admin access required", decodeMessage(t, rec))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		RequireAdmin(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeMessage(t, rec))
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserRoleKey, "editor")

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(ctx)
		RequireRole("editor", "admin")(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disallowed role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserRoleKey, "user")

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(ctx)
		RequireRole("editor", "admin")(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Insufficient permissions", decodeMessage(t, rec))
	})
}

func TestExtractToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"wrong scheme", "Basic dXNlcjpwdw==", ""},
		{"scheme only", "Bearer", ""},
		{"extra whitespace trimmed", "Bearer   abc  ", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(r))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))
	assert.Empty(t, GetUserRole(ctx))
	assert.False(t, IsAuthenticated(ctx))
	assert.False(t, IsAdmin(ctx))

	ctx = context.WithValue(ctx, UserIDKey, "u1")
	ctx = context.WithValue(ctx, UserRoleKey, RoleAdmin)
	assert.Equal(t, "u1", GetUserID(ctx))
	assert.True(t, IsAuthenticated(ctx))
	assert.True(t, IsAdmin(ctx))
}
