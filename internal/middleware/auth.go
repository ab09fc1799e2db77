// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/angelamos/portfolio-api/internal/core"
)

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// TokenClaims are the claims embedded in a verified token. The role claim
// is informational; Authenticator replaces it with the freshly loaded one.
type TokenClaims struct {
	UserID string
	Role   string
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}

// Identity is the authenticated principal attached to the request context:
// the id and role of the user record as currently stored, not as encoded
// in the token.
type Identity struct {
	ID   string
	Role string
}

// IdentityLoader loads the user referenced by a token's subject claim.
// Implementations return core.ErrNotFound for missing users and
// core.ErrUserInactive for deactivated ones; any other error is treated
// as an infrastructure fault.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, userID string) (*Identity, error)
}

// Authenticator verifies the bearer token and re-loads the referenced user
// from the store on every request. No caching across requests: a role or
// is_active change takes effect on the very next request using any
// previously issued token.
func Authenticator(
	verifier TokenVerifier,
	loader IdentityLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.Unauthorized(w, "Authorization token required")
				return
			}

			claims, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				handleTokenError(w, err)
				return
			}

			identity, err := loader.LoadIdentity(r.Context(), claims.UserID)
			if err != nil {
				handleIdentityError(w, r, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, identity.ID)
			ctx = context.WithValue(ctx, UserRoleKey, identity.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return requireRoles(roles, "Insufficient permissions")
}

func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles([]string{RoleAdmin}, "Admin access required")(next)
}

const RoleAdmin = "admin"

func requireRoles(
	roles []string,
	message string,
) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole := GetUserRole(r.Context())

			if userRole == "" {
				core.Unauthorized(w, "Authentication required")
				return
			}

			if _, ok := roleSet[userRole]; !ok {
				core.Forbidden(w, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenInvalid):
		core.JSONError(w, core.TokenInvalidError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

// handleIdentityError keeps missing and deactivated users behind the same
// external 401 while logging the real reason. A store fault is reported as
// a server error, never as an auth failure, so clients are not misled into
// re-authenticating when the infrastructure is down.
func handleIdentityError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	switch {
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrUserInactive):
		slog.WarnContext(r.Context(), "rejected token for unusable identity",
			"error", err,
		)
		core.Unauthorized(w, "")
	default:
		core.InternalServerError(w, err)
	}
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}

func IsAdmin(ctx context.Context) bool {
	return GetUserRole(ctx) == RoleAdmin
}
