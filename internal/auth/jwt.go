// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/portfolio-api/internal/config"
	"github.com/angelamos/portfolio-api/internal/core"
	"github.com/angelamos/portfolio-api/internal/middleware"
)

// TokenIssuer signs and verifies stateless bearer tokens with a
// server-held HMAC secret. Tokens are never persisted: validity is a
// function of signature, expiry, and the referenced user's current state.
type TokenIssuer struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewTokenIssuer(cfg config.JWTConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.TokenExpire <= 0 {
		return nil, fmt.Errorf("token expiry must be positive")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenIssuer{
		key:    key,
		config: cfg,
	}, nil
}

// TokenClaims is what gets embedded in a signed token. The role claim is
// informational only; the authoritative role is re-read from the user
// store on every request.
type TokenClaims struct {
	UserID string
	Role   string
}

func (i *TokenIssuer) CreateToken(claims TokenClaims) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(i.config.Issuer).
		Audience([]string{i.config.Audience}).
		Subject(claims.UserID).
		IssuedAt(now).
		Expiration(now.Add(i.config.TokenExpire)).
		NotBefore(now).
		Claim("role", claims.Role).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), i.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (i *TokenIssuer) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), i.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(i.config.Issuer),
		jwt.WithAudience(i.config.Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.TokenExpiredError()) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var roleStr string
	if err := token.Get("role", &roleStr); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.TokenClaims{
		UserID: subject,
		Role:   roleStr,
	}, nil
}

func (i *TokenIssuer) TokenExpire() time.Duration {
	return i.config.TokenExpire
}
