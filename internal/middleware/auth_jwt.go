package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pixelforge/internal/domain"
)

// TokenClaims carries the account id in sub and the account email.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type identityKey struct{}

// SignJWT issues an HS256 token for userID and email valid for ttl. A zero
// ttl issues a token without expiry.
func SignJWT(secret, userID, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is required")
	}
	now := time.Now()
	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func VerifyJWT(secret, token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthJWT rejects requests without a valid bearer token.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing authorization")
				return
			}
			claims, err := VerifyJWT(secret, token)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identityFromClaims(claims))))
		})
	}
}

// OptionalAuth attaches the caller identity when a valid bearer token is
// present and otherwise lets the request through as anonymous.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				if claims, err := VerifyJWT(secret, token); err == nil {
					r = r.WithContext(ContextWithIdentity(r.Context(), identityFromClaims(claims)))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFromContext(ctx context.Context) domain.Identity {
	if v, ok := ctx.Value(identityKey{}).(domain.Identity); ok {
		return v
	}
	return domain.Identity{}
}

func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	if identity.Anonymous() {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, identity)
}

func UserIDFromContext(ctx context.Context) string {
	return IdentityFromContext(ctx).Subject
}

func identityFromClaims(claims *TokenClaims) domain.Identity {
	return domain.Identity{
		Subject: strings.TrimSpace(claims.Subject),
		Email:   strings.TrimSpace(claims.Email),
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":        "unauthorized",
			"message":     message,
			"remediation": false,
		},
	})
}
