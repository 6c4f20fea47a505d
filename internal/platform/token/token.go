// Package token implements issuing and verifying the signed access tokens
// used by the API, plus the Gin middleware that enforces them.
package token

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyAccessExpire is the environment variable holding the token
	// lifetime in seconds.
	EnvKeyAccessExpire = "ACCESS_EXPIRE"
	// DefaultTTL is the token lifetime used when ACCESS_EXPIRE is not set.
	DefaultTTL = 24 * time.Hour
)

var (
	// ErrTokenExpired is returned by Verify for a well-signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned by Verify for a malformed token, a bad
	// signature, or an unexpected signing algorithm.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims are the verified contents of an access token.
type Claims struct {
	// Subject is the email address of the user the token was issued to.
	Subject string
	// Role is the user's role at issuance time. It may be stale relative
	// to the user record and is re-resolved by the middleware.
	Role string
	// ExpiresAt is the token's expiry instant.
	ExpiresAt time.Time
}

// Service issues and verifies HS256-signed access tokens under a single
// shared secret. Tokens are never persisted and cannot be revoked before
// their expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service with the provided secret and lifetime.
// A non-positive ttl falls back to DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTLFromEnv reads the token lifetime from ACCESS_EXPIRE (seconds).
// It returns DefaultTTL when unset or unparsable.
func TTLFromEnv() time.Duration {
	raw := os.Getenv(EnvKeyAccessExpire)
	if raw == "" {
		return DefaultTTL
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultTTL
	}
	return time.Duration(secs) * time.Second
}

// Issue creates a signed token asserting the given subject and role.
// Expiry is issuance time plus the service TTL.
func (s *Service) Issue(subject, role string) (string, error) {
	return s.IssueWithTTL(subject, role, s.ttl)
}

// IssueWithTTL is Issue with an explicit lifetime.
func (s *Service) IssueWithTTL(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string. A tampered signature or a
// non-HMAC algorithm is reported as ErrTokenInvalid, never as expired.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		// Signature failures take precedence over expiry.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if exp, ok := mapClaims["exp"].(float64); ok { // JWT numbers decode as float64
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}
