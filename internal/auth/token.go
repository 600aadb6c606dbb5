package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Parse for tokens that fail signature or
// claim validation.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the subject encoded into an access token.
type Identity struct {
	UserID string
	Role   string
}

// TokenIssuer signs and verifies HS256 access tokens.
// The secret is fixed at construction; when it was randomly generated the
// tokens it signed do not survive a process restart.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds a TokenIssuer from the configured secret and TTL in
// minutes.
func NewTokenIssuer(secret string, ttlMin int) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMin) * time.Minute,
	}
}

// Issue signs an HS256 JWT for the identity with standard claims:
// subject (sub), role, expiration (exp) and issued at (iat).
func (t *TokenIssuer) Issue(id Identity) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  id.UserID,
		"role": id.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates the token signature and expiry and returns the identity it
// encodes.
func (t *TokenIssuer) Parse(raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: sub, Role: role}, nil
}

// GenerateSecret returns a hex-encoded secret from 32 bytes of
// cryptographically secure random data. Used as a process-lifetime fallback
// when no signing secret is configured.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
