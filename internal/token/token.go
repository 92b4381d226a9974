// Package token issues and validates the signed claim sets used as bearer
// tokens. The same signing secret serves both access tokens and the
// federated-login state token; they differ only in subject and ttl.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, shape, or expiry checks.
var ErrInvalidToken = errors.New("token: invalid token")

// Service signs and validates HS256 claim sets.
type Service struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// Config holds configuration for the token service.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string
	// AccessTTL is the default lifetime for access tokens.
	AccessTTL time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a token service from the given config.
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{secret: []byte(cfg.Secret), accessTTL: ttl, now: now}, nil
}

// Issue creates a signed token for the subject with an explicit ttl.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// IssueAccess creates a signed access token using the configured default ttl.
func (s *Service) IssueAccess(subject string) (string, error) {
	return s.Issue(subject, s.accessTTL)
}

// Validate parses a token and returns its subject. It fails with
// ErrInvalidToken when the signature is invalid, the claim set is malformed,
// or the expiry has passed.
func (s *Service) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *Service) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method %s", t.Method.Alg())
	}
	return s.secret, nil
}
