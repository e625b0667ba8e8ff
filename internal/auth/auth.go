// Package auth implements the shop's access gate: a single shared access
// code exchanged for a short-lived bearer token. It gates routes only; there
// are no users or roles.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCode  = errors.New("invalid access code")
	ErrInvalidToken = errors.New("invalid token")
)

type Service struct {
	accessCode string
	secret     []byte
	ttl        time.Duration
}

func NewService(accessCode, secret string, ttl time.Duration) *Service {
	return &Service{
		accessCode: accessCode,
		secret:     []byte(secret),
		ttl:        ttl,
	}
}

// Enabled reports whether the gate is active. An empty access code leaves
// the API open.
func (s *Service) Enabled() bool {
	return s.accessCode != ""
}

// Login exchanges the shared access code for a signed token.
func (s *Service) Login(code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.accessCode)) != 1 {
		return "", ErrInvalidCode
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "shop",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiry.
func (s *Service) Verify(tokenStr string) error {
	_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return nil
}

// Middleware rejects requests without a valid bearer token. A no-op when the
// gate is disabled.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || s.Verify(token) != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
