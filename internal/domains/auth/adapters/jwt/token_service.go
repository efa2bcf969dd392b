package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Apurer/go-commerce-api-server/internal/domains/auth/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
)

// DefaultTTL is used when the configuration supplies no expiry duration.
const DefaultTTL = time.Hour

var _ ports.TokenService = (*TokenService)(nil)

// TokenService issues and validates HS256-signed bearer tokens. The signing
// key and TTL are fixed at construction; rotation happens by constructing a
// new service, never by mutating this one.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService builds a token service from externally supplied
// configuration.
func NewTokenService(key []byte, ttl time.Duration) (*TokenService, error) {
	if len(key) == 0 {
		return nil, errors.New("jwt signing key is empty")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &TokenService{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue produces a compact signed token binding the subject email with
// issued-at and expiry claims.
func (s *TokenService) Issue(subject domain.Subject) (string, error) {
	if subject.Email == "" {
		return "", errors.New("subject email is empty")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate recomputes the signature and checks expiry. Every failure maps
// to the single ErrInvalidToken kind. A validly signed, unexpired token is
// accepted even if the underlying customer has since been deleted;
// downstream lookups handle that.
func (s *TokenService) Validate(tokenString string) (domain.Subject, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		// The parse error names the exact failure (signature, expiry,
		// structure); clients only ever see the bare kind.
		return domain.Subject{}, ports.ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return domain.Subject{}, ports.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return domain.Subject{}, ports.ErrInvalidToken
	}
	return domain.NewSubject(claims.Subject), nil
}
