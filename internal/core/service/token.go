package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// Token modes. Legacy tokens are the prefix-plus-account-id scheme the
// platform shipped with; jwt mode is the signed, expiring upgrade. Both
// satisfy the same Issue/Validate contract, so the guard is oblivious to
// which one is configured.
const (
	TokenModeLegacy = "legacy"
	TokenModeJWT    = "jwt"
)

// DefaultTokenPrefix matches the token format issued by the original platform.
const DefaultTokenPrefix = "fake-jwt-token-"

// LegacyTokenService issues tokens of the form prefix + account id. No
// signature, no expiry: trivially forgeable, kept only for client
// compatibility.
type LegacyTokenService struct {
	prefix string
}

func NewLegacyTokenService(prefix string) *LegacyTokenService {
	if prefix == "" {
		prefix = DefaultTokenPrefix
	}
	return &LegacyTokenService{prefix: prefix}
}

func (s *LegacyTokenService) Issue(user *domain.User) (string, error) {
	return s.prefix + user.ID, nil
}

func (s *LegacyTokenService) Validate(token string) (string, error) {
	if !strings.HasPrefix(token, s.prefix) {
		return "", domain.ErrInvalidToken
	}
	return strings.TrimPrefix(token, s.prefix), nil
}

// JWTTokenService issues HS256-signed tokens with the account id as subject.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTTokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

// NewTokenService selects an implementation by mode. Unknown modes fall back
// to legacy for compatibility.
func NewTokenService(mode, prefix, jwtSecret string, ttl time.Duration) ports.TokenService {
	if mode == TokenModeJWT {
		return NewJWTTokenService(jwtSecret, ttl)
	}
	return NewLegacyTokenService(prefix)
}
