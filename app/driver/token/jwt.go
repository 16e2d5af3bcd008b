package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop-service/app/domain"
)

// JWTConfig holds JWT generation configuration.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// JWTService issues and verifies signed bearer tokens. The subject claim
// carries the user id. Implements port.TokenService.
type JWTService struct {
	cfg JWTConfig
}

// NewJWTService creates a new JWT token service.
func NewJWTService(cfg JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

// Issue generates a signed token for the given user id with a fixed
// lifetime from issuance.
func (s *JWTService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// Verify validates the token signature and expiry and returns the subject.
// An expired token fails with domain.ErrTokenExpired; any structural or
// signature problem fails with domain.ErrInvalidToken.
func (s *JWTService) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
