// Package auth выдает и проверяет bearer-токены доступа к API документов.
// Токены — JWT HS256; пользователей и ролей нет, токен идентифицирует
// устройство (точку продаж).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates that token is malformed, expired or has a bad signature
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims for a client device
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// Service provides token generation and validation
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service
// secret should be a cryptographically secure random string
func NewService(secret string, tokenTTL time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// MintToken creates a new signed token for a client device
func (s *Service) MintToken(clientID string) (string, error) {
	now := time.Now()

	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken validates and parses a signed token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
