// Package auth holds the credential primitives: signed bearer tokens
// and password hashing. Nothing here touches storage.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Domain errors for token flows.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSigningKey = errors.New("jwt signing key is not configured")
)

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// TokenManager issues and verifies signed bearer tokens. The signing key
// comes from configuration; a manager with an empty key refuses every
// issue and verify call with ErrNoSigningKey.
type TokenManager struct {
	signingKey []byte
	tokenTTL   time.Duration
}

func NewTokenManager(signingKey string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// Issue signs a JWT carrying the user id, expiring after the configured TTL.
func (m *TokenManager) Issue(userID int) (string, error) {
	if len(m.signingKey) == 0 {
		return "", ErrNoSigningKey
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(m.signingKey)
}

// Verify parses a token and returns the user id it carries. Any parse or
// signature failure comes back wrapped in ErrInvalidToken.
func (m *TokenManager) Verify(accessToken string) (int, error) {
	if len(m.signingKey) == 0 {
		return 0, ErrNoSigningKey
	}

	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		// structurally valid token with no usable identity
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
