// Package auth owns credential handling: bcrypt password hashing, issuing and
// verifying signed identity tokens, and the bearer-token request middleware.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dheurymy/api-task-manager/internal/apperr"
)

// Claims carries the identity embedded in a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// TokenService mints and verifies HS256-signed identity tokens. Tokens are
// stateless: nothing is persisted server-side, and a minted token stays valid
// until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token embedding the user's identity, expiring ttl from now.
func (s *TokenService) Issue(userID, name, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning the embedded claims.
// A malformed token, a signature made with another secret or a non-HMAC
// method, and an expired token all yield apperr.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
