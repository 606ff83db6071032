package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a session token can fail verification:
// missing, malformed, bad signature, or expired. Callers get a single
// binary valid/invalid answer and no detail about which check failed.
var ErrInvalidToken = errors.New("invalid session token")

// TokenCodec issues and verifies stateless session tokens. The signing
// scheme is an implementation detail behind this interface.
type TokenCodec interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// Claims defines the session token claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// HMACCodec signs session tokens with HMAC-SHA256. The key is process-wide
// configuration injected at construction, never read from the environment
// here.
type HMACCodec struct {
	key []byte
	ttl time.Duration
}

// NewHMACCodec creates a codec issuing tokens with a 24-hour lifetime.
func NewHMACCodec(key []byte) *HMACCodec {
	return &HMACCodec{key: key, ttl: 24 * time.Hour}
}

// Issue creates a signed token embedding the user id and an absolute expiry.
func (c *HMACCodec) Issue(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.key)
}

// Verify checks signature integrity and expiry and returns the embedded
// user id. Every failure collapses to ErrInvalidToken.
func (c *HMACCodec) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
