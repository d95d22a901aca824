// Package token mints and parses the bearer tokens used by the API.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a token that parsed but failed validation
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the standard claims plus the authenticated user id
type Claims struct {
	jwt.RegisteredClaims
	UserId string `json:"uid"`
}

// Generate mints an HS256 token for the given user id
func Generate(userId string, secret []byte, validity time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserId: userId,
	})
	return t.SignedString(secret)
}

// Parse validates a token string and returns the user id it carries
func Parse(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.UserId == "" {
		return "", ErrInvalidToken
	}
	return claims.UserId, nil
}
