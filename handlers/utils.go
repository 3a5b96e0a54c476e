package handlers

import (
	"time"

	"ecommerce-server/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints an HS256 bearer token for the given user id. The
// storefront normally gets its tokens from the identity provider; this helper
// backs local development and the handler tests.
func GenerateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.AuthSecret))
}
