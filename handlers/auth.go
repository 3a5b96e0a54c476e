package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"ecommerce-server/config"
	"ecommerce-server/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the storefront's bearer tokens. The identity provider
// sets the user id; this server only verifies the signature.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token and stores the token's user id in
// the request context. Authentication failures use 403 with the standard
// response envelope.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Token not provided", "error": true})
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid Token", "error": true})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.AppConfig.AuthSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid Token", "error": true})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// RequireUser loads the authenticated user's record into the context. Runs
// after AuthMiddleware on routes that need an existing account (the cart
// endpoints); POST /user deliberately skips it since the record may not exist
// yet.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		user, err := store.GetUser(userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusForbidden, gin.H{"message": "User not found", "error": true})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user", "error": true})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// currentUser pulls the user record loaded by RequireUser.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
