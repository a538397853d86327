package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth returns a middleware that validates JWT bearer tokens
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		// Extract user ID from claims (support multiple claim formats)
		var userIDStr string
		if uid, ok := claims["user_id"].(string); ok {
			userIDStr = uid
		} else if sub, ok := claims["sub"].(string); ok {
			userIDStr = sub
		} else if uid, ok := claims["uid"].(string); ok {
			userIDStr = uid
		} else {
			abortUnauthorized(c, "User ID not found in token")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID format")
			return
		}

		// Store user ID and JWT token in context for downstream use
		c.Set("user_id", userID)
		c.Set("jwtToken", tokenString)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"message": "Authentication required",
	})
	c.Abort()
}
