package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"content-platform-api/internal/response"
)

// AuthorKey is the context key under which the authenticated caller's display
// name is stored.
const AuthorKey = "author"

// RequireAuth returns a middleware that validates a Bearer JWT signed with
// jwtSecret. On success the author name from the token claims is stored in
// the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, "Authorization header is required", "")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.SendError(c, http.StatusUnauthorized, "Invalid authorization header format", "")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			response.SendError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, "Invalid token claims", "")
			c.Abort()
			return
		}

		c.Set(AuthorKey, authorFromClaims(claims))
		c.Next()
	}
}

// AllowAll returns a pass-through middleware used when authentication is
// disabled. Requests run as anonymous; an upstream gateway is expected to
// enforce access instead.
func AllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// authorFromClaims picks a display name from the token claims, preferring
// name over email over subject.
func authorFromClaims(claims jwt.MapClaims) string {
	for _, key := range []string{"name", "email", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// AuthorFromContext returns the authenticated author name, or "" when the
// request is anonymous.
func AuthorFromContext(c *gin.Context) string {
	return c.GetString(AuthorKey)
}
