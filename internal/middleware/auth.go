package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfcheck/internal/service"
)

const ContextKeyClaims = "claims"

// AuthMiddleware returns Gin middleware that accepts a session token from the
// named cookie or an Authorization Bearer header.
func AuthMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing session"},
			})
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session"},
			})
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// ExtractToken returns the session token from the cookie, falling back to
// the Authorization header. It returns "" when neither is present.
func ExtractToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
