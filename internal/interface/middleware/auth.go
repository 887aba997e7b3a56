package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/pkg/helpers"
	"github.com/taskhub/taskhub-api/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user id.
const CtxUserIDKey = "userID"

// Auth extracts the session token from the Authorization header, verifies
// it and injects the decoded user id into the Gin context. The header
// carries the raw token, no "Bearer " prefix. Downstream handlers never run
// on a missing or invalid token.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.MessageBody{Message: "Unauthorized: No token provided"})
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.MessageBody{Message: "Unauthorized: Invalid token"})
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
