package response

import (
	"github.com/gin-gonic/gin"
)

// MessageBody is the JSON envelope for plain status messages.
type MessageBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// TokenBody is the JSON envelope for register/login responses.
type TokenBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Message writes a {message} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

// Error writes a {message} body with optional field details. Internal error
// values are never echoed to the client; callers log them instead.
func Error(c *gin.Context, status int, msg string, details map[string]string) {
	c.JSON(status, MessageBody{Message: msg, Details: details})
}

// Token writes a {message, token} body with the given status.
func Token(c *gin.Context, status int, msg, token string) {
	c.JSON(status, TokenBody{Message: msg, Token: token})
}
