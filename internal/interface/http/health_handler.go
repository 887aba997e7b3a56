package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET / with a plain text liveness line.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "API is running")
}
