package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root handles GET /, the liveness probe.
func (h *Handlers) Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-service",
	})
}
