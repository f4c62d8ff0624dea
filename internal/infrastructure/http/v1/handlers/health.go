package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakala/internal/infrastructure/storage/postgres"
)

// HealthHandler reports process and database health.
type HealthHandler struct {
	BaseHandler
	pool *postgres.Pool
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(pool *postgres.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Live reports that the process is up.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the database is reachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
