package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/database"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"gorm.io/gorm"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness reports that the process is serving.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Time Clock API is running",
	})
}

// Readiness reports whether the database answers.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.db == nil {
		apierrors.ServiceUnavailable(c, "db not configured")
		return
	}
	if err := database.Ping(h.db); err != nil {
		apierrors.ServiceUnavailable(c, "db unreachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
