package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare/internal/core/database"
)

const Version = "3.0.0"

type Health struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHealth(db *gorm.DB, log *zap.Logger) *Health {
	return &Health{db: db, log: log}
}

// Check always answers 200; a dead store only flips the database field
// so the platform keeps the instance alive while storage recovers.
func (h *Health) Check(c *gin.Context) {
	dbStatus := "connected"
	if err := database.Ping(h.db); err != nil {
		h.log.Error("health check db error", zap.Error(err))
		dbStatus = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  dbStatus,
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
