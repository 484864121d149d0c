package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health reports process liveness and database reachability. Unprotected.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		overall, dbStatus := "ok", "ok"
		status := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			overall, dbStatus = "degraded", "down"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": overall, "database": dbStatus})
	}
}
