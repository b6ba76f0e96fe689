package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness of the API and its backing services. A degraded
// dependency flips the response to 503 without exposing internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		servicios := gin.H{"postgres": "ok", "redis": "ok"}
		sano := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			servicios["postgres"] = "sin conexión"
			sano = false
		}
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			servicios["redis"] = "sin conexión"
			sano = false
		}

		estado := "ok"
		status := http.StatusOK
		if !sano {
			estado = "degradado"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{"estado": estado, "servicios": servicios})
	}
}
