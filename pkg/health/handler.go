package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LivenessHandler always reports up; the process is alive if it can answer.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler runs all checks and reports 503 when any dependency is down.
func ReadinessHandler(registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
		defer cancel()

		resp := registry.CheckAll(ctx)
		status := http.StatusOK
		if resp.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, resp)
	}
}
