package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

const bytesPerMB = 1024 * 1024

// Metrics reports process-level runtime statistics: goroutine count and
// memory usage in megabytes.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, gin.H{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"goroutines": runtime.NumGoroutine(),
			"memory": gin.H{
				"alloc_mb":       m.Alloc / bytesPerMB,
				"total_alloc_mb": m.TotalAlloc / bytesPerMB,
				"sys_mb":         m.Sys / bytesPerMB,
				"gc_runs":        m.NumGC,
			},
		})
	}
}
