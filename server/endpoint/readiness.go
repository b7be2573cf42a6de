package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DependencyCheck reports whether a named upstream dependency is
// reachable.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) bool
}

// Readiness returns a handler for readiness probes. It pings each
// upstream dependency (the speech-to-text sidecar, the LLM API) and
// reports not_ready when any is unreachable.
func Readiness(serviceName string, checks ...DependencyCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ready"
		httpStatus := http.StatusOK

		deps := make([]gin.H, 0, len(checks))
		for _, check := range checks {
			available := check.Check(c.Request.Context())
			if !available {
				status = "not_ready"
				httpStatus = http.StatusServiceUnavailable
			}
			deps = append(deps, gin.H{
				"name":      check.Name,
				"available": available,
			})
		}

		c.JSON(httpStatus, gin.H{
			"status":       status,
			"service":      serviceName,
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
