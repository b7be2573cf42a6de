package middleware

import (
	"net/http"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/util"
)

const defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// BodySizeLimit returns middleware that restricts the request body to
// the given size string (e.g. "10MB", "512KB", "1GB"). Audio uploads
// larger than the limit fail the multipart read in the handler.
func BodySizeLimit(maxSize string) Middleware {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
