package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

// RequestID injects a unique X-Request-Id header into every
// request/response pair and stores the ID in the request context so
// downstream logs can be correlated. An incoming ID is preserved.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.New().String()
				r.Header.Set("X-Request-Id", id)
			}
			w.Header().Set("X-Request-Id", id)

			ctx := logger.ContextWithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
