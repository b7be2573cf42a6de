// Package middleware provides the HTTP middleware stack applied by the
// server: panic recovery, request IDs, CORS, body-size limits, request
// logging, and rate limiting.
//
// All middleware uses the standard http.Handler signature so it applies
// uniformly to every route mounted on the server, Gin or otherwise.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the
// outermost (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
