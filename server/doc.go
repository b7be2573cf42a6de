// Package server provides the HTTP server for the voice agent: a Gin
// engine behind a standard middleware stack (recovery, request IDs,
// CORS, body-size limits, request logging, optional rate limiting),
// with default health, readiness, info, and metrics endpoints.
//
// Additional http.Handlers can be mounted on the same port via Handle.
package server
