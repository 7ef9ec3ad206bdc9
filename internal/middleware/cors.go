// Package middleware provides reusable HTTP middleware for the trip planner API.
package middleware

import "net/http"

// CORS headers sent on every response, whatever the request's Origin.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
	AllowHeaders = "Content-Type"
)

// NewCORSHandler returns a middleware that sets permissive CORS headers on
// every response and answers any OPTIONS request with a bare 200 before the
// request reaches the router.
func NewCORSHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", AllowOrigin)
			h.Set("Access-Control-Allow-Methods", AllowMethods)
			h.Set("Access-Control-Allow-Headers", AllowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
