package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that caps request bodies at limit
// bytes. Reading past the cap fails, so an oversized JSON body surfaces as a
// decode error in the handler. A limit <= 0 disables the cap.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
