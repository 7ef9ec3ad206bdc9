package middleware

import (
	"net/http"
	"runtime/debug"
)

// PanicRenderer writes the response for a recovered panic. stack is the
// goroutine stack captured at the recovery point.
type PanicRenderer func(w http.ResponseWriter, r *http.Request, rec any, stack []byte)

// NewRecoverer returns a middleware that recovers panics from downstream
// handlers and hands them to render instead of dropping the connection.
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func NewRecoverer(render PanicRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				render(w, r, rec, debug.Stack())
			}()
			next.ServeHTTP(w, r)
		})
	}
}
