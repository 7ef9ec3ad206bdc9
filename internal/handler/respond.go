package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// handlerFunc is the signature every routed handler implements. A returned
// error has not been written to the client yet; adapt turns it into the
// generic 500 envelope.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// errorResponse is the failure envelope for the outer error tier.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// failureResponse is the failure envelope for store operations that are
// handled where they happen.
type failureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// notFoundResponse echoes the unmatched request.
type notFoundResponse struct {
	Error    string `json:"error"`
	Method   string `json:"method"`
	Pathname string `json:"pathname"`
	Message  string `json:"message"`
}

// deletedResponse is the body of every successful DELETE.
type deletedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// errInvalidID marks a path identifier that is not a UUID.
var errInvalidID = errors.New("invalid id")

// stackError carries the stack of the handler that gave up on err.
type stackError struct {
	err   error
	stack []byte
}

func (e *stackError) Error() string { return e.err.Error() }
func (e *stackError) Unwrap() error { return e.err }

// fail marks err for the outer boundary. In development mode it records the
// caller's stack so the 500 body shows where the handler gave up.
func (s *Server) fail(err error) error {
	if !s.development {
		return err
	}
	return &stackError{err: err, stack: debug.Stack()}
}

// adapt converts a handlerFunc into an http.HandlerFunc with the outer
// failure boundary: any returned error becomes a 500.
func (s *Server) adapt(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		var stack []byte
		if s.development {
			var se *stackError
			if errors.As(err, &se) {
				stack = se.stack
			} else {
				// Only the boundary's own frames are available here.
				stack = debug.Stack()
			}
		}
		s.internalError(w, r, err.Error(), stack)
	}
}

// renderPanic is the middleware.PanicRenderer for the router.
func (s *Server) renderPanic(w http.ResponseWriter, r *http.Request, rec any, stack []byte) {
	s.internalError(w, r, fmt.Sprint(rec), stack)
}

// internalError writes the 500 envelope. The stack is included only in
// development mode.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, message string, stack []byte) {
	s.log.ErrorContext(r.Context(), "server error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", message,
	)
	body := errorResponse{Error: "Internal server error", Message: message}
	if s.development {
		body.Stack = string(stack)
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

// notFound is the fallback for every request the route table does not match.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.log.InfoContext(r.Context(), "no route matched", "method", r.Method, "path", r.URL.Path)
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Error:    "Route not found",
		Method:   r.Method,
		Pathname: r.URL.Path,
		Message:  "This API endpoint does not exist",
	})
}

// storeFailure writes the envelope for a failed update or delete. The status
// is 500 unless strict error mapping is on.
func (s *Server) storeFailure(w http.ResponseWriter, r *http.Request, label string, err error) {
	s.log.ErrorContext(r.Context(), label, "error", err)
	writeJSON(w, s.statusFor(err), failureResponse{Error: label, Details: details(err)})
}

// escalate handles a failed list or create. By default those failures are
// left to the outer boundary; with strict mapping they are reported like
// update and delete failures.
func (s *Server) escalate(w http.ResponseWriter, r *http.Request, label string, err error) error {
	if !s.strict {
		return s.fail(err)
	}
	s.storeFailure(w, r, label, err)
	return nil
}

// statusFor maps an error onto a status code under the configured policy.
func (s *Server) statusFor(err error) int {
	if !s.strict {
		return http.StatusInternalServerError
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, errInvalidID):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConstraint):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// details returns the most specific message available for err: the
// database's own message when the failure came from Postgres.
func details(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

// pathID returns the trailing segment of the request path, which every
// "/{collection}/*" route treats as the resource identifier.
func pathID(r *http.Request) string {
	p := r.URL.Path
	return p[strings.LastIndex(p, "/")+1:]
}

// validPathID reports whether seg can name a resource in collection. An empty
// segment or the collection's own name means the id was left out.
func validPathID(seg, collection string) bool {
	return seg != "" && seg != collection
}

// parseID parses a path identifier as a UUID.
func parseID(seg string) (uuid.UUID, error) {
	id, err := uuid.Parse(seg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %v", errInvalidID, seg, err)
	}
	return id, nil
}

// decode reads the JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
