package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/middleware"
)

// route binds one method and path pattern to a handler. An empty method
// matches every method. Patterns ending in "/*" take the trailing path
// segment as the resource identifier.
type route struct {
	method  string
	pattern string
	handle  handlerFunc
}

// routes is the dispatch table. Patterns never overlap for the same method,
// so the first entry that matches a request is the only one.
func (s *Server) routes() []route {
	return []route{
		{"", "/api/test", s.health},

		{http.MethodGet, "/api/trips", s.listTrips},
		{http.MethodPost, "/api/trips", s.createTrip},
		{http.MethodDelete, "/api/trips/*", s.deleteTrip},

		{http.MethodPost, "/api/cities", s.createCity},
		{http.MethodPatch, "/api/cities/*", s.updateCity},
		{http.MethodDelete, "/api/cities/*", s.deleteCity},

		{http.MethodPost, "/api/activities", s.createActivity},
		{http.MethodPatch, "/api/activities/*", s.updateActivity},
		{http.MethodDelete, "/api/activities/*", s.deleteActivity},
	}
}

// Handler returns the complete HTTP handler: middleware stack, route table,
// and the 404 fallback for anything the table does not match.
//
// Middleware order: RequestID → RealIP → request logging → CORS (which
// answers OPTIONS itself) → panic recovery → body cap → routes. CORS runs
// before recovery so the 500 written for a panic still carries its headers.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(middleware.NewCORSHandler())
	r.Use(middleware.NewRecoverer(s.renderPanic))
	r.Use(middleware.NewMaxBodySizeHandler(s.maxBody))

	for _, rt := range s.routes() {
		h := s.adapt(rt.handle)
		if rt.method == "" {
			r.HandleFunc(rt.pattern, h)
			continue
		}
		r.MethodFunc(rt.method, rt.pattern, h)
	}

	// A known path with the wrong method is just another unmatched route.
	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.notFound)
	return r
}
