package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET    /health               liveness probe, never prefixed
//	POST   {prefix}/auth/register
//	POST   {prefix}/auth/login
//	POST   {prefix}/notes/       bearer
//	GET    {prefix}/notes/       bearer, ?skip&limit
//	GET    {prefix}/notes/{id}   bearer
//	PUT    {prefix}/notes/{id}   bearer
//	DELETE {prefix}/notes/{id}   bearer
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/health", h.health)

	prefix := strings.TrimRight(h.routePrefix, "/")
	if prefix == "" {
		router.Group(h.apiRoutes)
	} else {
		router.Route(prefix, h.apiRoutes)
	}

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	if h.requestTimeout > 0 {
		r.Use(middleware.Timeout(h.requestTimeout))
	}
	// routes without authorization
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// chi mounts "/notes" and "/notes/" onto the same subrouter
	r.Route("/notes", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createNote)
		r.Get("/", h.listNotes)
		r.Get("/{id}", h.getNote)
		r.Put("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
	})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
