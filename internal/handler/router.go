package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"linxblog/internal/apperror"
	"linxblog/internal/metrics"
	"linxblog/internal/middleware"
)

// NewRouter registers every route. /posts/my must stay ahead of /posts/{id}.
func NewRouter(h *Handlers, tokens middleware.TokenValidator, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(middleware.Metrics(m)))

	auth := middleware.Auth(tokens)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	r.Handle("/users/me", protected(h.GetCurrentUser)).Methods(http.MethodGet)

	r.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	r.Handle("/posts/my", protected(h.GetMyPosts)).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/posts/{id}", protected(h.UpdatePost)).Methods(http.MethodPut)
	r.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	apperror.Write(w, apperror.NotFound(fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)))
}
