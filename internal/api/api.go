// Package api exposes algorithm metadata and KAT validation over a small
// REST API using Chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remiblancher/pqbind/internal/config"
	"github.com/remiblancher/pqbind/internal/pqc"
)

// Server wires the validation handlers to a binder and configuration.
type Server struct {
	cfg     config.Config
	version string
	binder  pqc.Binder
}

// New creates the HTTP handler for the API.
func New(cfg config.Config, version string, binder pqc.Binder) http.Handler {
	s := &Server{cfg: cfg, version: version, binder: binder}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logger)
	r.Use(recoverer)

	r.Get("/health", s.health)
	r.Get("/algorithms", s.algorithms)
	r.Get("/algorithms/{id}", s.algorithm)
	r.Post("/validate/{id}", s.validate)

	return r
}
