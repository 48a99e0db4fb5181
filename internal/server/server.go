// Package server exposes the platform over HTTP. It is the composition
// root for the UI: it owns the single session store the web client talks
// to, plus the lesson/resource catalog and the dashboard queries.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/example/signlearn/internal/catalog"
	"github.com/example/signlearn/internal/database"
	"github.com/example/signlearn/internal/session"
	"github.com/example/signlearn/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// AccountStore reads and writes learner account rows. Satisfied by
// database.UserRepository.
type AccountStore interface {
	GetByID(id string) (*models.User, error)
	UpdateProgress(user *models.User) error
}

// TokenRevoker deletes an issued auth token when a session ends. Satisfied
// by database.TokenRepository.
type TokenRevoker interface {
	Delete(token string) error
}

// Server serves the web API
type Server struct {
	cfg      *Config
	sessions *session.Store
	catalog  *catalog.Catalog
	activity *database.ActivityRepository // nil when running without a database
	accounts AccountStore // nil unless the database auth mode is active
	tokens   TokenRevoker // nil unless the database auth mode is active
	httpSrv  *http.Server
}

// New creates a server over the given collaborators. activity may be nil;
// dashboard streaks and minutes then read as zero.
func New(cfg *Config, sessions *session.Store, cat *catalog.Catalog, activity *database.ActivityRepository) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: sessions,
		catalog:  cat,
		activity: activity,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// UseAccountDatabase attaches the account stores of the database auth
// mode: progress updates are mirrored into the account row so a later
// login reports the same state, and logout revokes the issued token.
func (s *Server) UseAccountDatabase(accounts AccountStore, tokens TokenRevoker) {
	s.accounts = accounts
	s.tokens = tokens
}

// routes builds the chi router for the API
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/signup", s.handleSignup)
			r.Post("/logout", s.handleLogout)
		})
		r.Get("/me", s.handleMe)
		r.Post("/progress", s.handleProgress)
		r.Get("/lessons", s.handleLessons)
		r.Get("/resources", s.handleResources)
		r.Get("/dashboard", s.handleDashboard)
	})

	return r
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.cfg.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}
