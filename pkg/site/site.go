// Package site serves a portfolio document over HTTP.
//
// The site shows one section per page, like the terminal pager. Each visitor
// gets a session (cookie [session.CookieName]) holding the section index and
// theme, and navigates with plain form posts that redirect back to "/":
//
//	GET  /                 current section with indicator dots
//	POST /next, /prev      advance or retreat
//	POST /jump/{index}     jump to a section
//	POST /theme/{id}       select a theme
//	GET  /resume.{format}  resume as html, txt or svg
//	GET  /api/state        navigation state as JSON
//	GET  /healthz          liveness probe
package site

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/session"
	"github.com/matzehuels/folio/pkg/theme"
)

// Config holds server configuration.
type Config struct {
	Addr       string
	SessionTTL time.Duration

	// Sessions stores visitor state. Nil uses a [session.MemoryStore].
	Sessions session.Store

	// Stars maps project URLs to star counts shown on the projects page.
	Stars map[string]int

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger
}

// Server renders one document for many visitors.
type Server struct {
	cfg      Config
	doc      *profile.Document
	sections []string
	themes   []theme.Theme
	initial  theme.Theme
	sessions session.Store
	logger   *log.Logger

	router     chi.Router
	httpServer *http.Server
}

// New creates a server for doc.
func New(doc *profile.Document, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = session.DefaultTTL
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	themes := theme.NewSwitch(context.Background(), doc.Themes, nil)

	s := &Server{
		cfg:      cfg,
		doc:      doc,
		sections: doc.ActiveSections(),
		themes:   themes.Available(),
		initial:  themes.Current(),
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/", s.handlePage)
		r.Post("/next", s.handleNext)
		r.Post("/prev", s.handlePrev)
		r.Post("/jump/{index}", s.handleJump)
		r.Post("/theme/{id}", s.handleTheme)
		r.Get("/resume.{format}", s.handleResume)
		r.Get("/api/state", s.handleState)
	})
	return r
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.logger.Info("listening", "addr", s.cfg.Addr, "sections", len(s.sections))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// CleanupSessions removes expired sessions every interval until ctx is done.
func (s *Server) CleanupSessions(ctx context.Context, interval time.Duration) {
	session.RunCleanup(ctx, s.sessions, interval, s.logger)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}
