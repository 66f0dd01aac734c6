package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// Statistics is the read side the API serves
type Statistics interface {
	GetTableAccuracy(ctx context.Context, playerID string) ([]*statistics.TableAccuracy, error)
	GetWeakestCells(ctx context.Context, playerID string, limit int) ([]*statistics.WeakCell, error)
	GetSessionSummary(ctx context.Context, sessionID string) (*statistics.SessionSummary, error)
}

// Server is the JSON API over the trainer
type Server struct {
	drills *trainer.Manager
	stats  Statistics
	rules  strategy.Ruleset
	logger *log.Logger
}

// NewServer creates the API
func NewServer(drills *trainer.Manager, stats Statistics, rules strategy.Ruleset, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		drills: drills,
		stats:  stats,
		rules:  rules,
		logger: logger.WithPrefix("api"),
	}
}

// Routes returns the HTTP handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/lookup", s.handleLookup)
		r.Get("/charts/{type}", s.handleChart)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/deal", s.handleDeal)
				r.Post("/answer", s.handleAnswer)
				r.Get("/summary", s.handleSessionSummary)
			})
		})

		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/accuracy", s.handleAccuracy)
			r.Get("/weakest", s.handleWeakest)
		})
	})
	return r
}

// NewHTTPServer wraps the routes in an http.Server with sane timeouts
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
