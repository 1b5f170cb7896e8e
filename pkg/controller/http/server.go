package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
	"github.com/thecontlab/continuity-sim/pkg/utils/errutil"
	"github.com/thecontlab/continuity-sim/pkg/utils/logging"
	"github.com/thecontlab/continuity-sim/pkg/utils/safe"
)

// Server exposes the audit engine and lead capture to the external wizard
type Server struct {
	router   *chi.Mux
	usecases *usecase.UseCases
}

func New(usecases *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:   r,
		usecases: usecases,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/industries", industriesHandler(usecases.Engine().Catalog()))
			r.Get("/scenario", scenarioHandler(usecases.Engine().Catalog()))
			r.Post("/next-question", nextQuestionHandler(usecases.Engine().Catalog()))
		})

		r.Post("/audit", auditHandler(usecases.Audit))

		r.Route("/leads", func(r chi.Router) {
			r.Post("/{leadID}/identity", finalizeLeadHandler(usecases.Lead))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]string{"status": "ok"})
}

// respondJSON marshals v and writes it with the JSON content type
func respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
