package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/question-scorer/internal/config"
	"github.com/heartmarshall/question-scorer/internal/transport/middleware"
)

// RouterDeps groups everything the HTTP surface needs.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	TrustProxy  bool
	RateLimiter *middleware.RateLimiter
	PerMinute   int
	Health      *HealthHandler
	Rubric      *RubricHandler
	Evaluation  *EvaluationHandler
}

// NewRouter wires health probes and the /api/v1 routes.
func NewRouter(d RouterDeps) http.Handler {
	// RealIP rewrites RemoteAddr, which keys the rate limiter, so forwarded
	// headers are honoured only when a trusted proxy sets them.
	mws := []middleware.Middleware{middleware.Recovery(d.Logger)}
	if d.TrustProxy {
		mws = append(mws, chimw.RealIP)
	}
	mws = append(mws,
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)

	r := chi.NewRouter()
	r.Use(middleware.Chain(mws...))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/rubric", d.Rubric.Rubric)
		api.Get("/budget", d.Rubric.Budget)

		api.Group(func(scored chi.Router) {
			if d.RateLimiter != nil {
				scored.Use(d.RateLimiter.Limit(d.PerMinute))
			}
			scored.Post("/evaluations", d.Evaluation.Evaluate)
			scored.Post("/sessions", d.Evaluation.Session)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
