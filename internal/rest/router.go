package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/logging"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/schedule"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/timeparse"
)

// NewRouter builds the REST router: CORS, per-IP rate limiting, chi
// middleware, health endpoints, and one JSON endpoint per toolkit
// operation.
func NewRouter(cfg *Config, sc *server.ServerContext, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.WithTransport(logger, "rest")

	h := &handlers{
		sc:     sc,
		parser: timeparse.New(logger),
		engine: schedule.NewEngine(logger),
		logger: logger,
	}

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))

	if metrics := sc.Metrics(); metrics != nil {
		router.Use(metricsMiddleware(metrics))
	}

	healthChecker := server.NewHealthChecker(sc)
	router.Get("/healthz", healthChecker.LivenessHandler().ServeHTTP)
	router.Get("/readyz", healthChecker.ReadinessHandler().ServeHTTP)
	router.Get("/healthz/detailed", healthChecker.DetailedHealthHandler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Post("/current-time", h.currentTime)
		r.Post("/convert-time", h.convertTime)
		r.Post("/parse", h.parse)
		r.Post("/format", h.format)
		r.Post("/time-difference", h.timeDifference)
		r.Post("/working-hours-overlap", h.workingHoursOverlap)
		r.Post("/meeting-slots", h.meetingSlots)
		r.Post("/business-days", h.businessDays)
		r.Post("/holidays/check", h.holidayCheck)
		r.Post("/holidays/custom", h.addCustomHoliday)
		r.Get("/holidays/custom", h.listCustomHolidays)
		r.Post("/sunrise-sunset", h.sunriseSunset)
		r.Post("/moon-phase", h.moonPhase)
	})

	return router
}

// metricsMiddleware records request count and duration per method, path
// and status code. The route table is fixed, so raw paths are safe as a
// metric label.
func metricsMiddleware(metrics *instrumentation.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}

// Server wraps the REST router in an http.Server with sane timeouts.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a REST server bound to cfg.Addr.
func NewServer(cfg *Config, sc *server.ServerContext, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg, sc, logger),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start starts the REST server and blocks until it stops.
func (s *Server) Start() error {
	slog.Info("starting REST server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the REST server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down REST server")
	return s.httpServer.Shutdown(ctx)
}
