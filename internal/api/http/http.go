package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/jadegt/joyeria-manager/internal/dependency"
	"github.com/jadegt/joyeria-manager/internal/report"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// RateLimit is the request budget per RateLimitWindow per client IP.
	RateLimit       int           `mapstructure:"rate_limit"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`
}

// Server is the http server
type Server struct {
	hs    *http.Server
	c     *Config
	svc   *report.Service
	cache dependency.DashboardCache
	done  chan struct{}
}

// New creates a new server
func New(config *Config, svc *report.Service, cache dependency.DashboardCache) *Server {
	return &Server{
		c:     config,
		svc:   svc,
		cache: cache,
		done:  make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	limit, window := s.c.RateLimit, s.c.RateLimitWindow
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = 15 * time.Second
	}
	r.Use(httprate.Limit(
		limit,
		window,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	))

	r.Get("/healthz", s.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(sr chi.Router) {
			sr.Get("/", s.getDashboard)
			sr.Post("/refresh", s.refreshDashboard)
			sr.Get("/records", s.getRecords)
			sr.Get("/metrics", s.getMetrics)
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("joyeria-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, letting in-flight requests drain.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
