package httpapi

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/render"

	"github.com/jadegt/joyeria-manager/internal/entity"
)

// dashboard returns the cached snapshot when one exists, otherwise it
// computes one and caches it.
func (s *Server) dashboard(r *http.Request) (*entity.Dashboard, bool, error) {
	if d, ok := s.cache.Get(); ok {
		return d, true, nil
	}
	d, err := s.svc.BuildDashboard(r.Context())
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(d)
	return d, false, nil
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, cached, err := s.dashboard(r)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't build dashboard",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Render(w, r, NewDashboardResponse(d, cached))
}

// refreshDashboard always recomputes, replacing whatever is cached.
func (s *Server) refreshDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.BuildDashboard(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't refresh dashboard",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	s.cache.Set(d)
	render.Render(w, r, NewDashboardResponse(d, false))
}

func (s *Server) getRecords(w http.ResponseWriter, r *http.Request) {
	d, _, err := s.dashboard(r)
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Render(w, r, NewRecordsResponse(d))
}

func (s *Server) getMetrics(w http.ResponseWriter, r *http.Request) {
	d, _, err := s.dashboard(r)
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Render(w, r, NewMetricsResponse(d))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
