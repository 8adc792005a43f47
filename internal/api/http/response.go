package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/jadegt/joyeria-manager/internal/entity"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

// dashboard

type DashboardResponse struct {
	Dashboard *entity.Dashboard `json:"dashboard"`
	Cached    bool              `json:"cached"`
}

func NewDashboardResponse(d *entity.Dashboard, cached bool) *DashboardResponse {
	return &DashboardResponse{Dashboard: d, Cached: cached}
}

func (rd *DashboardResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type RecordsResponse struct {
	RunID   string              `json:"runId"`
	Records []entity.LineRecord `json:"records"`
}

func NewRecordsResponse(d *entity.Dashboard) *RecordsResponse {
	return &RecordsResponse{RunID: d.RunID, Records: d.Records}
}

func (rd *RecordsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type MetricsResponse struct {
	RunID   string         `json:"runId"`
	Summary entity.Summary `json:"summary"`
}

func NewMetricsResponse(d *entity.Dashboard) *MetricsResponse {
	return &MetricsResponse{RunID: d.RunID, Summary: d.Summary}
}

func (rd *MetricsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
