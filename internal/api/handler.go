// Package api provides the HTTP surface of the MN Privacy Shield service.
//
//	@title			MN Privacy Shield API
//	@version		1.0
//	@description	Minnesota Consumer Data Privacy Act request generation and tracking service
//
//	@contact.name	MN Privacy Shield
//	@contact.url	https://github.com/mnprivacy/shield
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@schemes	http https
package api

import (
	"net/http"
	"time"

	"github.com/mnprivacy/shield/internal/brokers"
	"github.com/mnprivacy/shield/internal/gpc"
	"github.com/mnprivacy/shield/internal/pdfgen"
	"github.com/mnprivacy/shield/internal/session"
	"github.com/mnprivacy/shield/internal/tracker"
)

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	directory *brokers.Directory
	store     *tracker.Store
	sessions  *session.Store
	gpcState  *gpc.State
	renderer  *pdfgen.Renderer

	maxBodySize    int64
	allowedOrigins []string
	upcomingWindow int
}

// Option configures a Handler.
type Option func(*Handler)

// WithMaxBodySize caps request body reads. Zero disables the cap.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		h.maxBodySize = n
	}
}

// WithAllowedOrigins sets the origins permitted to start opt-out sessions.
// An empty list allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		h.allowedOrigins = origins
	}
}

// WithUpcomingWindow sets the deadline lookahead in days for the upcoming
// requests endpoint.
func WithUpcomingWindow(days int) Option {
	return func(h *Handler) {
		h.upcomingWindow = days
	}
}

// NewHandler wires the endpoint dependencies together.
func NewHandler(dir *brokers.Directory, store *tracker.Store, sessions *session.Store, gpcState *gpc.State, renderer *pdfgen.Renderer, opts ...Option) *Handler {
	h := &Handler{
		directory:      dir,
		store:          store,
		sessions:       sessions,
		gpcState:       gpcState,
		renderer:       renderer,
		maxBodySize:    1 << 20,
		upcomingWindow: 7,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"shield"`
	Timestamp string `json:"timestamp" example:"2026-01-15T10:30:00Z"`
}

// handleHealth returns service health status
//
//	@Summary		Health check
//	@Description	Returns the health status of the service
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "shield",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// limitBody applies the configured body cap to a request.
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
}
