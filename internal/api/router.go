package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	// Import generated docs
	_ "github.com/mnprivacy/shield/docs"
	"github.com/mnprivacy/shield/internal/gpc"
)

// NewRouter creates a chi router with all endpoints and middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(gpc.Middleware(h.gpcState))

	// CORS for the companion web UI and Swagger.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Get("/brokers", h.handleListBrokers)
		r.Get("/brokers/{id}", h.handleGetBroker)

		r.Post("/letters/preview", h.handleLettersPreview)
		r.Post("/letters/pdf", h.handleLettersPDF)

		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleCreateRequest)
		r.Get("/requests/upcoming", h.handleUpcomingRequests)
		r.Get("/requests/overdue", h.handleOverdueRequests)
		r.Get("/requests/{id}", h.handleGetRequest)
		r.Delete("/requests/{id}", h.handleDeleteRequest)
		r.Post("/requests/{id}/status", h.handleUpdateRequestStatus)

		r.Get("/export", h.handleExport)
		r.Post("/import", h.handleImport)

		r.Post("/form/scan", h.handleFormScan)
		r.Post("/form/fill", h.handleFormFill)

		r.Get("/state", h.handleGetState)
		r.Post("/state", h.handleToggleState)

		r.Post("/session/start", h.handleSessionStart)
		r.Get("/session", h.handleSessionGet)
		r.Put("/session", h.handleSessionUpdate)
		r.Post("/session/advance", h.handleSessionAdvance)
		r.Delete("/session", h.handleSessionClear)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusFound)
	})

	return r
}
