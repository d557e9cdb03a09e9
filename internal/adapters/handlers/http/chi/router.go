package chi

import (
	"encoding/json"
	"file-processor/internal/adapters/handlers/http/chi/httpauth"
	"file-processor/internal/adapters/handlers/http/chi/v1/upload"
	"file-processor/internal/core/port"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions holds the router settings coming from configuration
type RouterOptions struct {
	Env            string
	MaxRequestSize int64
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, uploadHandler *upload.HandlerV1, verifier port.TokenVerifier, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(MetricsMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if opts.MaxRequestSize > 0 {
		r.Use(middleware.RequestSize(opts.MaxRequestSize))
	}

	if opts.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Group(func(r chi.Router) {
		r.Use(httpauth.Middleware(verifier, logger))
		r.Mount("/", uploadHandler.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
