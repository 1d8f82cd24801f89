package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/DecisionSpinner_Go/internal/ads"
	"github.com/osse101/DecisionSpinner_Go/internal/handler"
	"github.com/osse101/DecisionSpinner_Go/internal/history"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/metrics"
	"github.com/osse101/DecisionSpinner_Go/internal/options"
	"github.com/osse101/DecisionSpinner_Go/internal/spin"
	"github.com/osse101/DecisionSpinner_Go/internal/sse"
)

// Settings holds the HTTP surface configuration
type Settings struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	CORSOrigins    []string
	StorageDriver  string
}

// Services are the dependencies the routes call into
type Services struct {
	Store   handler.Pinger
	Options options.Service
	Spins   spin.Service
	History history.Service
	Ads     ads.Service
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
	services   Services
}

// NewServer creates a new Server instance
func NewServer(settings Settings, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", settings.Port),
			Handler:           NewRouter(settings, services),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		services: services,
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(settings Settings, services Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   settings.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           CORSMaxAge,
	}))
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(settings.APIKey, settings.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(settings.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(services.Store))
	r.Get("/version", handler.HandleVersion(settings.StorageDriver))
	r.Handle("/metrics", promhttp.Handler())

	spinHandler := handler.NewSpinHandler(services.Spins, services.Options, services.Ads)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/options", func(r chi.Router) {
			r.Get("/", handler.HandleListOptions(services.Options))
			r.Post("/", handler.HandleAddOption(services.Options))
			r.Put("/", handler.HandleReplaceOptions(services.Options))
			r.Delete("/", handler.HandleClearOptions(services.Options))

			r.Get("/samples", handler.HandleListSamples(services.Options))
			r.Post("/samples/{name}", handler.HandleLoadSample(services.Options))

			r.Patch("/{id}", handler.HandleEditOption(services.Options))
			r.Delete("/{id}", handler.HandleRemoveOption(services.Options))
			r.Put("/{id}/weight", handler.HandleSetWeight(services.Options))
		})

		r.Route("/spin", func(r chi.Router) {
			r.Post("/", spinHandler.HandleSpin)
			r.Get("/", spinHandler.HandleSnapshot)
			r.Post("/reset", spinHandler.HandleReset)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", handler.HandleListHistory(services.History))
			r.Delete("/", handler.HandleClearHistory(services.History))
		})

		r.Route("/ads/units", func(r chi.Router) {
			r.Get("/", handler.HandleListAdUnits(services.Ads))
			r.Post("/", handler.HandleCreateAdUnit(services.Ads))
			r.Delete("/{containerID}", handler.HandleRemoveAdUnit(services.Ads))
		})

		if services.Hub != nil {
			r.Get("/events", sse.Handler(services.Hub))
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
