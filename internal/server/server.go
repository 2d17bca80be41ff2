package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/content"
	"github.com/whaamkabaam/trust-skin-hub/internal/database"
	"github.com/whaamkabaam/trust-skin-hub/internal/handler"
	"github.com/whaamkabaam/trust-skin-hub/internal/importer"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/metrics"
	"github.com/whaamkabaam/trust-skin-hub/internal/operator"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	catalogService  catalog.Service
	operatorService operator.Service
	contentService  content.Service
	importerService importer.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, catalogService catalog.Service, operatorService operator.Service, contentService content.Service, importerService importer.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog routes
		r.Route("/boxes", func(r chi.Router) {
			r.Get("/", handler.HandleListBoxes(catalogService))
			r.Get("/search", handler.HandleSearchBoxes(catalogService))
			r.Get("/{slug}", handler.HandleGetBoxBySlug(catalogService))
		})

		r.Post("/portfolio/analyze", handler.HandleAnalyzePortfolio(catalogService))
		r.Post("/slug/resolve", handler.HandleResolveSlug(catalogService))

		r.Get("/categories", handler.HandleListCategories(catalogService))

		// Public operator review pages
		r.Route("/operators", func(r chi.Router) {
			r.Get("/", handler.HandleListOperators(operatorService))
			r.Get("/{slug}", handler.HandleGetOperatorBySlug(operatorService))
			r.Get("/{operatorID}/content", handler.HandleGetContentPage(contentService))
		})

		// Admin routes require the API key
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(apiKey, trustedProxies, detector))

			r.Route("/boxes", func(r chi.Router) {
				r.Post("/", handler.HandleCreateBox(catalogService))
				r.Put("/{boxID}", handler.HandleUpdateBox(catalogService))
				r.Delete("/{boxID}", handler.HandleDeleteBox(catalogService))
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", handler.HandleCreateCategory(catalogService))
				r.Put("/{categoryID}", handler.HandleUpdateCategory(catalogService))
				r.Delete("/{categoryID}", handler.HandleDeleteCategory(catalogService))
			})

			r.Route("/operators", func(r chi.Router) {
				r.Get("/", handler.HandleListAllOperators(operatorService))
				r.Post("/", handler.HandleCreateOperator(operatorService))
				r.Put("/{operatorID}", handler.HandleUpdateOperator(operatorService))
				r.Delete("/{operatorID}", handler.HandleDeleteOperator(operatorService))
				r.Post("/{operatorID}/status", handler.HandleChangeOperatorStatus(operatorService))
				r.Post("/{operatorID}/schedule", handler.HandleSchedulePublish(operatorService))

				r.Route("/{operatorID}/content", func(r chi.Router) {
					r.Post("/", handler.HandleAddContentBlock(contentService))
					r.Post("/reorder", handler.HandleReorderContentBlocks(contentService))
				})
			})

			r.Route("/content", func(r chi.Router) {
				r.Put("/{blockID}", handler.HandleUpdateContentBlock(contentService))
				r.Delete("/{blockID}", handler.HandleDeleteContentBlock(contentService))
			})

			r.Post("/import/csv", handler.HandleImportCSV(importerService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		catalogService:  catalogService,
		operatorService: operatorService,
		contentService:  contentService,
		importerService: importerService,
	}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
