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

	"github.com/osse101/CateringPlanner_Go/internal/booking"
	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/database"
	"github.com/osse101/CateringPlanner_Go/internal/handler"
	"github.com/osse101/CateringPlanner_Go/internal/logger"
	"github.com/osse101/CateringPlanner_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
	Storage        string
	Detector       *SuspiciousActivityDetector
}

// Services are the application services the routes delegate to.
// DBPool is nil when running on in-memory storage.
type Services struct {
	DBPool    database.Pool
	Catalog   catalog.Service
	Booking   booking.Service
	Assistant handler.Assistant
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	detector := opts.Detector
	if detector == nil {
		detector = NewSuspiciousActivityDetector()
	}
	if opts.APIKey == "" {
		slog.Default().Warn(LogMsgAuthDisabled)
	}

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DBPool, opts.Storage))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu-items", func(r chi.Router) {
			r.Get("/", handler.HandleListMenuItems(svc.Catalog))
			r.Post("/", handler.HandleCreateMenuItem(svc.Catalog))
			r.Get("/{id}", handler.HandleGetMenuItem(svc.Catalog))
			r.Put("/{id}", handler.HandleUpdateMenuItem(svc.Catalog))
			r.Delete("/{id}", handler.HandleDeleteMenuItem(svc.Catalog))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(svc.Catalog))
			r.Post("/", handler.HandleCreateRecipe(svc.Catalog))
			r.Get("/{id}", handler.HandleGetRecipe(svc.Catalog))
			r.Put("/{id}", handler.HandleUpdateRecipe(svc.Catalog))
			r.Delete("/{id}", handler.HandleDeleteRecipe(svc.Catalog))
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", handler.HandleListEvents(svc.Booking))
			r.Post("/", handler.HandleCreateEvent(svc.Booking))
			r.Get("/{id}", handler.HandleGetEvent(svc.Booking))
			r.Put("/{id}", handler.HandleUpdateEvent(svc.Booking))
			r.Delete("/{id}", handler.HandleDeleteEvent(svc.Booking))
			r.Patch("/{id}/status", handler.HandleUpdateEventStatus(svc.Booking))
			r.Get("/{id}/shopping-list", handler.HandleEventShoppingList(svc.Booking))
		})

		r.Post("/shopping-list", handler.HandleAdHocShoppingList(svc.Booking))
		r.Post("/assistant", handler.HandleAssistant(svc.Assistant))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// loggingMiddleware tags the request with an id, echoes it in X-Request-ID
// and logs start and completion. A client supplied id is kept.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > MaxRequestIDLength {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
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
