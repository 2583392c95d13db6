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

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/handler"
	"github.com/cadencehq/cadence-server/internal/logger"
	"github.com/cadencehq/cadence-server/internal/metrics"
)

type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	catalog    *catalog.Catalog
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, db handler.Pinger, eng *engine.Engine, cat *catalog.Catalog) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Static world data
		catalogHandler := handler.NewCatalogHandler(cat)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/cities", catalogHandler.HandleGetCities)
			r.Get("/venues", catalogHandler.HandleGetVenues)
			r.Get("/equipment", catalogHandler.HandleGetEquipment)
		})

		// Game lifecycle
		gameHandler := handler.NewGameHandler(eng)
		r.Route("/game", func(r chi.Router) {
			r.Post("/new", gameHandler.HandleNewGame)
			r.Post("/load", gameHandler.HandleLoadGame)
			r.Get("/state", gameHandler.HandleGetState)
			r.Post("/tick", gameHandler.HandleTick)
			r.Get("/summary", gameHandler.HandleGetSummary)
		})

		// Time slots
		activityHandler := handler.NewActivityHandler(eng)
		r.Route("/activity", func(r chi.Router) {
			r.Post("/set", activityHandler.HandleSetActivity)
			r.Post("/clear", activityHandler.HandleClearActivity)
		})

		// Day jobs and payroll
		jobHandler := handler.NewJobHandler(eng)
		r.Route("/job", func(r chi.Router) {
			r.Post("/start", jobHandler.HandleStartJob)
			r.Post("/quit", jobHandler.HandleQuitJob)
			r.Get("/payments", jobHandler.HandleGetPayments)
		})

		// Equipment shop and upkeep
		equipmentHandler := handler.NewEquipmentHandler(eng)
		r.Route("/equipment", func(r chi.Router) {
			r.Post("/purchase", equipmentHandler.HandlePurchase)
			r.Post("/repair", equipmentHandler.HandleRepair)
			r.Post("/sell", equipmentHandler.HandleSell)
			r.Get("/repairs", equipmentHandler.HandleGetRepairs)
			r.Get("/bonus", equipmentHandler.HandleGetBestBonus)
		})

		// Housing
		housingHandler := handler.NewHousingHandler(eng)
		r.Route("/housing", func(r chi.Router) {
			r.Post("/rent", housingHandler.HandleRent)
			r.Post("/upgrade", housingHandler.HandleUpgrade)
			r.Post("/downgrade", housingHandler.HandleDowngrade)
			r.Post("/pay-rent", housingHandler.HandlePayRent)
		})

		// Creative pipeline
		musicHandler := handler.NewMusicHandler(eng)
		r.Route("/music", func(r chi.Router) {
			r.Post("/songs", musicHandler.HandleCreateSong)
			r.Get("/songs/unreleased", musicHandler.HandleGetUnreleasedSongs)
			r.Post("/setlists", musicHandler.HandleCreateSetlist)
			r.Post("/setlists/rehearse", musicHandler.HandleRehearse)
			r.Post("/recordings", musicHandler.HandleRecordSong)
			r.Get("/recordings/unreleased", musicHandler.HandleGetUnreleasedRecordings)
			r.Post("/releases", musicHandler.HandlePublishRelease)
		})

		// Live shows
		gigHandler := handler.NewGigHandler(eng)
		r.Route("/gigs", func(r chi.Router) {
			r.Post("/book", gigHandler.HandleBook)
			r.Post("/cancel", gigHandler.HandleCancel)
			r.Get("/upcoming", gigHandler.HandleGetUpcoming)
			r.Get("/completed", gigHandler.HandleGetCompleted)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		engine:  eng,
		catalog: cat,
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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
