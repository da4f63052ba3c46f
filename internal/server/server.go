package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/daily-sales", s.apiHandlers.HandleDailySales)
	s.mux.HandleFunc("GET /api/product-sales", s.apiHandlers.HandleProductSales)
	s.mux.HandleFunc("GET /api/monthly-seasonality", s.apiHandlers.HandleMonthlySeasonality)
	s.mux.HandleFunc("GET /api/age-distribution", s.apiHandlers.HandleAgeDistribution)
	s.mux.HandleFunc("GET /api/age-quantity", s.apiHandlers.HandleAgeQuantity)
	s.mux.HandleFunc("GET /api/ratings", s.apiHandlers.HandleRatings)
	s.mux.HandleFunc("GET /api/preview", s.apiHandlers.HandlePreview)
	s.mux.HandleFunc("GET /api/report", s.apiHandlers.HandleReport)
	s.mux.HandleFunc("POST /api/reload", s.apiHandlers.HandleReload)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/daily-sales", s.sseHandlers.HandleDailySales)
	s.mux.HandleFunc("GET /sse/product-sales", s.sseHandlers.HandleProductSales)
	s.mux.HandleFunc("GET /sse/monthly-seasonality", s.sseHandlers.HandleMonthlySeasonality)
	s.mux.HandleFunc("GET /sse/age-distribution", s.sseHandlers.HandleAgeDistribution)
	s.mux.HandleFunc("GET /sse/age-quantity", s.sseHandlers.HandleAgeQuantity)
	s.mux.HandleFunc("GET /sse/ratings", s.sseHandlers.HandleRatings)
	s.mux.HandleFunc("GET /sse/preview", s.sseHandlers.HandlePreview)
	s.mux.HandleFunc("GET /sse/report", s.sseHandlers.HandleReport)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
