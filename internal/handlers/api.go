package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const aggregateCacheControl = "public, max-age=300"

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func cacheHeaders() map[string]string {
	return map[string]string{
		"Cache-Control": aggregateCacheControl,
	}
}

func (h *APIHandlers) HandleDailySales(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.DailySales(), cacheHeaders())
}

func (h *APIHandlers) HandleProductSales(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.ProductSales(), cacheHeaders())
}

func (h *APIHandlers) HandleMonthlySeasonality(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.MonthlySeasonality(), cacheHeaders())
}

func (h *APIHandlers) HandleAgeDistribution(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.AgeDistribution(), cacheHeaders())
}

func (h *APIHandlers) HandleAgeQuantity(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.AgeQuantity(), cacheHeaders())
}

func (h *APIHandlers) HandleRatings(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.Ratings(), cacheHeaders())
}

func (h *APIHandlers) HandlePreview(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Preview())
}

func (h *APIHandlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.ReportLines())
}

// HandleReload re-runs the CSV pipeline. A failed reload keeps the
// previous snapshot and surfaces the pipeline error to the caller.
func (h *APIHandlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	if err := h.analytics.Reload(r.Context()); err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	errors.WriteSuccess(w, h.analytics.Stats())
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
