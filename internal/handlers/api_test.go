package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

func createTestAnalytics() *services.Analytics {
	a := services.NewAnalytics()
	testData := []models.SaleRecord{
		{
			PurchaseDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ProductType:   "Laptop",
			Quantity:      2,
			Age:           30,
			Gender:        "Male",
			LoyaltyMember: models.FlagYes,
			PaymentMethod: "Credit Card",
			OrderStatus:   models.StatusCompleted,
			AddOns:        "None",
			Promotion:     models.FlagNo,
			Rating:        5,
		},
		{
			PurchaseDate:  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			ProductType:   "Tablet",
			Quantity:      1,
			Age:           25,
			Gender:        "Female",
			LoyaltyMember: models.FlagNo,
			PaymentMethod: "Cash",
			OrderStatus:   models.StatusCompleted,
			AddOns:        "Warranty",
			AddOnTotal:    29.99,
			Promotion:     models.FlagYes,
			Rating:        4,
		},
	}
	a.SetRecords(testData)
	return a
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewAPIHandlers(t *testing.T) {
	analytics := createTestAnalytics()
	handlers := NewAPIHandlers(analytics, testLogger())

	if handlers == nil {
		t.Fatal("NewAPIHandlers() returned nil")
	}
	if handlers.analytics != analytics {
		t.Error("NewAPIHandlers() should set analytics field")
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}
	return response
}

func TestAPIHandlers_AggregateEndpoints(t *testing.T) {
	analytics := createTestAnalytics()
	handlers := NewAPIHandlers(analytics, testLogger())

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"daily sales", "/api/daily-sales", handlers.HandleDailySales},
		{"product sales", "/api/product-sales", handlers.HandleProductSales},
		{"monthly seasonality", "/api/monthly-seasonality", handlers.HandleMonthlySeasonality},
		{"age quantity", "/api/age-quantity", handlers.HandleAgeQuantity},
		{"ratings", "/api/ratings", handlers.HandleRatings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			tt.handler(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type = %q, want application/json", ct)
			}
			if cc := w.Header().Get("Cache-Control"); cc != aggregateCacheControl {
				t.Errorf("cache-control = %q, want %q", cc, aggregateCacheControl)
			}

			response := decodeEnvelope(t, w)
			data, ok := response["data"].([]interface{})
			if !ok {
				t.Fatal("expected data array in response")
			}
			if len(data) == 0 {
				t.Error("expected non-empty data")
			}
		})
	}
}

func TestAPIHandlers_HandleDailySales_Shape(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/daily-sales", nil)
	w := httptest.NewRecorder()
	handlers.HandleDailySales(w, req)

	response := decodeEnvelope(t, w)
	data := response["data"].([]interface{})
	first, ok := data[0].(map[string]interface{})
	if !ok {
		t.Fatal("invalid daily sales item structure")
	}
	if date, hasDate := first["date"].(string); !hasDate || date == "" {
		t.Error("daily sales item should have a non-empty date")
	}
	if qty, hasQty := first["quantity"].(float64); !hasQty || qty <= 0 {
		t.Error("daily sales item should have a positive quantity")
	}
}

func TestAPIHandlers_HandleAgeDistribution(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/age-distribution", nil)
	w := httptest.NewRecorder()
	handlers.HandleAgeDistribution(w, req)

	response := decodeEnvelope(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected age distribution object")
	}
	if bins, ok := data["bins"].([]interface{}); !ok || len(bins) == 0 {
		t.Error("expected histogram bins")
	}
	if density, ok := data["density"].([]interface{}); !ok || len(density) == 0 {
		t.Error("expected density curve points")
	}
}

func TestAPIHandlers_HandlePreview(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/preview", nil)
	w := httptest.NewRecorder()
	handlers.HandlePreview(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	decodeEnvelope(t, w)
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handlers.HandleHealth(w, req)

	response := decodeEnvelope(t, w)
	healthData, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected health data in response")
	}
	if status, ok := healthData["status"].(string); !ok || status != "healthy" {
		t.Errorf("health status = %v, want 'healthy'", healthData["status"])
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	handlers := NewAPIHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	handlers.HandleStats(w, req)

	response := decodeEnvelope(t, w)
	stats, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected stats object")
	}
	if count, ok := stats["record_count"].(float64); !ok || count != 2 {
		t.Errorf("record_count = %v, want 2", stats["record_count"])
	}
}

func TestAPIHandlers_HandleReload_MissingFile(t *testing.T) {
	analytics := createTestAnalytics()
	handlers := NewAPIHandlers(analytics, testLogger())

	// Point the service at a CSV that is then removed.
	path := filepath.Join(t.TempDir(), "gone.csv")
	csv := `Purchase Date,Add-ons Purchased,Add-on Total,Age,Gender,Loyalty Member,Payment Method,Order Status,Product Type,Quantity,Rating,Promotion_Flag
2024-01-15,None,0,30,Male,Yes,Credit Card,Completed,Laptop,2,5,No`
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := analytics.LoadFromCSV(context.Background(), path); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
	w := httptest.NewRecorder()
	handlers.HandleReload(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, ok := response["success"].(bool); !ok || success {
		t.Error("expected success=false for failed reload")
	}
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object")
	}
	if code := errObj["code"]; code != "FILE_NOT_FOUND" {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", code)
	}

	// The previous snapshot survives the failed reload.
	if len(handlers.analytics.DailySales()) == 0 {
		t.Error("failed reload must keep the previous snapshot")
	}
}
