package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
)

func TestNewSSEHandlers(t *testing.T) {
	analytics := createTestAnalytics()
	logger := testLogger()

	handlers := NewSSEHandlers(analytics, logger)

	if handlers == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if handlers.analytics != analytics {
		t.Error("NewSSEHandlers() should set analytics field")
	}
	if handlers.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestSSEHandlers_renderPreviewTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), testLogger())

	preview := models.Preview{
		Columns: []string{"Purchase Date", "Product Type", "Quantity"},
		Rows: [][]string{
			{"2024-01-15", "Laptop", "2"},
			{"2024-02-10", "Tablet", "1"},
		},
	}

	html, err := handlers.renderPreviewTable(preview)
	if err != nil {
		t.Fatalf("renderPreviewTable() failed: %v", err)
	}

	expectedContent := []string{
		`<table class="modern-table">`,
		"<th>Purchase Date</th>",
		"<th>Product Type</th>",
		"<th>Quantity</th>",
		"<td>Laptop</td>",
		"<td>Tablet</td>",
		"2024-01-15",
	}
	for _, content := range expectedContent {
		if !strings.Contains(html, content) {
			t.Errorf("expected HTML to contain %q", content)
		}
	}
}

func TestSSEHandlers_renderReport(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), testLogger())

	lines := []string{
		"Initial rows: 10",
		"Removed duplicates. Remaining rows: 9",
		"Filtered for 'Completed' orders. Rows for analysis: 8",
	}

	html, err := handlers.renderReport(lines)
	if err != nil {
		t.Fatalf("renderReport() failed: %v", err)
	}

	if !strings.Contains(html, `id="report-content"`) {
		t.Error("report HTML should target the report-content panel")
	}
	for _, line := range lines {
		// The single quotes get HTML-escaped by the template engine.
		probe := strings.Split(line, "'")[0]
		if !strings.Contains(html, probe) {
			t.Errorf("expected report HTML to contain %q", probe)
		}
	}
}

func TestSSEHandlers_ChartEndpoints(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), testLogger())

	tests := []struct {
		path    string
		handler http.HandlerFunc
		signal  string
	}{
		{"/sse/daily-sales", handlers.HandleDailySales, "dailyData"},
		{"/sse/product-sales", handlers.HandleProductSales, "productData"},
		{"/sse/monthly-seasonality", handlers.HandleMonthlySeasonality, "monthlyData"},
		{"/sse/age-distribution", handlers.HandleAgeDistribution, "ageDistData"},
		{"/sse/age-quantity", handlers.HandleAgeQuantity, "scatterData"},
		{"/sse/ratings", handlers.HandleRatings, "ratingsData"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			tt.handler(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain text/event-stream", ct)
			}
			if body := w.Body.String(); !strings.Contains(body, tt.signal) {
				t.Errorf("SSE body should patch the %s signal", tt.signal)
			}
		})
	}
}

func TestSSEHandlers_HandlePreview(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/preview", nil)
	w := httptest.NewRecorder()
	handlers.HandlePreview(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); !strings.Contains(body, "preview-content") {
		t.Error("SSE body should patch the preview panel")
	}
}

func TestSSEHandlers_HandleRefreshAll(t *testing.T) {
	handlers := NewSSEHandlers(createTestAnalytics(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/refresh-all", nil)
	w := httptest.NewRecorder()
	handlers.HandleRefreshAll(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, signal := range []string{"dailyData", "productData", "monthlyData", "ageDistData", "scatterData", "ratingsData"} {
		if !strings.Contains(body, signal) {
			t.Errorf("refresh-all should patch the %s signal", signal)
		}
	}
	if !strings.Contains(body, "preview-content") {
		t.Error("refresh-all should re-patch the preview panel")
	}
	if !strings.Contains(body, "report-content") {
		t.Error("refresh-all should re-patch the report panel")
	}
}
