package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
	"github.com/starfederation/datastar-go/datastar"
)

var previewTableTemplate = template.Must(template.New("previewTable").Parse(`
<div id="preview-content">
<table class="modern-table">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</tbody>
</table>
</div>`))

var reportTemplate = template.Must(template.New("report").Parse(`
<div id="report-content">
<ul class="report-lines">
{{range .}}<li>{{.}}</li>
{{end}}
</ul>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *SSEHandlers) renderPreviewTable(preview models.Preview) (string, error) {
	var buf strings.Builder
	err := previewTableTemplate.Execute(&buf, preview)
	return buf.String(), err
}

func (h *SSEHandlers) renderReport(lines []string) (string, error) {
	var buf strings.Builder
	err := reportTemplate.Execute(&buf, lines)
	return buf.String(), err
}

// patchSignal marshals a single chart payload and patches it into the
// page signals along with a loaded marker for the panel.
func (h *SSEHandlers) patchSignal(w http.ResponseWriter, r *http.Request, key string, payload any, panel string) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{key: payload})
	if err != nil {
		h.logger.Error("marshal chart data", "signal", key, "error", err)
		return
	}
	sse.PatchSignals(jsonData)
	sse.PatchElements(`<div id="` + panel + `">Chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleDailySales(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "dailyData", h.analytics.DailySales(), "daily-content")
}

func (h *SSEHandlers) HandleProductSales(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "productData", h.analytics.ProductSales(), "products-content")
}

func (h *SSEHandlers) HandleMonthlySeasonality(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "monthlyData", h.analytics.MonthlySeasonality(), "monthly-content")
}

func (h *SSEHandlers) HandleAgeDistribution(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "ageDistData", h.analytics.AgeDistribution(), "age-dist-content")
}

func (h *SSEHandlers) HandleAgeQuantity(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "scatterData", h.analytics.AgeQuantity(), "scatter-content")
}

func (h *SSEHandlers) HandleRatings(w http.ResponseWriter, r *http.Request) {
	h.patchSignal(w, r, "ratingsData", h.analytics.Ratings(), "ratings-content")
}

func (h *SSEHandlers) HandlePreview(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderPreviewTable(h.analytics.Preview())
	if err != nil {
		h.logger.Error("render preview table", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderReport(h.analytics.ReportLines())
	if err != nil {
		h.logger.Error("render report", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll re-patches every panel from the current snapshot in
// one stream.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	previewHTML, err := h.renderPreviewTable(h.analytics.Preview())
	if err != nil {
		h.logger.Error("render preview table", "error", err)
		return
	}
	sse.PatchElements(previewHTML)

	reportHTML, err := h.renderReport(h.analytics.ReportLines())
	if err != nil {
		h.logger.Error("render report", "error", err)
		return
	}
	sse.PatchElements(reportHTML)

	allSignals, err := json.Marshal(map[string]any{
		"dailyData":   h.analytics.DailySales(),
		"productData": h.analytics.ProductSales(),
		"monthlyData": h.analytics.MonthlySeasonality(),
		"ageDistData": h.analytics.AgeDistribution(),
		"scatterData": h.analytics.AgeQuantity(),
		"ratingsData": h.analytics.Ratings(),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
