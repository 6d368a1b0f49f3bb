package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hanscope/internal/domain"
	"github.com/heartmarshall/hanscope/internal/service/analysis"
)

// analysisService defines the minimal interface needed by AnalyzeHandler.
type analysisService interface {
	AnalyzeText(ctx context.Context, input analysis.AnalyzeInput) (*domain.AnalysisReport, error)
	AnalyzeDocuments(ctx context.Context, input analysis.BatchInput) ([]analysis.DocumentResult, error)
}

// AnalyzeHandler serves comprehension analysis REST endpoints.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Documents []batchDocument `json:"documents"`
}

type batchDocument struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type batchResultResponse struct {
	Name   string                 `json:"name"`
	Report *domain.AnalysisReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Analyze handles POST /api/v1/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.AnalyzeText(r.Context(), analysis.AnalyzeInput{Text: req.Text})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch.
func (h *AnalyzeHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	docs := make([]analysis.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = analysis.Document{Name: d.Name, Text: d.Text}
	}

	results, err := h.svc.AnalyzeDocuments(r.Context(), analysis.BatchInput{Documents: docs})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]batchResultResponse, len(results))
	for i, res := range results {
		out[i] = batchResultResponse{Name: res.Name, Report: res.Report}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}
