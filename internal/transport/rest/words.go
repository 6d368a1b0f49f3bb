package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hanscope/internal/domain"
	"github.com/heartmarshall/hanscope/internal/service/wordlist"
)

// wordListService defines the minimal interface needed by WordsHandler.
type wordListService interface {
	List(ctx context.Context, kind domain.WordListKind) ([]string, error)
	Add(ctx context.Context, input wordlist.AddInput) (int, error)
	Remove(ctx context.Context, input wordlist.RemoveInput) error
	Replace(ctx context.Context, input wordlist.AddInput) (int, error)
}

// WordsHandler serves word-list management REST endpoints.
type WordsHandler struct {
	svc wordListService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc wordListService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordsRequest struct {
	Words []string `json:"words"`
}

type wordsResponse struct {
	Kind  string   `json:"kind"`
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// List handles GET /api/v1/words/{kind}.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.WordListKind(r.PathValue("kind"))

	words, err := h.svc.List(r.Context(), kind)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if words == nil {
		words = []string{}
	}

	writeJSON(w, http.StatusOK, wordsResponse{
		Kind:  kind.String(),
		Words: words,
		Count: len(words),
	})
}

// Add handles POST /api/v1/words/{kind}.
func (h *WordsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.svc.Add(r.Context(), wordlist.AddInput{
		Kind:  domain.WordListKind(r.PathValue("kind")),
		Words: req.Words,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"added": added})
}

// Replace handles PUT /api/v1/words/{kind}.
func (h *WordsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.svc.Replace(r.Context(), wordlist.AddInput{
		Kind:  domain.WordListKind(r.PathValue("kind")),
		Words: req.Words,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"words": added})
}

// Remove handles DELETE /api/v1/words/{kind}/{word}.
func (h *WordsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Remove(r.Context(), wordlist.RemoveInput{
		Kind: domain.WordListKind(r.PathValue("kind")),
		Word: r.PathValue("word"),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
