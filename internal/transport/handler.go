// Package transport exposes the HTTP JSON API.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

const (
	defaultBlockCount = 10
	maxBlockCount     = 1000
)

// Insights is the service surface the HTTP handlers call into.
type Insights interface {
	DifficultySummary(ctx context.Context, count int) (model.DifficultySummary, error)
	MiningTimeSummary(ctx context.Context, count int) (model.MiningTimeSummary, error)
	RecentBlocks(ctx context.Context, count int) ([]model.BlockRecord, error)
	BlockDetails(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error)
	TemplateSummary(ctx context.Context) (model.TemplateSummary, error)
	NodeStatus(ctx context.Context) (model.NodeStatus, error)
}

// Handler serves the analysis API.
type Handler struct {
	insights Insights
	logger   *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(insights Insights, logger *zap.Logger) *Handler {
	return &Handler{
		insights: insights,
		logger:   logger,
	}
}

// Register mounts all API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/analysis/difficulty", h.difficulty)
	mux.HandleFunc("GET /v1/analysis/mining-time", h.miningTime)
	mux.HandleFunc("GET /v1/blocks/recent", h.recentBlocks)
	mux.HandleFunc("GET /v1/blocks/{hash}", h.blockDetails)
	mux.HandleFunc("GET /v1/template/summary", h.templateSummary)
	mux.HandleFunc("GET /v1/node/status", h.nodeStatus)
}

func (h *Handler) difficulty(w http.ResponseWriter, r *http.Request) {
	count, ok := h.blockCount(w, r)
	if !ok {
		return
	}
	summary, err := h.insights.DifficultySummary(r.Context(), count)
	if err != nil {
		h.serverError(w, r, "difficulty summary", err)
		return
	}
	h.writeJSON(w, summary)
}

func (h *Handler) miningTime(w http.ResponseWriter, r *http.Request) {
	count, ok := h.blockCount(w, r)
	if !ok {
		return
	}
	summary, err := h.insights.MiningTimeSummary(r.Context(), count)
	if err != nil {
		h.serverError(w, r, "mining time summary", err)
		return
	}
	h.writeJSON(w, summary)
}

func (h *Handler) recentBlocks(w http.ResponseWriter, r *http.Request) {
	count, ok := h.blockCount(w, r)
	if !ok {
		return
	}
	blocks, err := h.insights.RecentBlocks(r.Context(), count)
	if err != nil {
		h.serverError(w, r, "recent blocks", err)
		return
	}
	h.writeJSON(w, blocks)
}

func (h *Handler) blockDetails(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")
	block, err := h.insights.BlockDetails(r.Context(), hash)
	if err != nil {
		h.serverError(w, r, "block details", err)
		return
	}
	h.writeJSON(w, block)
}

func (h *Handler) templateSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.insights.TemplateSummary(r.Context())
	if err != nil {
		h.serverError(w, r, "template summary", err)
		return
	}
	h.writeJSON(w, summary)
}

func (h *Handler) nodeStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.insights.NodeStatus(r.Context())
	if err != nil {
		h.serverError(w, r, "node status", err)
		return
	}
	h.writeJSON(w, status)
}

func (h *Handler) blockCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return defaultBlockCount, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > maxBlockCount {
		http.Error(w, "count must be an integer between 1 and 1000", http.StatusBadRequest)
		return 0, false
	}
	return count, true
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	h.logger.Error("request failed",
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
