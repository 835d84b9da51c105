package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/upb/meeting-summarizer/utils"
)

// SummarizeRequest represents the inbound summarization request
type SummarizeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// SummarizeResponse carries the formatted analysis back to the caller
type SummarizeResponse struct {
	Analysis string `json:"analysis"`
}

// SummarizeService defines the orchestrator contract the handler depends on
type SummarizeService interface {
	ProcessTranscript(ctx context.Context, transcript string) string
}

// SummarizeHandler handles transcript summarization HTTP requests
type SummarizeHandler struct {
	service  SummarizeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSummarizeHandler creates a new SummarizeHandler
func NewSummarizeHandler(service SummarizeService, logger *zap.Logger) *SummarizeHandler {
	return &SummarizeHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// HandleSummarize handles POST /api/v1/summarize.
// Thin handler: parse, validate, delegate. The orchestrator owns the
// whitespace-only check and never fails, so the only error paths here are
// malformed payloads.
func (h *SummarizeHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body", zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("request validation failed", zap.Error(err))
		_ = utils.WriteBadRequest(w, "Please enter a meeting transcript.", nil)
		return
	}

	analysis := h.service.ProcessTranscript(ctx, req.Transcript)

	_ = utils.WriteOK(w, SummarizeResponse{Analysis: analysis})
}
