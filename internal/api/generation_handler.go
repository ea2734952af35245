package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lexiblog/lexiblog-api/internal/api/shared"
	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/platform/logger"
	"github.com/lexiblog/lexiblog-api/internal/service"
)

// Messages of the sentences endpoint.
const (
	MessageWordRequired    = "Word is required"
	MessageSentencesFailed = "Failed to generate sentences. Please try again later."
)

const defaultMaxBodyBytes = 1 << 20

// GenerateRequest is the body of POST /api/gemini.
type GenerateRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// SentencesRequest is the body of POST /api/generate-sentences.
type SentencesRequest struct {
	Word string `json:"word"`
}

// SentencesResponse is the success body of POST /api/generate-sentences.
type SentencesResponse struct {
	Sentences []string `json:"sentences"`
}

// GenerationHandler handles the content generation endpoints.
type GenerationHandler struct {
	service      service.ContentService
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewGenerationHandler creates a new GenerationHandler. A non-positive
// maxBodyBytes selects 1 MiB.
func NewGenerationHandler(
	svc service.ContentService,
	logger *slog.Logger,
	maxBodyBytes int64,
) *GenerationHandler {
	if svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("content service cannot be nil for GenerationHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenerationHandler")
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &GenerationHandler{
		service:      svc,
		logger:       logger.With(slog.String("component", "generation_handler")),
		maxBodyBytes: maxBodyBytes,
	}
}

// Generate handles POST /api/gemini requests.
// The body names an action and carries its payload; the response wraps the
// result in the action's result field.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req, h.maxBodyBytes); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		HandleAPIError(w, r, domain.NewValidationError("", domain.MessageInvalidPayload, domain.ErrInvalidPayload))
		return
	}

	// A client disconnect does not abort a model call already in flight.
	ctx := context.WithoutCancel(r.Context())

	result, err := h.service.Dispatch(ctx, req.Action, decodePayload(req.Payload))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result.Body())
}

// GenerateSentences handles POST /api/generate-sentences requests.
func (h *GenerationHandler) GenerateSentences(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SentencesRequest
	if err := shared.DecodeJSON(w, r, &req, h.maxBodyBytes); err != nil || req.Word == "" {
		log.Debug("sentences request without a word")
		shared.RespondWithError(w, r, http.StatusBadRequest, MessageWordRequired)
		return
	}

	ctx := context.WithoutCancel(r.Context())

	result, err := h.service.Dispatch(ctx, domain.OperationSentences.String(),
		domain.Payload{"word": req.Word})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), sentencesMessage(err), err)
		return
	}

	sentences, _ := result.Value.([]string)
	if sentences == nil {
		sentences = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SentencesResponse{Sentences: sentences})
}

func sentencesMessage(err error) string {
	if MapErrorToStatusCode(err) == http.StatusBadRequest {
		return MessageWordRequired
	}
	return MessageSentencesFailed
}

// decodePayload turns the raw payload into string fields. Anything other
// than a JSON object is treated as an empty payload.
func decodePayload(raw json.RawMessage) domain.Payload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return domain.Payload{}
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Payload{}
	}
	return domain.NewPayload(fields)
}
