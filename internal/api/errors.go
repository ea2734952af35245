package api

import (
	"errors"
	"net/http"

	"github.com/lexiblog/lexiblog-api/internal/api/shared"
	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/redact"
)

// User-facing messages for downstream failures.
const (
	MessageMissingCredential = "API Key não encontrada. Por favor, configure a variável GEMINI_API_KEY em seu arquivo .env.local"
	MessageMalformedResponse = "A resposta do modelo veio em um formato inesperado. Tente novamente."
	MessageContentBlocked    = "O conteúdo foi bloqueado pelos filtros de segurança do modelo."
	MessageGenerationFailed  = "Falha ao gerar conteúdo."
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Requests
// rejected before dispatch are client errors; everything else is a server
// error, including a missing credential.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the client for err.
// Upstream failures keep the provider's message, with credentials masked.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MessageGenerationFailed
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr) && verr.Message != "":
		return verr.Message

	case errors.Is(err, domain.ErrInvalidPayload):
		return domain.MessageInvalidPayload

	case errors.Is(err, domain.ErrUnknownOperation):
		return domain.MessageUnknownOperation

	case errors.Is(err, generation.ErrAuthentication):
		return MessageMissingCredential

	case errors.Is(err, generation.ErrMalformedResponse):
		return MessageMalformedResponse

	case errors.Is(err, generation.ErrContentBlocked):
		return MessageContentBlocked

	case errors.Is(err, generation.ErrUpstream):
		return redact.Error(err)

	default:
		return MessageGenerationFailed
	}
}

// HandleAPIError writes the error response for err and logs the redacted
// detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
