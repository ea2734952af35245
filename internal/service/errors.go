package service

import (
	"errors"

	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/generation"
)

// Outcome labels used in logs and metrics.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeAuthentication    = "auth_error"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeContentBlocked    = "content_blocked"
	OutcomeUpstream          = "upstream_error"
	OutcomeInternal          = "internal_error"
)

// Outcome classifies err into one of the outcome labels. A nil error is
// OutcomeSuccess.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalidRequest
	case errors.Is(err, generation.ErrAuthentication):
		return OutcomeAuthentication
	case errors.Is(err, generation.ErrMalformedResponse):
		return OutcomeMalformedResponse
	case errors.Is(err, generation.ErrContentBlocked):
		return OutcomeContentBlocked
	case errors.Is(err, generation.ErrUpstream):
		return OutcomeUpstream
	default:
		return OutcomeInternal
	}
}
