package generation

import "errors"

// Common errors returned by the generation package and its adapters.
var (
	// ErrAuthentication is returned when no model credential is configured.
	// It is raised before any network call is attempted.
	ErrAuthentication = errors.New("model credential not configured")

	// ErrMalformedResponse is returned when the model replied but the payload
	// could not be parsed into the expected shape.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrUpstream is returned for network or service failures of the external model.
	ErrUpstream = errors.New("language model request failed")

	// ErrContentBlocked is returned when the model refuses to answer due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when a client or generation config is unusable.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)
