package generation

import "context"

// Client sends one finished prompt to an external generative model.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Client interface {
	// Generate makes exactly one outbound call and returns the raw text of
	// the model's reply. Implementations must not retry, back off, or cache.
	//
	// Errors wrap ErrUpstream, ErrContentBlocked or ErrMalformedResponse.
	Generate(ctx context.Context, prompt string, cfg Config) (string, error)
}

// ClientFactory builds Clients on demand. NewClient is where the credential
// precondition lives: without a credential it returns ErrAuthentication and
// no network activity happens.
type ClientFactory interface {
	NewClient(ctx context.Context) (Client, error)

	// Provider names the backing service, for logs and metrics.
	Provider() string
}
