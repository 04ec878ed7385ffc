// README: Generation request type and provider sentinel errors.
package ai

import "errors"

// Request carries one generation call.
type Request struct {
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

var (
	// ErrMissingAPIKey is returned by provider constructors given a blank credential.
	ErrMissingAPIKey = errors.New("missing api key")

	// ErrEmptyResponse means the provider answered without any text content.
	ErrEmptyResponse = errors.New("response contained no text content")

	// ErrProviderNotConfigured means a route exists for the model but no client was set up.
	ErrProviderNotConfigured = errors.New("generation provider not configured")

	// ErrInvalidMaxTokens means max_tokens cannot be represented by the provider.
	ErrInvalidMaxTokens = errors.New("max_tokens out of range")
)
