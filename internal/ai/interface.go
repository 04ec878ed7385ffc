// README: Generator contract shared by every text generation provider.
package ai

import (
	"context"
)

// Generator is the contract for the external text-generation service.
// Implementations make exactly one upstream call per Generate; they never retry.
type Generator interface {
	// Generate sends prompt and sampling parameters to the model named in req
	// and returns the raw generated text.
	Generate(ctx context.Context, req Request) (string, error)
}
