// README: Summary service (defaults, prompt build, timed generation call).
package service

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"tripsummary/internal/ai"
	"tripsummary/internal/prompt"
	"tripsummary/internal/trip"
)

// Generation defaults for the trip summary endpoint.
const (
	DefaultModel       = "claude-3-haiku-20240307"
	DefaultMaxTokens   = 350
	DefaultTemperature = 0.9
)

// Params are the optional caller overrides; nil means "use the default".
type Params struct {
	Model       *string
	MaxTokens   *int
	Temperature *float64
}

// Summary is the outcome of one successful generation.
type Summary struct {
	Text  string
	Model string
}

// Summarizer builds the trip prompt and forwards it to the generator.
// It holds no per-request state.
type Summarizer struct {
	gen     ai.Generator
	timeout time.Duration
}

// NewSummarizer creates a Summarizer. A non-positive timeout leaves the
// external call bounded only by the caller's context.
func NewSummarizer(gen ai.Generator, timeout time.Duration) *Summarizer {
	return &Summarizer{gen: gen, timeout: timeout}
}

// Summarize runs Build -> Generate -> trim. Generator errors are returned
// unchanged so their message can be relayed to the caller.
func (s *Summarizer) Summarize(ctx context.Context, rec trip.Record, p Params) (Summary, error) {
	req := p.request()
	req.Prompt = prompt.Build(rec)

	log.Printf("generating summary with model: %s, max_tokens: %d", req.Model, req.MaxTokens)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, req)
	if err != nil {
		log.Printf("generate summary failed (model %s): %v", req.Model, err)
		return Summary{}, err
	}

	text = strings.TrimSpace(text)
	log.Printf("generated summary (length: %d characters)", utf8.RuneCountInString(text))
	return Summary{Text: text, Model: req.Model}, nil
}

func (p Params) request() ai.Request {
	req := ai.Request{
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
	if p.Model != nil && strings.TrimSpace(*p.Model) != "" {
		req.Model = strings.TrimSpace(*p.Model)
	}
	if p.MaxTokens != nil {
		req.MaxTokens = *p.MaxTokens
	}
	if p.Temperature != nil {
		req.Temperature = *p.Temperature
	}
	return req
}
