// README: Model-prefix router that picks a provider per request.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// Route sends every model whose name starts with Prefix to Generator.
// A nil Generator marks a known provider that is not configured.
type Route struct {
	Prefix    string
	Generator Generator
}

// Router picks a Generator by model name. It is immutable after construction
// and safe for concurrent use.
type Router struct {
	fallback Generator
	routes   []Route
}

// NewRouter returns a Router that uses fallback for models no route matches.
func NewRouter(fallback Generator, routes ...Route) *Router {
	return &Router{fallback: fallback, routes: append([]Route(nil), routes...)}
}

func (r *Router) Generate(ctx context.Context, req Request) (string, error) {
	gen := r.fallback
	for _, route := range r.routes {
		if strings.HasPrefix(req.Model, route.Prefix) {
			gen = route.Generator
			break
		}
	}
	if gen == nil {
		return "", fmt.Errorf("model %q: %w", req.Model, ErrProviderNotConfigured)
	}
	return gen.Generate(ctx, req)
}
