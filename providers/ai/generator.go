package ai

import (
	"context"
)

// Generator is the model gateway interface the agent loop depends on. It
// sends a fully assembled prompt together with fixed system instructions and
// returns the complete model output as text.
//
// Implementations may stream internally, but they must return only once the
// whole output is materialized, so the caller's strictly sequential
// round-by-round contract holds. Transport, auth, and decode failures are
// reported through the error return; callers that need to keep going (such as
// the ReAct loop) convert the error into descriptive text themselves.
type Generator interface {
	// Generate sends prompt and systemPrompt to the model and returns the
	// raw text output. Returns an error if the call fails, the context is
	// cancelled, or the response cannot be decoded.
	Generate(ctx context.Context, prompt string, systemPrompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the [Generator] interface, in
// the manner of http.HandlerFunc. It is mainly useful for middleware and for
// scripted generators in tests.
type GeneratorFunc func(ctx context.Context, prompt string, systemPrompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	return f(ctx, prompt, systemPrompt)
}

// Middleware wraps a [Generator] with additional behavior such as logging.
type Middleware func(next Generator) Generator

// Chain applies the given middlewares to g. The first middleware in the list
// becomes the outermost wrapper, so it observes the call first and the result
// last.
func Chain(g Generator, middlewares ...Middleware) Generator {
	for i := len(middlewares) - 1; i >= 0; i-- {
		g = middlewares[i](g)
	}
	return g
}
