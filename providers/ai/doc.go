// Package ai defines the model gateway contract used by the agent loop.
//
// The central type is [Generator], a single-call interface that turns a
// prompt plus system instructions into complete model text. [GeneratorFunc]
// adapts plain functions, [Middleware] and [Chain] compose cross-cutting
// behavior around a gateway, and [NewLoggingMiddleware] provides structured
// request/response logging.
//
// Concrete gateways live in subpackages; see the openai subpackage for an
// OpenAI-compatible chat-completions implementation.
package ai
