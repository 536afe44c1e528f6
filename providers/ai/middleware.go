package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/voyagent/voyagent/internal/utils"
)

// LogLevel controls how much detail the logging middleware emits per call.
type LogLevel int

const (
	// LogLevelMinimal logs only prompt/output sizes and the call duration.
	// Use this when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelVerbose logs everything in Minimal plus the prompt and the
	// full output, each truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw
	// prompt and response text, which may contain sensitive user data.
	// It is intended solely for local debugging and development.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a [Middleware] that emits structured slog
// entries before and after every gateway call, including the outcome of
// failed calls.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) Middleware {
	return func(next Generator) Generator {
		return GeneratorFunc(func(ctx context.Context, prompt string, systemPrompt string) (string, error) {
			attrs := []any{
				slog.Int("prompt_length", len(prompt)),
				slog.Int("system_prompt_length", len(systemPrompt)),
			}
			if level >= LogLevelVerbose {
				attrs = append(attrs, slog.String("prompt", utils.TruncateString(prompt, truncateLen)))
			}
			logger.InfoContext(ctx, "llm generate", attrs...)

			start := time.Now()
			output, err := next.Generate(ctx, prompt, systemPrompt)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm generate failed",
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return output, err
			}

			attrs = []any{
				slog.Duration("duration", elapsed),
				slog.Int("output_length", len(output)),
			}
			if level >= LogLevelVerbose {
				attrs = append(attrs, slog.String("output", utils.TruncateString(output, truncateLen)))
			}
			logger.InfoContext(ctx, "llm generate completed", attrs...)

			return output, nil
		})
	}
}
