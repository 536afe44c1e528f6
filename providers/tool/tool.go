package tool

import (
	"context"
	"time"

	"github.com/voyagent/voyagent/internal/utils"
	"github.com/voyagent/voyagent/providers/observability"
)

// Info is the metadata used to advertise a tool to the language model. Usage
// is the call signature rendered into the agent's system prompt, e.g.
// `get_weather(city="...")`.
type Info struct {
	Name        string
	Description string
	Usage       string
}

// GenericTool is the provider-agnostic interface for all tools.
// It abstracts over the concrete generic type parameter of [Tool] so that
// tools can be stored and dispatched by name without knowing their exact
// input types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, usage signature)
	// used to advertise this tool in the agent's system prompt.
	ToolInfo() Info

	// Invoke executes the tool with named string arguments and returns its
	// textual result. Returns an error if argument decoding or execution
	// fails.
	Invoke(ctx context.Context, args map[string]string) (string, error)
}

// Tool binds a name, description, and usage signature to a strongly-typed Go
// function. The named string arguments supplied by the action parser are
// decoded into the input type I through JSON, so field tags on I define the
// accepted argument names. Use [NewTool] to construct a Tool.
type Tool[I any] struct {
	Name        string
	Description string
	Usage       string
	Function    func(ctx context.Context, input I) (string, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Usage       string
}

// WithDescription sets a human-readable description for the tool.
// The agent surfaces this description to the language model to help it decide
// when and how to invoke the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithUsage sets the call signature advertised for the tool, e.g.
// `get_weather(city="...")`. Without it, only the bare name is advertised.
func WithUsage(usage string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Usage = usage
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// Optional configuration can be provided through [WithDescription] and
// [WithUsage].
//
// Example:
//
//	weatherTool := tool.NewTool("get_weather", lookup,
//	    tool.WithDescription("Looks up current weather for a city."),
//	    tool.WithUsage(`get_weather(city="...")`),
//	)
func NewTool[I any](name string, function func(ctx context.Context, input I) (string, error), options ...func(tool *funcToolOptions)) *Tool[I] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I]{
		Name:        name,
		Description: toolOptions.Description,
		Usage:       toolOptions.Usage,
		Function:    function,
	}
}

// ToolInfo returns the [Info] used to advertise this tool.
func (t *Tool[I]) ToolInfo() Info {
	usage := t.Usage
	if usage == "" {
		usage = t.Name
	}
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Usage:       usage,
	}
}

// Invoke executes the tool's underlying function with the given named string
// arguments. The argument map is serialized to JSON and decoded into the
// tool's input type I, tolerating the malformed values language models tend
// to produce. Observability span events are emitted at the start and end of
// execution when a span is present in ctx.
// Returns an error if argument decoding or function execution fails.
func (t *Tool[I]) Invoke(ctx context.Context, args map[string]string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolArgs, utils.JSONToString(args)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	input, err := utils.ParseStringAs[I](utils.JSONToString(args))
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
			)
		}
		return "", err
	}

	output, err := t.Function(ctx, input)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, utils.TruncateStringDefault(output)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return output, nil
}
