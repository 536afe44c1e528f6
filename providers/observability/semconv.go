package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Gateway Attributes ---

const (
	// AttrLLMModel is the model identifier (e.g., "gpt-4o-mini", "deepseek-chat")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMPromptLength is the length of the prompt in characters
	AttrLLMPromptLength = "llm.prompt.length"

	// AttrLLMOutputLength is the length of the model output in characters
	AttrLLMOutputLength = "llm.output.length"
)

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being invoked
	AttrToolName = "tool.name"

	// AttrToolArgs is the tool arguments (serialized)
	AttrToolArgs = "tool.args"

	// AttrToolOutput is the tool output (truncated)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"
)

// --- Agent Loop Attributes ---

const (
	// AttrAgentRound is the 1-based round number within a run
	AttrAgentRound = "agent.round"

	// AttrAgentMaxRounds is the configured round budget
	AttrAgentMaxRounds = "agent.max_rounds"

	// AttrAgentState is the terminal state of a run ("finished", "aborted")
	AttrAgentState = "agent.state"

	// AttrAgentAbortReason is the recorded abort reason, if any
	AttrAgentAbortReason = "agent.abort_reason"

	// AttrActionKind is the parsed action kind ("tool_call", "finish", "unparseable")
	AttrActionKind = "action.kind"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP request method
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body_size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body_size"
)

// --- Status Attributes ---

const (
	// AttrStatus is the final status of a span ("ok", "error", "unset")
	AttrStatus = "status"

	// AttrStatusDescription is the optional status description
	AttrStatusDescription = "status.description"
)

// --- Standard Span Names ---

const (
	// SpanAgentRun covers one full ReAct run
	SpanAgentRun = "agent.run"

	// SpanLLMGenerate covers one model gateway call
	SpanLLMGenerate = "llm.generate"

	// SpanToolDispatch covers one tool dispatch through the registry
	SpanToolDispatch = "tool.dispatch"
)

// --- Standard Event Names ---

const (
	// EventRoundStart marks the beginning of a loop round
	EventRoundStart = "agent.round.start"

	// EventModelOutput records the normalized model output for a round
	EventModelOutput = "agent.model_output"

	// EventReasoning records an extracted internal reasoning block
	EventReasoning = "agent.reasoning"

	// EventActionParsed records the parsed action for a round
	EventActionParsed = "agent.action.parsed"

	// EventObservation records the observation appended to the transcript
	EventObservation = "agent.observation"

	// EventToolExecutionStart marks the start of a tool invocation
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of a tool invocation
	EventToolExecutionEnd = "tool.execution.end"
)
