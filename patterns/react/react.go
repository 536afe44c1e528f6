package react

import (
	"context"
	"fmt"

	"github.com/voyagent/voyagent/internal/utils"
	"github.com/voyagent/voyagent/providers/ai"
	"github.com/voyagent/voyagent/providers/observability"
	"github.com/voyagent/voyagent/providers/tool"
)

// DefaultMaxRounds is the round budget used when none is configured.
const DefaultMaxRounds = 5

const (
	userRequestPrefix = "User request: "
	observationPrefix = "Observation: "
)

// State is the lifecycle state of a run.
type State int

const (
	// StateRunning means the loop is still iterating. It never appears in a
	// returned [Result].
	StateRunning State = iota

	// StateFinished means the model delivered a final answer.
	StateFinished

	// StateAborted means the run ended without an answer; see
	// [Result.AbortReason].
	StateAborted
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateFinished:
		return "finished"
	case StateAborted:
		return "aborted"
	default:
		return "running"
	}
}

// AbortReason records why a run ended in [StateAborted].
type AbortReason int

const (
	// AbortNone is the zero value, used while no abort has occurred.
	AbortNone AbortReason = iota

	// AbortNoAction means a model turn contained no "Action:" marker, so
	// there is nothing to react to.
	AbortNoAction

	// AbortBudgetExhausted means the round budget ran out before the model
	// finished. This is a normal, reportable outcome, not a crash.
	AbortBudgetExhausted
)

// String returns the snake_case name of the reason, suitable for logging.
func (r AbortReason) String() string {
	switch r {
	case AbortNoAction:
		return "no_action"
	case AbortBudgetExhausted:
		return "budget_exhausted"
	default:
		return "none"
	}
}

// Result is the outcome of one run.
//
// When State is [StateFinished], Answer holds the final answer. AnswerParsed
// is false in the degraded case where the model signalled completion but its
// finish payload did not match the expected call shape; Answer then carries
// the raw payload and the caller decides whether to surface it as the answer
// or treat the run as failed.
type Result struct {
	State        State
	Answer       string
	AnswerParsed bool
	AbortReason  AbortReason

	// Rounds is the number of rounds that ran to completion or termination.
	Rounds int

	// Transcript is a copy of the full conversation history of the run.
	Transcript []string
}

// Agent drives the ReAct loop: per round it prompts the model with the full
// transcript, normalizes and parses the reply into an action, dispatches tool
// calls through the registry, and feeds the observation back, until the model
// finishes, its output stops carrying an action, or the round budget runs
// out.
//
// Rounds are strictly sequential: each prompt is built from all prior
// transcript entries, so a round completes fully before the next begins.
type Agent struct {
	generator    ai.Generator
	registry     *tool.Registry
	systemPrompt string
	persona      string
	maxRounds    int
	observer     observability.Provider
}

// Option configures an [Agent] created with [New].
type Option func(*Agent)

// WithMaxRounds sets the fixed round budget. Defaults to [DefaultMaxRounds].
func WithMaxRounds(n int) Option {
	return func(a *Agent) {
		a.maxRounds = n
	}
}

// WithPersona sets the opening role line of the generated system prompt.
func WithPersona(persona string) Option {
	return func(a *Agent) {
		a.persona = persona
	}
}

// WithSystemPrompt replaces the generated system prompt entirely. The prompt
// must describe the Thought/Action protocol itself; see [BuildSystemPrompt]
// for the generated form.
func WithSystemPrompt(systemPrompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = systemPrompt
	}
}

// WithObserver attaches an observability provider. Without one the agent
// runs silently.
func WithObserver(observer observability.Provider) Option {
	return func(a *Agent) {
		a.observer = observer
	}
}

// New creates an agent from a model gateway and a tool registry, failing
// fast on missing dependencies or a non-positive round budget. Unless
// [WithSystemPrompt] is given, the system prompt is built from the registry's
// advertised tools at construction time.
func New(generator ai.Generator, registry *tool.Registry, options ...Option) (*Agent, error) {
	if generator == nil {
		return nil, fmt.Errorf("react: generator is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("react: tool registry is required")
	}

	agent := &Agent{
		generator: generator,
		registry:  registry,
		maxRounds: DefaultMaxRounds,
	}
	for _, option := range options {
		option(agent)
	}

	if agent.maxRounds <= 0 {
		return nil, fmt.Errorf("react: max rounds must be positive, got %d", agent.maxRounds)
	}
	if agent.systemPrompt == "" {
		agent.systemPrompt = BuildSystemPrompt(agent.persona, agent.registry.Infos())
	}

	return agent, nil
}

// Run executes the loop for userRequest and returns its terminal outcome.
//
// Run never returns an error: every failure mode inside a round resolves to
// either a transcript entry or a terminal state. A gateway failure becomes
// that round's model text (no retry), tool-level failures of any kind come
// back as observations, and only a missing action marker or an exhausted
// budget abort the run.
func (a *Agent) Run(ctx context.Context, userRequest string) *Result {
	transcript := NewTranscript()
	transcript.Append(userRequestPrefix + userRequest)

	var span observability.Span
	if a.observer != nil {
		ctx, span = a.observer.StartSpan(ctx, observability.SpanAgentRun,
			observability.Int(observability.AttrAgentMaxRounds, a.maxRounds),
		)
		defer span.End()
	}

	for round := 1; round <= a.maxRounds; round++ {
		a.info(ctx, "Round started",
			observability.Int(observability.AttrAgentRound, round),
			observability.Int(observability.AttrAgentMaxRounds, a.maxRounds),
		)

		raw, err := a.generator.Generate(ctx, transcript.Prompt(), a.systemPrompt)
		if err != nil {
			// The gateway error text becomes the model's turn for this
			// round; it will normally fail action parsing next round's
			// processing rather than crash the run.
			raw = fmt.Sprintf("Error: language model call failed - %s", err.Error())
			a.warn(ctx, "Model call failed", observability.Error(err))
		}

		normalized := Normalize(raw)
		if normalized.Reasoning != "" {
			a.info(ctx, "Model reasoning",
				observability.String("reasoning", utils.TruncateStringDefault(normalized.Reasoning)),
			)
			if span != nil {
				span.AddEvent(observability.EventReasoning,
					observability.Int("reasoning.length", len(normalized.Reasoning)),
				)
			}
		}

		transcript.Append(normalized.Text)
		a.info(ctx, "Model output",
			observability.Int(observability.AttrAgentRound, round),
			observability.String("output", utils.TruncateStringDefault(normalized.Text)),
		)

		action, parseErr := ParseAction(normalized.Text)
		if span != nil {
			span.AddEvent(observability.EventActionParsed,
				observability.String(observability.AttrActionKind, action.Kind.String()),
				observability.Int(observability.AttrAgentRound, round),
			)
		}

		if parseErr != nil {
			// Malformed call syntax is recovered through the observation
			// channel; the model gets to correct itself next round.
			observation := fmt.Sprintf("Error: %s", parseErr.Error())
			transcript.Append(observationPrefix + observation)
			a.warn(ctx, "Action parse failed", observability.Error(parseErr))
			continue
		}

		switch action.Kind {
		case ActionUnparseable:
			a.warn(ctx, "Model output carried no action, aborting run",
				observability.Int(observability.AttrAgentRound, round),
			)
			return a.finish(ctx, span, &Result{
				State:       StateAborted,
				AbortReason: AbortNoAction,
				Rounds:      round,
			}, transcript)

		case ActionFinish:
			answer := action.Answer
			if !action.AnswerParsed {
				answer = action.Raw
				a.warn(ctx, "Finish payload could not be parsed, returning raw action text")
			}
			return a.finish(ctx, span, &Result{
				State:        StateFinished,
				Answer:       answer,
				AnswerParsed: action.AnswerParsed,
				Rounds:       round,
			}, transcript)

		default:
			observation := a.dispatch(ctx, action)
			transcript.Append(observationPrefix + observation)
			a.info(ctx, "Observation",
				observability.Int(observability.AttrAgentRound, round),
				observability.String(observability.AttrToolName, action.Name),
				observability.String("observation", utils.TruncateStringDefault(observation)),
			)
		}
	}

	return a.finish(ctx, span, &Result{
		State:       StateAborted,
		AbortReason: AbortBudgetExhausted,
		Rounds:      a.maxRounds,
	}, transcript)
}

// dispatch routes a tool-call action through the registry under its own span.
func (a *Agent) dispatch(ctx context.Context, action Action) string {
	var span observability.Span
	if a.observer != nil {
		ctx, span = a.observer.StartSpan(ctx, observability.SpanToolDispatch,
			observability.String(observability.AttrToolName, action.Name),
		)
		defer span.End()
	}
	observation := a.registry.Dispatch(ctx, action.Name, action.Args)
	if span != nil {
		span.AddEvent(observability.EventObservation,
			observability.String(observability.AttrToolOutput, utils.TruncateStringDefault(observation)),
		)
	}
	return observation
}

// finish stamps the terminal state onto the run span and completes the result
// with the transcript copy.
func (a *Agent) finish(ctx context.Context, span observability.Span, result *Result, transcript *Transcript) *Result {
	result.Transcript = transcript.Entries()

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrAgentState, result.State.String()),
			observability.Int(observability.AttrAgentRound, result.Rounds),
		)
		if result.State == StateAborted {
			span.SetAttributes(
				observability.String(observability.AttrAgentAbortReason, result.AbortReason.String()),
			)
		}
	}

	switch result.State {
	case StateFinished:
		a.info(ctx, "Run finished",
			observability.Int(observability.AttrAgentRound, result.Rounds),
			observability.Bool("answer_parsed", result.AnswerParsed),
		)
	default:
		a.info(ctx, "Run aborted",
			observability.Int(observability.AttrAgentRound, result.Rounds),
			observability.String(observability.AttrAgentAbortReason, result.AbortReason.String()),
		)
	}

	return result
}

func (a *Agent) info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if a.observer != nil {
		a.observer.Info(ctx, msg, attrs...)
	}
}

func (a *Agent) warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if a.observer != nil {
		a.observer.Warn(ctx, msg, attrs...)
	}
}
