// Package react implements the ReAct (Reasoning + Acting) agentic pattern
// over a plain-text protocol: the model is prompted to emit one Thought
// followed by one Action per turn, the action is parsed and dispatched to a
// registered tool, and the observation is fed back into the next prompt,
// until the model emits finish(answer="...") or the round budget runs out.
//
// The main entry point is [New], which wraps an [ai.Generator] and a
// [tool.Registry] and returns an [Agent]; use [Agent.Run] to execute the loop
// for one user request. Behavior can be tuned with [WithMaxRounds],
// [WithPersona], [WithSystemPrompt], and [WithObserver].
//
// The supporting pieces are exported for reuse and testing: [Normalize]
// cleans a raw model turn down to a single Thought/Action segment,
// [ParseAction] turns it into a tagged [Action], [BuildSystemPrompt] renders
// the protocol instructions, and [Transcript] is the append-only history the
// loop owns.
package react
