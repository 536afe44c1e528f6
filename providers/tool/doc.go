// Package tool provides the foundational types for defining and executing
// tools that a language model can invoke through the textual ReAct protocol.
//
// A tool wraps a typed Go function together with its name, description, and
// usage signature; the named string arguments parsed out of the model's
// Action line are decoded into the function's input type. The main entry
// point for creating tools is [NewTool]; option functions [WithDescription]
// and [WithUsage] allow further configuration.
//
// The [Registry] type offers a thread-safe name-to-tool mapping; its
// [Registry.Dispatch] method is the fault boundary the agent loop relies on:
// every failure mode resolves to a descriptive observation string.
package tool
