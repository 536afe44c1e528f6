package react

import "strings"

// Markers of the textual ReAct protocol.
const (
	thoughtMarker     = "Thought:"
	actionMarker      = "Action:"
	observationMarker = "Observation:"

	reasoningOpenTag  = "<think>"
	reasoningCloseTag = "</think>"
)

// Normalized is the result of cleaning one raw model output: the text that
// goes on to action parsing and the transcript, plus any extracted internal
// reasoning. Reasoning is kept for observability only and is never fed back
// into the model.
type Normalized struct {
	Text      string
	Reasoning string
}

// Normalize cleans raw model output so that it contains exactly one
// Thought/Action segment.
//
// Reasoning models wrap their chain of thought in <think>...</think> blocks;
// those are removed entirely, with the first block's contents preserved in
// [Normalized.Reasoning]. After that, if the text contains a span from the
// first "Thought:" through its "Action:" section, followed by further
// hallucinated turns (another Thought/Action/Observation line), the text is
// truncated to just that first span. Text without protocol markers passes
// through unchanged.
func Normalize(raw string) Normalized {
	text, reasoning := stripReasoning(raw)
	text = truncateToFirstStep(text)
	return Normalized{
		Text:      strings.TrimSpace(text),
		Reasoning: reasoning,
	}
}

// stripReasoning removes every <think>...</think> block from s and returns
// the remaining text together with the contents of the first block. An
// opening tag without a matching close is left in place.
func stripReasoning(s string) (text string, reasoning string) {
	for {
		open := strings.Index(s, reasoningOpenTag)
		if open < 0 {
			return s, reasoning
		}
		end := strings.Index(s[open:], reasoningCloseTag)
		if end < 0 {
			return s, reasoning
		}
		end += open
		if reasoning == "" {
			reasoning = strings.TrimSpace(s[open+len(reasoningOpenTag) : end])
		}
		s = s[:open] + s[end+len(reasoningCloseTag):]
	}
}

// truncateToFirstStep reduces s to its first Thought-through-Action span when
// the model kept talking past it. The span starts at the first "Thought:"
// marker, runs through the following "Action:" section, and ends just before
// the next line starting with a protocol marker (or at end of text). When no
// such span exists, s is returned unchanged.
func truncateToFirstStep(s string) string {
	thoughtIdx := strings.Index(s, thoughtMarker)
	if thoughtIdx < 0 {
		return s
	}
	actionIdx := strings.Index(s[thoughtIdx:], actionMarker)
	if actionIdx < 0 {
		return s
	}
	actionIdx += thoughtIdx

	end := nextMarkerLine(s, actionIdx+len(actionMarker))
	span := strings.TrimSpace(s[thoughtIdx:end])
	if span != strings.TrimSpace(s) {
		return span
	}
	return s
}

// nextMarkerLine returns the index of the first newline at or after start
// whose following line (ignoring leading whitespace) begins with a protocol
// marker, or len(s) when there is none.
func nextMarkerLine(s string, start int) int {
	for i := start; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r' || s[j] == '\n') {
			j++
		}
		rest := s[j:]
		if strings.HasPrefix(rest, thoughtMarker) ||
			strings.HasPrefix(rest, actionMarker) ||
			strings.HasPrefix(rest, observationMarker) {
			return i
		}
	}
	return len(s)
}
