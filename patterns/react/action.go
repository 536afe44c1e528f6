package react

import (
	"fmt"
	"strings"
)

// ActionKind classifies the action parsed out of a normalized model output.
type ActionKind int

const (
	// ActionUnparseable means the text contains no "Action:" marker at all.
	// This is the one condition the loop cannot recover from.
	ActionUnparseable ActionKind = iota

	// ActionToolCall is a request to invoke a registered tool.
	ActionToolCall

	// ActionFinish is the completion signal carrying the final answer.
	ActionFinish
)

// String returns the snake_case name of the kind, suitable for logging.
func (k ActionKind) String() string {
	switch k {
	case ActionToolCall:
		return "tool_call"
	case ActionFinish:
		return "finish"
	default:
		return "unparseable"
	}
}

// Action is the tagged result of parsing one model turn.
//
// For ActionFinish, Answer holds the extracted answer when AnswerParsed is
// true; when the finish payload did not match the expected call shape,
// AnswerParsed is false and Raw carries the unparsed payload, leaving the
// caller to decide how to surface it. For ActionToolCall, Name and Args
// describe the requested invocation. Raw always holds the trimmed action
// text, except for ActionUnparseable where it is empty.
type Action struct {
	Kind ActionKind

	Answer       string
	AnswerParsed bool

	Name string
	Args map[string]string

	Raw string
}

const finishPrefix = `finish(answer="`

// ParseAction extracts the action from normalized model text.
//
// The substring after the last "Action:" marker is parsed against the
// protocol grammar:
//
//	<call> ::= finish(answer="<text>") | <identifier>(<args>)
//	<args> ::= zero or more <identifier>="<value>", comma/space separated
//
// Missing marker yields an ActionUnparseable action and no error. A payload
// starting with "finish" always yields an ActionFinish action, degraded to
// its raw form when the call shape cannot be matched. A malformed tool call
// returns an error; callers report it as an observation rather than
// terminating the run.
//
// Known limitation of the grammar: argument values cannot contain double
// quotes, and a finish answer cannot contain a quote immediately followed by
// a closing parenthesis.
func ParseAction(text string) (Action, error) {
	idx := strings.LastIndex(text, actionMarker)
	if idx < 0 {
		return Action{Kind: ActionUnparseable}, nil
	}

	raw := strings.TrimSpace(text[idx+len(actionMarker):])

	if strings.HasPrefix(raw, "finish") {
		return parseFinish(raw), nil
	}
	return parseToolCall(raw)
}

// parseFinish extracts the quoted answer from a finish(answer="...") payload.
// The answer value extends to the last `")` in the payload, so it may contain
// any characters except that closing sequence. A payload that does not match
// the call shape still signals completion, but with the raw text in place of
// a clean answer.
func parseFinish(raw string) Action {
	if strings.HasPrefix(raw, finishPrefix) {
		if end := strings.LastIndex(raw, `")`); end >= len(finishPrefix) {
			return Action{
				Kind:         ActionFinish,
				Answer:       raw[len(finishPrefix):end],
				AnswerParsed: true,
				Raw:          raw,
			}
		}
	}
	return Action{Kind: ActionFinish, Raw: raw}
}

// parseToolCall parses `<identifier>(<args>)` into a tool-call action.
func parseToolCall(raw string) (Action, error) {
	i := 0
	for i < len(raw) && isIdentChar(raw[i]) {
		i++
	}
	if i == 0 {
		return Action{}, fmt.Errorf("malformed action %q: expected a tool name", raw)
	}
	name := raw[:i]

	if i >= len(raw) || raw[i] != '(' {
		return Action{}, fmt.Errorf("malformed action %q: expected '(' after tool name %q", raw, name)
	}
	closing := strings.LastIndexByte(raw, ')')
	if closing < i {
		return Action{}, fmt.Errorf("malformed action %q: missing closing ')'", raw)
	}

	args, err := parseArgs(raw[i+1 : closing])
	if err != nil {
		return Action{}, fmt.Errorf("malformed action %q: %w", raw, err)
	}

	return Action{
		Kind: ActionToolCall,
		Name: name,
		Args: args,
		Raw:  raw,
	}, nil
}

// parseArgs parses zero or more `key="value"` pairs separated by commas and
// whitespace. Values run to the next double quote, so embedded quotes are not
// supported.
func parseArgs(s string) (map[string]string, error) {
	args := make(map[string]string)
	i := 0
	for {
		for i < len(s) && isSeparator(s[i]) {
			i++
		}
		if i >= len(s) {
			return args, nil
		}

		start := i
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("unexpected character %q in argument list", s[i])
		}
		key := s[start:i]

		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			return nil, fmt.Errorf("expected '=' after argument name %q", key)
		}
		i++
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) || s[i] != '"' {
			return nil, fmt.Errorf("expected opening quote for argument %q", key)
		}
		i++

		end := strings.IndexByte(s[i:], '"')
		if end < 0 {
			return nil, fmt.Errorf("unterminated value for argument %q", key)
		}
		args[key] = s[i : i+end]
		i += end + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isSeparator(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
