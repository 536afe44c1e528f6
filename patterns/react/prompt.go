package react

import (
	"fmt"
	"strings"

	"github.com/voyagent/voyagent/providers/tool"
)

// DefaultPersona is the opening role line used when no persona is supplied.
const DefaultPersona = "You are a capable assistant. Your job is to analyze the user's request and solve it step by step using the available tools."

// BuildSystemPrompt renders the fixed system instructions for the agent: the
// persona, the advertised tools with their call signatures, the mandatory
// Thought/Action response format, and the finish rule. An empty persona falls
// back to [DefaultPersona].
func BuildSystemPrompt(persona string, infos []tool.Info) string {
	if persona == "" {
		persona = DefaultPersona
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\n# Available tools:\n")
	for _, info := range infos {
		if info.Description != "" {
			fmt.Fprintf(&b, "- `%s`: %s\n", info.Usage, info.Description)
		} else {
			fmt.Fprintf(&b, "- `%s`\n", info.Usage)
		}
	}

	b.WriteString(`
# Response format:
Your reply must strictly follow the format below. First your reasoning, then
the single action to execute. Output exactly one Thought/Action pair per reply:
Thought: [your reasoning and your plan for the next step]
Action: [the tool to call, in the form tool_name(arg_name="arg value")]

# Finishing:
Once you have gathered enough information to answer the user's question, you
must use finish(answer="...") in the Action: field to deliver the final
answer.

Begin!`)

	return b.String()
}
