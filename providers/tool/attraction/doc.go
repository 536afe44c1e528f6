// Package attraction provides the get_attraction tool, which recommends
// places to visit in a city given its current weather. Recommendations come
// from the Tavily Search API; when the API returns no AI-generated answer,
// the tool formats the raw results and, best-effort, enriches them with the
// top result page converted from HTML to Markdown.
//
// Construct a [Service] with [NewService] (a Tavily API key is required) and
// wrap it with [NewAttractionTool] for registration.
package attraction
