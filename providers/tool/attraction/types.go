package attraction

// Input holds the arguments for [Recommend]. Field tags define the argument
// names accepted from the model's Action line.
type Input struct {
	City    string `json:"city"`
	Weather string `json:"weather"`
}

// === Internal API Response Types ===

// tavilySearchRequest is the request body for the Tavily Search API. The API
// key travels in the body rather than a header.
type tavilySearchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
}

// tavilySearchAPIResponse models the subset of the Tavily Search response the
// tool reads.
type tavilySearchAPIResponse struct {
	Query   string                   `json:"query"`
	Answer  string                   `json:"answer,omitempty"`
	Results []tavilySearchResultItem `json:"results"`
}

type tavilySearchResultItem struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
