package attraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/voyagent/voyagent/internal/utils"
	"github.com/voyagent/voyagent/providers/tool"
)

const (
	defaultBaseURL = "https://api.tavily.com"
	maxResults     = 5

	// pageFetchTimeout bounds the optional enrichment fetch of the top
	// result page so a slow site cannot stall the whole round.
	pageFetchTimeout = 10 * time.Second

	// maxPageBodySize caps the fetched page size (2MB).
	maxPageBodySize = 2 * 1024 * 1024

	// maxPageMarkdownLength bounds how much converted page content is added
	// to the observation, to keep the transcript small.
	maxPageMarkdownLength = 1500

	userAgent = "voyagent-attraction-tool/1.0"
)

// Config holds the settings for the attraction tool. APIKey is required;
// BaseURL defaults to the public Tavily endpoint.
type Config struct {
	APIKey  string
	BaseURL string

	// HTTPClient overrides the HTTP client used for requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// DisablePageFetch turns off the HTML-to-Markdown enrichment of the top
	// search result that runs when the API returns no AI answer.
	DisablePageFetch bool
}

// Service searches for attraction recommendations through the Tavily Search
// API, tailoring the query to the current weather.
type Service struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	fetchPage bool
}

// NewService creates an attraction recommendation service from cfg, failing
// fast when the API key is missing.
func NewService(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("attraction: Tavily API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Service{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    cfg.HTTPClient,
		fetchPage: !cfg.DisablePageFetch,
	}, nil
}

// NewAttractionTool returns a [tool.Tool] that recommends attractions for a
// city given its current weather, backed by s.
func NewAttractionTool(s *Service) *tool.Tool[Input] {
	return tool.NewTool("get_attraction", s.Recommend,
		tool.WithDescription("Searches the web for attractions worth visiting in the given city under the given weather."),
		tool.WithUsage(`get_attraction(city="...", weather="...")`),
	)
}

// Recommend searches for attractions suited to input.City and input.Weather.
// It prefers the AI-generated answer from the search API; when none is
// returned it falls back to a formatted result list, enriched where possible
// with the top result page converted to Markdown.
//
// Network and API failures are returned as errors; the registry dispatch
// boundary converts them to observation strings. An empty result set is not
// an error, it yields a plain "nothing found" observation.
func (s *Service) Recommend(ctx context.Context, input Input) (string, error) {
	city := strings.TrimSpace(input.City)
	if city == "" {
		return "", fmt.Errorf("city must not be empty")
	}

	query := fmt.Sprintf("best attractions to visit in %s during %s weather, with reasons", city, input.Weather)

	request := tavilySearchRequest{
		APIKey:        s.apiKey,
		Query:         query,
		SearchDepth:   "basic",
		MaxResults:    maxResults,
		IncludeAnswer: true,
	}

	// The Tavily API key is carried in the request body, so no bearer token
	// is passed to the HTTP helper.
	_, response, err := utils.DoPostSync[tavilySearchAPIResponse](ctx, s.client, s.baseURL+"/search", "", request)
	if err != nil {
		return "", fmt.Errorf("attraction search for %q failed: %w", city, err)
	}

	if response.Answer != "" {
		return response.Answer, nil
	}

	if len(response.Results) == 0 {
		return fmt.Sprintf("No attraction recommendations found for %s. Try again with just the city name.", city), nil
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Found %d results:", len(response.Results)))
	for _, result := range response.Results {
		parts = append(parts, fmt.Sprintf("- %s: %s", result.Title, result.Content))
	}

	if s.fetchPage {
		if page, err := s.fetchTopResult(ctx, response.Results[0].URL); err == nil && page != "" {
			parts = append(parts, fmt.Sprintf("\nTop result content (%s):\n%s", response.Results[0].URL, page))
		}
	}

	return strings.Join(parts, "\n"), nil
}

// fetchTopResult downloads the page at pageURL and converts its HTML to
// Markdown, truncated to a transcript-friendly length. Failures are returned
// to the caller, which treats the enrichment as best-effort.
func (s *Service) fetchTopResult(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", fmt.Errorf("empty page URL")
	}

	fetchCtx, cancel := context.WithTimeout(ctx, pageFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	httpClient := s.client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer utils.CloseWithLog(res.Body)

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching page", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}

	return utils.TruncateString(strings.TrimSpace(markdown), maxPageMarkdownLength), nil
}
