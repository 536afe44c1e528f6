package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/voyagent/voyagent/internal/utils"
	"github.com/voyagent/voyagent/providers/tool"
)

const defaultBaseURL = "https://wttr.in"

// Config holds the settings for the weather tool. All fields are optional;
// BaseURL defaults to the public wttr.in service.
type Config struct {
	BaseURL string

	// HTTPClient overrides the HTTP client used for requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Service performs real-time weather lookups against the wttr.in API.
type Service struct {
	baseURL string
	client  *http.Client
}

// NewService creates a weather lookup service from cfg.
func NewService(cfg Config) *Service {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  cfg.HTTPClient,
	}
}

// NewWeatherTool returns a [tool.Tool] that reports the current weather for a
// city, backed by s.
func NewWeatherTool(s *Service) *tool.Tool[Input] {
	return tool.NewTool("get_weather", s.Lookup,
		tool.WithDescription("Looks up the real-time weather for the given city."),
		tool.WithUsage(`get_weather(city="...")`),
	)
}

// Lookup fetches the current conditions for input.City and renders them as a
// short description string (condition plus temperature in Celsius).
//
// Network failures and unrecognized payloads (typically an invalid city name)
// are returned as errors; the registry dispatch boundary converts them to
// observation strings.
func (s *Service) Lookup(ctx context.Context, input Input) (string, error) {
	city := strings.TrimSpace(input.City)
	if city == "" {
		return "", fmt.Errorf("city must not be empty")
	}

	requestURL := fmt.Sprintf("%s/%s?format=j1", s.baseURL, url.PathEscape(city))

	_, response, err := utils.DoGetSync[wttrAPIResponse](ctx, s.client, requestURL)
	if err != nil {
		return "", fmt.Errorf("weather lookup for %q failed: %w", city, err)
	}

	if len(response.CurrentCondition) == 0 || len(response.CurrentCondition[0].WeatherDesc) == 0 {
		return "", fmt.Errorf("weather data for %q is incomplete, the city name may be invalid", city)
	}

	current := response.CurrentCondition[0]
	return fmt.Sprintf("Current weather in %s: %s, %s°C", city, current.WeatherDesc[0].Value, current.TempC), nil
}
