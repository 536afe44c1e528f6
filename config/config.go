package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names read by [Load].
const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_API_BASE_URL"
	EnvOpenAIModel   = "OPENAI_MODEL"
	EnvTavilyAPIKey  = "TAVILY_API_KEY"
	EnvWeatherURL    = "WTTR_BASE_URL"
	EnvMaxRounds     = "AGENT_MAX_ROUNDS"
)

// Defaults applied by [Load] when the corresponding variable is unset.
const (
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxRounds = 5
)

// Config carries everything the binary needs to wire the gateway and the
// tools. It is loaded once at startup and passed explicitly into the
// constructors; nothing reads the environment after [Load] returns.
type Config struct {
	// OpenAIAPIKey authenticates against the OpenAI-compatible endpoint.
	// Required.
	OpenAIAPIKey string

	// OpenAIBaseURL points the gateway at an OpenAI-compatible service.
	// Empty means the gateway's default endpoint.
	OpenAIBaseURL string

	// OpenAIModel is the model identifier to request.
	OpenAIModel string

	// TavilyAPIKey authenticates the attraction search tool. Required.
	TavilyAPIKey string

	// WeatherBaseURL overrides the wttr.in endpoint, mainly for testing.
	WeatherBaseURL string

	// MaxRounds is the agent's round budget.
	MaxRounds int
}

// Load reads the configuration from the environment, applying defaults, and
// validates it. It fails fast: a missing required key or a malformed value is
// an error at startup, not at first use.
func Load() (Config, error) {
	cfg := Config{
		OpenAIAPIKey:   os.Getenv(EnvOpenAIAPIKey),
		OpenAIBaseURL:  os.Getenv(EnvOpenAIBaseURL),
		OpenAIModel:    os.Getenv(EnvOpenAIModel),
		TavilyAPIKey:   os.Getenv(EnvTavilyAPIKey),
		WeatherBaseURL: os.Getenv(EnvWeatherURL),
		MaxRounds:      DefaultMaxRounds,
	}

	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = DefaultModel
	}

	if raw := os.Getenv(EnvMaxRounds); raw != "" {
		rounds, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s must be an integer, got %q", EnvMaxRounds, raw)
		}
		cfg.MaxRounds = rounds
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("config: %s is required", EnvOpenAIAPIKey)
	}
	if c.TavilyAPIKey == "" {
		return fmt.Errorf("config: %s is required", EnvTavilyAPIKey)
	}
	if c.OpenAIModel == "" {
		return fmt.Errorf("config: model must not be empty")
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", EnvMaxRounds, c.MaxRounds)
	}
	return nil
}
