// Command voyagent runs the ReAct travel assistant from the terminal: it
// wires the model gateway and the weather and attraction tools from the
// environment, executes the loop for a single request, and prints the final
// answer or the abort reason.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/voyagent/voyagent/config"
	"github.com/voyagent/voyagent/patterns/react"
	"github.com/voyagent/voyagent/providers/ai"
	"github.com/voyagent/voyagent/providers/ai/openai"
	"github.com/voyagent/voyagent/providers/observability/slogobs"
	"github.com/voyagent/voyagent/providers/tool"
	"github.com/voyagent/voyagent/providers/tool/attraction"
	"github.com/voyagent/voyagent/providers/tool/weather"
)

const (
	defaultRequest = "Please look up today's weather in Harbin, then recommend a suitable attraction to visit based on it."

	persona = "You are an intelligent travel assistant. Your job is to analyze the user's request and solve it step by step using the available tools."
)

func main() {
	request := flag.String("request", defaultRequest, "user request to run through the agent")
	verbose := flag.Bool("verbose", false, "enable debug logging (spans, prompts, observations)")
	flag.Parse()

	if err := run(*request, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "voyagent:", err)
		os.Exit(1)
	}
}

func run(request string, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observer := slogobs.New(slogobs.WithLogger(logger))

	gateway, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		return err
	}

	attractionService, err := attraction.NewService(attraction.Config{APIKey: cfg.TavilyAPIKey})
	if err != nil {
		return err
	}

	registry := tool.NewRegistryWithTools(
		weather.NewWeatherTool(weather.NewService(weather.Config{BaseURL: cfg.WeatherBaseURL})),
		attraction.NewAttractionTool(attractionService),
	)

	agent, err := react.New(
		ai.Chain(gateway, ai.NewLoggingMiddleware(logger, ai.LogLevelMinimal)),
		registry,
		react.WithPersona(persona),
		react.WithMaxRounds(cfg.MaxRounds),
		react.WithObserver(observer),
	)
	if err != nil {
		return err
	}

	fmt.Println("User request:", request)

	result := agent.Run(context.Background(), request)

	switch result.State {
	case react.StateFinished:
		if !result.AnswerParsed {
			fmt.Printf("Task completed after %d round(s), but the final answer could not be parsed. Raw action:\n%s\n", result.Rounds, result.Answer)
			return nil
		}
		fmt.Printf("Task completed after %d round(s). Final answer:\n%s\n", result.Rounds, result.Answer)
		return nil
	default:
		return fmt.Errorf("run aborted after %d round(s): %s", result.Rounds, result.AbortReason)
	}
}
