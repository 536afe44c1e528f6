package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestGenerate verifies request shape (auth header, path, message roles) and
// the extracted assistant text.
func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Stream {
			t.Errorf("stream must be false")
		}
		if len(req.Messages) != 2 {
			t.Fatalf("got %d messages, want 2", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || req.Messages[0].Content != "system instructions" {
			t.Errorf("messages[0] = %+v", req.Messages[0])
		}
		if req.Messages[1].Role != "user" || req.Messages[1].Content != "User request: hi" {
			t.Errorf("messages[1] = %+v", req.Messages[1])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4o-mini",
			"choices": [
				{
					"message": {"role": "assistant", "content": "Thought: greet\nAction: finish(answer=\"hello\")"},
					"finish_reason": "stop"
				}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 12, "total_tokens": 22}
		}`))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := client.Generate(context.Background(), "User request: hi", "system instructions")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := "Thought: greet\nAction: finish(answer=\"hello\")"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestGenerate_NoChoices verifies that an empty choices array is an error.
func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.Generate(context.Background(), "hi", "sys"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

// TestGenerate_APIError verifies that a non-2xx response carries the status
// and a body preview.
func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "sk-bad", Model: "gpt-4o-mini", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.Generate(context.Background(), "hi", "sys")
	if err == nil {
		t.Fatalf("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q does not mention the status code", err.Error())
	}
}

// TestNew_Validation covers the fail-fast configuration checks.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing api key", cfg: Config{Model: "gpt-4o-mini"}},
		{name: "missing model", cfg: Config{APIKey: "sk-test"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); err == nil {
				t.Errorf("expected error for %+v", tc.cfg)
			}
		})
	}
}

// TestNew_TrimsBaseURL verifies trailing-slash normalization so the endpoint
// path never doubles up.
func TestNew_TrimsBaseURL(t *testing.T) {
	client, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: "http://localhost:8080/v1/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.baseURL != "http://localhost:8080/v1" {
		t.Errorf("baseURL = %q", client.baseURL)
	}
}
