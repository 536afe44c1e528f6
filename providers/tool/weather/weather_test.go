package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const wttrSunny = `{
	"current_condition": [
		{
			"temp_C": "25",
			"FeelsLikeC": "26",
			"humidity": "40",
			"weatherDesc": [{"value": "Sunny"}]
		}
	]
}`

// TestLookup verifies the happy path: request shape, payload decoding, and
// the rendered observation.
func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Harbin" {
			t.Errorf("path = %q, want /Harbin", r.URL.Path)
		}
		if got := r.URL.Query().Get("format"); got != "j1" {
			t.Errorf("format = %q, want j1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wttrSunny))
	}))
	defer server.Close()

	service := NewService(Config{BaseURL: server.URL})
	got, err := service.Lookup(context.Background(), Input{City: "Harbin"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if want := "Current weather in Harbin: Sunny, 25°C"; got != want {
		t.Errorf("observation = %q, want %q", got, want)
	}
}

// TestLookup_EmptyCity verifies input validation.
func TestLookup_EmptyCity(t *testing.T) {
	service := NewService(Config{BaseURL: "http://localhost:0"})
	if _, err := service.Lookup(context.Background(), Input{City: "   "}); err == nil {
		t.Fatalf("expected error for blank city")
	}
}

// TestLookup_APIError verifies that a non-2xx response surfaces as an error.
func TestLookup_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown location", http.StatusNotFound)
	}))
	defer server.Close()

	service := NewService(Config{BaseURL: server.URL})
	_, err := service.Lookup(context.Background(), Input{City: "Nowhereville"})
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "Nowhereville") {
		t.Errorf("error %q does not name the city", err.Error())
	}
}

// TestLookup_IncompletePayload verifies that an empty conditions array is
// reported as a likely invalid city.
func TestLookup_IncompletePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_condition": []}`))
	}))
	defer server.Close()

	service := NewService(Config{BaseURL: server.URL})
	_, err := service.Lookup(context.Background(), Input{City: "Atlantis"})
	if err == nil {
		t.Fatalf("expected error for incomplete payload")
	}
	if !strings.Contains(err.Error(), "incomplete") {
		t.Errorf("error = %q", err.Error())
	}
}

// TestLookup_CityWithSpaces verifies path escaping of multi-word city names.
func TestLookup_CityWithSpaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/New York" {
			t.Errorf("decoded path = %q, want /New York", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wttrSunny))
	}))
	defer server.Close()

	service := NewService(Config{BaseURL: server.URL})
	if _, err := service.Lookup(context.Background(), Input{City: "New York"}); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
}

// TestNewWeatherTool verifies the tool registration surface.
func TestNewWeatherTool(t *testing.T) {
	info := NewWeatherTool(NewService(Config{})).ToolInfo()
	if info.Name != "get_weather" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Usage != `get_weather(city="...")` {
		t.Errorf("usage = %q", info.Usage)
	}
	if info.Description == "" {
		t.Errorf("expected a description")
	}
}
