package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type echoPayload struct {
	Message string `json:"message"`
}

// TestDoPostSync verifies JSON encoding, the bearer header, and response
// decoding.
func TestDoPostSync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}

		var in echoPayload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode: %v", err)
		}
		_ = json.NewEncoder(w).Encode(echoPayload{Message: "echo " + in.Message})
	}))
	defer server.Close()

	res, out, err := DoPostSync[echoPayload](context.Background(), nil, server.URL, "secret", echoPayload{Message: "hi"})
	if err != nil {
		t.Fatalf("DoPostSync: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d", res.StatusCode)
	}
	if out.Message != "echo hi" {
		t.Errorf("message = %q", out.Message)
	}
}

// TestDoPostSync_NoAPIKey verifies that an empty key sends no auth header.
func TestDoPostSync_NoAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		_ = json.NewEncoder(w).Encode(echoPayload{})
	}))
	defer server.Close()

	if _, _, err := DoPostSync[echoPayload](context.Background(), nil, server.URL, "", echoPayload{}); err != nil {
		t.Fatalf("DoPostSync: %v", err)
	}
}

// TestDoGetSync verifies the GET mirror of the helper.
func TestDoGetSync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		_ = json.NewEncoder(w).Encode(echoPayload{Message: "pong"})
	}))
	defer server.Close()

	_, out, err := DoGetSync[echoPayload](context.Background(), nil, server.URL)
	if err != nil {
		t.Fatalf("DoGetSync: %v", err)
	}
	if out.Message != "pong" {
		t.Errorf("message = %q", out.Message)
	}
}

// TestDoJSON_Non2xx verifies that error responses carry status and body.
func TestDoJSON_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, out, err := DoGetSync[echoPayload](context.Background(), nil, server.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if out != nil {
		t.Errorf("expected nil output, got %+v", out)
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %q", err.Error())
	}
}

// TestDoJSON_MalformedBody verifies that a decode failure includes a preview
// of the offending payload.
func TestDoJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	_, _, err := DoGetSync[echoPayload](context.Background(), nil, server.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "definitely not json") {
		t.Errorf("error lacks response preview: %q", err.Error())
	}
}

// TestDoGetSync_ContextCancelled verifies context propagation.
func TestDoGetSync_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := DoGetSync[echoPayload](ctx, nil, server.URL); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
