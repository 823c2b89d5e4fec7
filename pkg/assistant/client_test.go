package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func TestClientSuggest(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Errorf("expected a request id header")
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"config":{"styles":{"backgroundColor":"#111"}}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, WithHeader("Authorization", "Bearer token"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	current := component.Config{Content: component.Content{Label: "Save"}}
	got, err := client.Suggest(context.Background(), widget.Button, "make it dark", current)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	want := patch.Patch{"styles": map[string]any{"backgroundColor": "#111"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("patch mismatch (-want +got):\n%s", diff)
	}
	if received["componentName"] != "Button" || received["prompt"] != "make it dark" {
		t.Fatalf("unexpected request body %v", received)
	}
	currentConfig, _ := received["currentConfig"].(map[string]any)
	content, _ := currentConfig["content"].(map[string]any)
	if content["label"] != "Save" {
		t.Fatalf("current config not sent: %v", received["currentConfig"])
	}
	if _, ok := received["schema"].(map[string]any); !ok {
		t.Fatalf("expected the widget schema in the request")
	}
}

func TestClientKeepsCallerRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{"success":true,"config":{}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, WithHeader(RequestIDHeader, "fixed"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Suggest(context.Background(), widget.Input, "x", component.Config{}); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if got != "fixed" {
		t.Fatalf("expected caller request id, got %q", got)
	}
}

func TestClientWithoutSchema(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"success":true,"config":{}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, WithSchema(false))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Suggest(context.Background(), widget.Card, "hello", component.Config{}); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if _, ok := received["schema"]; ok {
		t.Fatalf("schema should be omitted")
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "http error", status: http.StatusBadGateway, body: `{"error":"model unavailable"}`, message: "model unavailable"},
		{name: "unsuccessful", status: http.StatusOK, body: `{"success":false,"lastError":"invalid json"}`, message: "invalid json"},
		{name: "missing config", status: http.StatusOK, body: `{"success":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("new client: %v", err)
			}
			_, err = client.Suggest(context.Background(), widget.Button, "x", component.Config{})
			if !errors.Is(err, ErrRejected) {
				t.Fatalf("expected ErrRejected, got %v", err)
			}
			var respErr *ResponseError
			if !errors.As(err, &respErr) {
				t.Fatalf("expected *ResponseError, got %T", err)
			}
			if respErr.Status != tt.status || respErr.Message != tt.message {
				t.Fatalf("unexpected error %+v", respErr)
			}
		})
	}
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(server.URL, WithTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Suggest(context.Background(), widget.Button, "x", component.Config{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected a deadline error, got %v", err)
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient("  "); !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("expected ErrNoEndpoint, got %v", err)
	}
}

func TestRefine(t *testing.T) {
	stub := Func(func(_ context.Context, w widget.Type, prompt string, current component.Config) (patch.Patch, error) {
		if w != widget.Button || prompt != "rounder" {
			t.Fatalf("unexpected call %s %q", w, prompt)
		}
		return patch.Patch{"styles": map[string]any{"borderRadius": 24}, "content": map[string]any{"tabs": []any{}}}, nil
	})

	current := component.Config{Content: component.Content{Label: "Save"}, Styles: style.Override{BorderRadius: style.Px(4)}}
	got, err := Refine(context.Background(), stub, widget.Button, "rounder", current)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	want := component.Config{Content: component.Content{Label: "Save"}, Styles: style.Override{BorderRadius: style.Px(24)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("refine mismatch (-want +got):\n%s", diff)
	}

	if _, err := Refine(context.Background(), stub, widget.Button, " ", current); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}

	failing := Func(func(context.Context, widget.Type, string, component.Config) (patch.Patch, error) {
		return nil, ErrRejected
	})
	kept, err := Refine(context.Background(), failing, widget.Button, "x", current)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if diff := cmp.Diff(current, kept); diff != "" {
		t.Fatalf("config changed on failure (-want +got):\n%s", diff)
	}
}
