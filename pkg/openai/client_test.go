package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"primering/pkg/openai"
)

func TestComplete(t *testing.T) {
	temperature := 0.7
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			return
		}
		got = nil
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1", "object": "chat.completion", "model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"summary\":\"ok\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 6, "total_tokens": 26}
		}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		client, err := openai.New(openai.Config{Flavour: openai.FlavourQwen, APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if client.Model() != "qwen-plus" {
			t.Errorf("Model() = %q, want qwen-plus", client.Model())
		}

		resp, err := client.Complete(context.Background(), openai.Request{
			Messages: []openai.Message{
				{Role: "system", Content: "reply with JSON"},
				{Role: "user", Content: "hello"},
			},
			Temperature: &temperature,
			MaxTokens:   1024,
			JSONOutput:  true,
		})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if resp.Content != `{"summary":"ok"}` || resp.FinishReason != "stop" || resp.Usage.TotalTokens != 26 {
			t.Errorf("unexpected response %+v", resp)
		}

		if got["model"] != "qwen-plus" {
			t.Errorf("model = %v", got["model"])
		}
		format, _ := got["response_format"].(map[string]any)
		if format["type"] != "json_object" {
			t.Errorf("response_format = %v", got["response_format"])
		}
		if msgs := got["messages"].([]any); len(msgs) != 2 {
			t.Errorf("messages = %d, want 2", len(msgs))
		}
		if v, _ := got["temperature"].(float64); v < 0.69 || v > 0.71 {
			t.Errorf("temperature = %v, want 0.7", got["temperature"])
		}
	})

	t.Run("Zero temperature reaches the wire", func(t *testing.T) {
		client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		zero := 0.0
		if _, err := client.Complete(context.Background(), openai.Request{
			Messages:    []openai.Message{{Role: "user", Content: "hi"}},
			Temperature: &zero,
		}); err != nil {
			t.Fatalf("Complete: %v", err)
		}
		v, ok := got["temperature"].(float64)
		if !ok || v > 1e-6 {
			t.Errorf("temperature = %v (present %v), want ~0", got["temperature"], ok)
		}
	})

	t.Run("Unset temperature is omitted", func(t *testing.T) {
		client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := client.Complete(context.Background(), openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		}); err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if _, ok := got["temperature"]; ok {
			t.Errorf("temperature = %v, want omitted", got["temperature"])
		}
	})

	t.Run("API error", func(t *testing.T) {
		client, err := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := client.Complete(context.Background(), openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		}); err == nil {
			t.Fatal("expected error on 401")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         openai.Config
		wantErr     bool
		wantBaseURL string
	}{
		{name: "OpenAI needs a key", cfg: openai.Config{}, wantErr: true},
		{name: "Unknown flavour", cfg: openai.Config{Flavour: "mystery", APIKey: "k"}, wantErr: true},
		{name: "Local without key", cfg: openai.Config{Flavour: openai.FlavourLocal}, wantBaseURL: openai.LocalBaseURL},
		{name: "DeepSeek default URL", cfg: openai.Config{Flavour: openai.FlavourDeepSeek, APIKey: "k"}, wantBaseURL: openai.DeepSeekBaseURL},
		{name: "Explicit URL wins", cfg: openai.Config{Flavour: openai.FlavourQwen, APIKey: "k", BaseURL: "http://proxy"}, wantBaseURL: "http://proxy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, tt.wantBaseURL)
			}
		})
	}
}
