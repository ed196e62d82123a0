package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/gemini"
	"personal-assistant/pkg/llmprovider"
)

func TestGeminiAdapter(t *testing.T) {
	var got gemini.GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got.Contents[0].Parts[0].Text == "fail" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"42"}]}}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":1,"totalTokenCount":4}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", Model: "gemini-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("gemini.New: %v", err)
	}
	adapter := llmprovider.NewGeminiAdapter(client)

	t.Run("maps request and response", func(t *testing.T) {
		resp, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
			SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: "be brief"}}},
			Messages: []llmprovider.Message{
				{Role: "user", Parts: []llmprovider.Part{{Text: "hi"}}},
				{Role: "assistant", Parts: []llmprovider.Part{{Text: "hello"}}},
				{Role: "user", Parts: []llmprovider.Part{{Text: "answer?"}}},
			},
			Temperature: 0.5,
			MaxTokens:   50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "42" || resp.ProviderName != "gemini" || resp.ModelName != "gemini-test" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.Usage.TotalTokens != 4 {
			t.Errorf("expected 4 tokens, got %d", resp.Usage.TotalTokens)
		}
		if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be brief" {
			t.Errorf("system instruction not forwarded: %+v", got.SystemInstruction)
		}
		if got.Contents[1].Role != "model" {
			t.Errorf("expected assistant turn mapped to model, got %q", got.Contents[1].Role)
		}
		if got.GenerationConfig == nil || got.GenerationConfig.MaxOutputTokens != 50 {
			t.Errorf("generation config not forwarded: %+v", got.GenerationConfig)
		}
	})

	t.Run("wraps errors", func(t *testing.T) {
		_, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{Messages: llmprovider.UserText("fail")})
		var perr *llmprovider.ProviderError
		if !errors.As(err, &perr) || perr.Provider != "gemini" {
			t.Errorf("expected ProviderError from gemini, got %v", err)
		}
	})
}
