package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-assistant/pkg/gemini"
)

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Error("expected error without API key")
	}

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend overloaded","status":"INTERNAL"}}`))
		case "empty":
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		default:
			_, _ = w.Write([]byte(`{
				"candidates":[{"content":{"role":"model","parts":[{"text":"Paris is "},{"text":"the capital."}]}}],
				"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":4,"totalTokenCount":9}
			}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ask := func(text string) (*gemini.GenerateResponse, error) {
		return client.GenerateContent(context.Background(), &gemini.GenerateRequest{
			Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}},
		})
	}

	t.Run("success", func(t *testing.T) {
		resp, err := ask("capital of France?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "Paris is the capital." {
			t.Errorf("unexpected text %q", resp.Text())
		}
		if resp.UsageMetadata == nil || resp.UsageMetadata.TotalTokenCount != 9 {
			t.Errorf("unexpected usage: %+v", resp.UsageMetadata)
		}
	})

	t.Run("api error", func(t *testing.T) {
		_, err := ask("cause_500")
		if err == nil || !strings.Contains(err.Error(), "backend overloaded") {
			t.Errorf("expected API error message, got %v", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		if _, err := ask("empty"); err == nil {
			t.Error("expected error")
		}
	})
}
