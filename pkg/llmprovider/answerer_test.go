package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/openai"
)

type fakeGenerator struct {
	reply string
	err   error
	last  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: f.reply}}}}, nil
}

func TestAnswerer(t *testing.T) {
	ctx := context.Background()

	t.Run("answers with trimmed text", func(t *testing.T) {
		gen := &fakeGenerator{reply: "  Paris is the capital of France.\n"}
		a := llmprovider.NewAnswerer(gen, 0.7, 500)

		got, err := a.Answer(ctx, "What is the capital of France?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Paris is the capital of France." {
			t.Errorf("unexpected answer %q", got)
		}
		if gen.last.SystemInstruction.Text() != llmprovider.QASystemPrompt {
			t.Error("system prompt not applied")
		}
		if gen.last.MaxTokens != 500 || gen.last.Temperature != 0.7 {
			t.Errorf("sampling settings not applied: %+v", gen.last)
		}
	})

	t.Run("empty answer is an error", func(t *testing.T) {
		a := llmprovider.NewAnswerer(&fakeGenerator{reply: "   "}, 0.7, 500)
		if _, err := a.Answer(ctx, "q"); !errors.Is(err, llmprovider.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		a := llmprovider.NewAnswerer(&fakeGenerator{err: llmprovider.ErrAllProvidersFailed}, 0.7, 500)
		if _, err := a.Answer(ctx, "q"); !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected wrapped ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("no generator", func(t *testing.T) {
		a := llmprovider.NewAnswerer(nil, 0, 0)
		if _, err := a.Answer(ctx, "q"); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("summary prompt and settings", func(t *testing.T) {
		gen := &fakeGenerator{reply: " Lunch moved to Friday. \n"}
		a := llmprovider.NewAnswerer(gen, 0.7, 500)

		got, err := a.Summarize(ctx, "Lunch", "Hi, can we move lunch to Friday?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Lunch moved to Friday." {
			t.Errorf("unexpected summary %q", got)
		}
		if gen.last.SystemInstruction.Text() != llmprovider.EmailSummaryPrompt {
			t.Error("summary prompt not applied")
		}
		if user := gen.last.Messages[0].Text(); user != "Subject: Lunch\n\nBody:\nHi, can we move lunch to Friday?" {
			t.Errorf("unexpected user message %q", user)
		}
		if gen.last.MaxTokens != 100 || gen.last.Temperature != 0.5 {
			t.Errorf("summary settings not applied: %+v", gen.last)
		}
	})

	t.Run("no generator", func(t *testing.T) {
		a := llmprovider.NewAnswerer(nil, 0, 0)
		if _, err := a.Summarize(ctx, "s", "b"); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}

func TestOpenAIAdapterEndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.Request
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "hello" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		w.Write([]byte(`{"model": "deepseek-chat", "choices": [{"message": {"role": "assistant", "content": "hi there"}}], "usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", Model: "deepseek-chat", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapter := llmprovider.NewOpenAIAdapter("deepseek", client)

	got, err := llmprovider.NewAnswerer(adapter, 0.2, 50).Answer(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi there" {
		t.Errorf("unexpected answer %q", got)
	}
}
