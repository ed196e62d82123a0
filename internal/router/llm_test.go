package router_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"personal-assistant/internal/router"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
)

type fakeGenerator struct {
	text string
	err  error
	last *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: f.text}}},
	}, nil
}

func TestLLMClassifier(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced json", func(t *testing.T) {
		gen := &fakeGenerator{text: "```json\n{\"action\": \"get_weather\", \"parameters\": {\"city\": \"hanoi\"}, \"confidence\": 70, \"reasoning\": \"weather\"}\n```"}
		got, ok := router.NewLLMClassifier(gen, log.NewNop()).Classify(ctx, "is it wet in hanoi")
		if !ok {
			t.Fatal("expected ok")
		}
		if got.Action != router.ActionGetWeather || got.Param(router.ParamCity) != "hanoi" || got.Confidence != 70 {
			t.Errorf("unexpected intent %+v", got)
		}
		if !strings.Contains(gen.last.Messages[0].Text(), "is it wet in hanoi") {
			t.Errorf("message not forwarded to the model")
		}
	})

	t.Run("confidence is capped", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"action": "read_emails", "parameters": {}, "confidence": 99}`}
		got, ok := router.NewLLMClassifier(gen, log.NewNop()).Classify(ctx, "anything new for me")
		if !ok || got.Confidence != router.LLMMaxConfidence {
			t.Errorf("expected capped confidence, got %+v ok=%v", got, ok)
		}
	})

	t.Run("non string params are stringified", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"action": "schedule_task", "parameters": {"task_name": "gym", "time": 7}, "confidence": 60}`}
		got, ok := router.NewLLMClassifier(gen, log.NewNop()).Classify(ctx, "gym at 7")
		if !ok || got.Param(router.ParamTime) != "7" {
			t.Errorf("unexpected intent %+v ok=%v", got, ok)
		}
	})

	t.Run("question defaults to the message", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"action": "ask_question", "parameters": {}, "confidence": 60}`}
		got, ok := router.NewLLMClassifier(gen, log.NewNop()).Classify(ctx, "tell a joke")
		if !ok || got.Param(router.ParamQuestion) != "tell a joke" {
			t.Errorf("unexpected intent %+v ok=%v", got, ok)
		}
	})

	rejected := map[string]*fakeGenerator{
		"provider error": {err: errors.New("boom")},
		"invalid json":   {text: "I think it is weather"},
		"empty":          {text: "  "},
		"unknown action": {text: `{"action": "unknown", "parameters": {}, "confidence": 90}`},
		"made up action": {text: `{"action": "order_pizza", "parameters": {}, "confidence": 90}`},
	}
	for name, gen := range rejected {
		t.Run(name, func(t *testing.T) {
			if _, ok := router.NewLLMClassifier(gen, log.NewNop()).Classify(ctx, "hello"); ok {
				t.Error("expected no opinion")
			}
		})
	}
}
