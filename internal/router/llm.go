package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
)

// LLMClassifier asks a language model for the intent of messages the keyword rules
// could not place.
type LLMClassifier struct {
	gen llmprovider.Generator
	l   log.Logger
}

var _ Secondary = (*LLMClassifier)(nil)

// NewLLMClassifier creates an LLMClassifier.
func NewLLMClassifier(gen llmprovider.Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{gen: gen, l: l}
}

// Classify returns ok=false on any provider error, timeout or unusable answer.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (Intent, bool) {
	ctx, cancel := context.WithTimeout(ctx, LLMTimeout)
	defer cancel()

	resp, err := c.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: PromptClassifySystem}}},
		Messages:          llmprovider.UserText(fmt.Sprintf(PromptClassifyUser, text)),
		Temperature:       LLMTemperature,
		MaxTokens:         LLMMaxTokens,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: generate: %v", LogPrefixLLMClassify, err)
		return Intent{}, false
	}

	intent, err := parseLLMOutput(resp.Text(), text)
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", LogPrefixLLMClassify, err)
		return Intent{}, false
	}
	return intent, true
}

// parseLLMOutput decodes the model answer, tolerating a markdown code fence around it.
func parseLLMOutput(raw, text string) (Intent, error) {
	raw = stripCodeFence(raw)
	if raw == "" {
		return Intent{}, fmt.Errorf("empty response")
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Intent{}, fmt.Errorf("parse response: %w", err)
	}

	action := Action(strings.TrimSpace(out.Action))
	if !action.Valid() || action == ActionUnknown || action == ActionUnsupported {
		return Intent{}, fmt.Errorf("unusable action %q", out.Action)
	}

	params := make(map[string]string, len(out.Params))
	for k, v := range out.Params {
		switch val := v.(type) {
		case nil:
		case string:
			params[k] = val
		default:
			params[k] = fmt.Sprint(val)
		}
	}
	if action == ActionAskQuestion && params[ParamQuestion] == "" {
		params[ParamQuestion] = text
	}

	confidence := out.Confidence
	if confidence > LLMMaxConfidence {
		confidence = LLMMaxConfidence
	}
	if confidence < 0 {
		confidence = 0
	}
	return newIntent(action, confidence, params), nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
