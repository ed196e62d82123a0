package llmprovider

import (
	"context"

	"personal-assistant/pkg/openai"
)

// ChatCompleter is the subset of pkg/openai the adapter needs.
type ChatCompleter interface {
	GenerateContent(ctx context.Context, req *openai.Request) (*openai.Response, error)
	Model() string
}

// OpenAIAdapter adapts an OpenAI-compatible client to the Provider interface. The name
// distinguishes vendors sharing the wire format.
type OpenAIAdapter struct {
	name   string
	client ChatCompleter
}

// NewOpenAIAdapter creates a new adapter
func NewOpenAIAdapter(name string, client ChatCompleter) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    make([]openai.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			oaReq.Messages = append(oaReq.Messages, openai.Message{Role: "system", Content: text})
		}
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, openai.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if text := resp.Text(); text != "" {
		out.Content.Parts = []Part{{Text: text}}
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
