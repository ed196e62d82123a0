package llmprovider

import (
	"context"

	"personal-assistant/pkg/gemini"
)

// GeminiClient is the subset of pkg/gemini the adapter needs.
type GeminiClient interface {
	GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts the Gemini client to the Provider interface.
type GeminiAdapter struct {
	client GeminiClient
}

// NewGeminiAdapter creates a new adapter
func NewGeminiAdapter(client GeminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			gReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: text}}}
		}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		gReq.Contents = append(gReq.Contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: msg.Text()}}})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		gReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    resp.ModelVersion,
		Usage:        &Usage{},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  u.PromptTokenCount,
			OutputTokens: u.CandidatesTokenCount,
			TotalTokens:  u.TotalTokenCount,
		}
	}
	if text := resp.Text(); text != "" {
		out.Content.Parts = []Part{{Text: text}}
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
