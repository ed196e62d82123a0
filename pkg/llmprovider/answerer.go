package llmprovider

import (
	"context"
	"fmt"
	"strings"
)

// QASystemPrompt frames open questions for the model.
const QASystemPrompt = `You are a helpful personal assistant. Answer questions concisely and accurately.
If asked about real-time data (weather, stock prices, current news), explain that you don't have access to real-time data but provide helpful general information.
Keep responses brief but informative (max 200 words).
Use emojis to make responses friendly.`

// EmailSummaryPrompt frames email summaries for the model.
const EmailSummaryPrompt = `You are an email summarizer. Create a brief, concise summary of the email.
Summary should be maximum 200 characters.
Focus on key information and action items.`

// Summaries are short and stay close to the source text.
const (
	summaryTemperature = 0.5
	summaryMaxTokens   = 100
)

// Answerer turns a Generator into text-in/text-out collaborators: open question answering
// and email summaries.
type Answerer struct {
	gen         Generator
	temperature float64
	maxTokens   int
}

// NewAnswerer builds an Answerer. gen may be nil, in which case every call fails with
// ErrNoProvidersConfigured.
func NewAnswerer(gen Generator, temperature float64, maxTokens int) *Answerer {
	return &Answerer{gen: gen, temperature: temperature, maxTokens: maxTokens}
}

// Answer asks the model question and returns its trimmed reply.
func (a *Answerer) Answer(ctx context.Context, question string) (string, error) {
	text, err := a.generate(ctx, QASystemPrompt, question, a.temperature, a.maxTokens)
	if err != nil {
		return "", fmt.Errorf("answer: %w", err)
	}
	return text, nil
}

// Summarize returns a short summary of an email.
func (a *Answerer) Summarize(ctx context.Context, subject, body string) (string, error) {
	text, err := a.generate(ctx, EmailSummaryPrompt, "Subject: "+subject+"\n\nBody:\n"+body, summaryTemperature, summaryMaxTokens)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return text, nil
}

func (a *Answerer) generate(ctx context.Context, prompt, text string, temperature float64, maxTokens int) (string, error) {
	if a.gen == nil {
		return "", ErrNoProvidersConfigured
	}

	resp, err := a.gen.GenerateContent(ctx, &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: prompt}}},
		Messages:          UserText(text),
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	})
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
