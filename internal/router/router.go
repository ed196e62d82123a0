package router

import (
	"context"

	"personal-assistant/internal/metrics"
)

// Classify returns the intent of text. It never fails: a panic anywhere in matching or
// extraction turns into a low-confidence question about the original text.
func (c *Classifier) Classify(ctx context.Context, text string) (intent Intent) {
	defer func() {
		if r := recover(); r != nil {
			c.l.Errorf(ctx, "%s: recovered from panic: %v", LogPrefixClassify, r)
			intent = questionIntent(text, ConfidenceRecover)
			intent.Rule = RuleRecover
		}
		metrics.RecordClassified(string(intent.Action), intent.Rule)
	}()

	in := newInput(text)
	for _, rule := range c.rules {
		if rule.fallback && c.secondary != nil {
			if llmIntent, ok := c.secondary.Classify(ctx, text); ok {
				llmIntent.Rule = RuleLLM
				c.l.Debugf(ctx, "%s: secondary classified as %s (confidence: %d)", LogPrefixClassify, llmIntent.Action, llmIntent.Confidence)
				return llmIntent
			}
		}
		if !rule.match(in) {
			continue
		}

		intent = rule.build(in)
		intent.Rule = rule.Name
		c.l.Debugf(ctx, "%s: rule %d (%s) matched, action=%s", LogPrefixClassify, rule.Priority, rule.Name, intent.Action)
		return intent
	}

	// Only reachable with a custom table lacking a catch-all.
	intent = questionIntent(text, ConfidenceDefault)
	intent.Rule = RuleDefault
	return intent
}
