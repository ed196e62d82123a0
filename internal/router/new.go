package router

import (
	"context"

	"personal-assistant/pkg/log"
)

// Secondary is consulted when no keyword rule matched. ok=false means "no opinion" and
// the default rule applies.
type Secondary interface {
	Classify(ctx context.Context, text string) (intent Intent, ok bool)
}

// Classifier maps free text to an Intent using the ordered rule table.
type Classifier struct {
	rules     []Rule
	secondary Secondary
	l         log.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSecondary installs a classifier that runs before the default rule.
func WithSecondary(s Secondary) Option {
	return func(c *Classifier) {
		c.secondary = s
	}
}

// WithRules replaces the rule table.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.rules = rules
	}
}

// New creates a Classifier over Rules().
func New(l log.Logger, opts ...Option) *Classifier {
	c := &Classifier{
		rules: Rules(),
		l:     l,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
