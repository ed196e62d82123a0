package router

import "strings"

// input is the message as seen by every rule: the raw text for extraction plus the
// trimmed lower-case form and its word set for matching.
type input struct {
	raw    string
	lower  string
	tokens map[string]bool
}

func newInput(text string) input {
	lower := strings.ToLower(strings.TrimSpace(text))
	return input{raw: text, lower: lower, tokens: tokenSet(lower)}
}

// Rule is one entry of the ordered rule table.
type Rule struct {
	Priority int
	Name     string

	match func(in input) bool
	build func(in input) Intent

	// fallback marks the catch-all rule; the secondary classifier runs before it.
	fallback bool
}

// Matches reports whether the rule fires for text.
func (r Rule) Matches(text string) bool {
	return r.match(newInput(text))
}

// Build produces the rule's intent for text without checking Matches.
func (r Rule) Build(text string) Intent {
	in := newInput(text)
	intent := r.build(in)
	intent.Rule = r.Name
	return intent
}

// Rule names.
const (
	RuleStock    = "stock"
	RuleCrypto   = "crypto"
	RuleTime     = "time"
	RuleWeather  = "weather"
	RuleQuestion = "question"
	RuleEmail    = "email"
	RuleTask     = "task"
	RuleSummary  = "summary"
	RuleHelp     = "help"
	RuleDefault  = "default"
	RuleLLM      = "llm"
	RuleRecover  = "recover"
)

// Rules returns the rule table in evaluation order. The first matching rule wins, so
// the order is behavior: real-time lookups, then open questions, then mail, tasks,
// summary and help, then the catch-all.
func Rules() []Rule {
	return []Rule{
		{
			Priority: 1,
			Name:     RuleStock,
			match:    func(in input) bool { return containsAny(in.lower, stockKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionGetStockPrice, ConfidenceRealtime, map[string]string{ParamSymbol: ExtractTicker(in.raw)})
			},
		},
		{
			Priority: 2,
			Name:     RuleCrypto,
			match: func(in input) bool {
				return containsAny(in.lower, cryptoKeywords) || hasAnyToken(in.tokens, cryptoTokenKeywords)
			},
			build: func(in input) Intent {
				return newIntent(ActionGetCryptoPrice, ConfidenceRealtime, map[string]string{ParamSymbol: ExtractCryptoSymbol(in.raw)})
			},
		},
		{
			Priority: 3,
			Name:     RuleTime,
			match:    func(in input) bool { return containsAny(in.lower, timeKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionGetTime, ConfidenceRealtime, map[string]string{ParamCity: ExtractCity(in.raw, timePhrases)})
			},
		},
		{
			Priority: 4,
			Name:     RuleWeather,
			match:    func(in input) bool { return containsAny(in.lower, weatherKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionGetWeather, ConfidenceRealtime, map[string]string{ParamCity: ExtractCity(in.raw, weatherPhrases)})
			},
		},
		{
			Priority: 5,
			Name:     RuleQuestion,
			match:    func(in input) bool { return containsAny(in.lower, questionIndicators) },
			build:    func(in input) Intent { return questionIntent(in.raw, ConfidenceQuestion) },
		},
		{
			Priority: 6,
			Name:     RuleEmail,
			match:    func(in input) bool { return containsAny(in.lower, emailKeywords) },
			build:    buildEmail,
		},
		{
			Priority: 7,
			Name:     RuleTask,
			match:    func(in input) bool { return containsAny(in.lower, taskKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionScheduleTask, ConfidenceTask, map[string]string{ParamTaskName: in.raw})
			},
		},
		{
			Priority: 8,
			Name:     RuleSummary,
			match:    func(in input) bool { return containsAny(in.lower, summaryKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionSendMessage, ConfidenceSummary, map[string]string{ParamBody: in.raw})
			},
		},
		{
			Priority: 9,
			Name:     RuleHelp,
			match:    func(in input) bool { return containsAny(in.lower, helpKeywords) },
			build: func(in input) Intent {
				return newIntent(ActionSendMessage, ConfidenceHelp, map[string]string{ParamBody: in.raw})
			},
		},
		{
			Priority: 10,
			Name:     RuleDefault,
			match:    func(in input) bool { return true },
			build:    func(in input) Intent { return questionIntent(in.raw, ConfidenceDefault) },
			fallback: true,
		},
	}
}

// buildEmail splits mail requests into send and read. A send intent always carries a
// recipient (possibly empty) and only carries a body when one could be extracted.
func buildEmail(in input) Intent {
	if !containsAny(in.lower, sendKeywords) && !hasAnyToken(in.tokens, sendTokenKeywords) {
		return newIntent(ActionReadEmails, ConfidenceEmail, nil)
	}

	params := map[string]string{
		ParamRecipient: ExtractRecipient(in.raw),
		ParamSubject:   DefaultEmailSubject,
	}
	if body, ok := ExtractMessageBody(in.raw); ok {
		params[ParamBody] = body
	}
	return newIntent(ActionSendEmail, ConfidenceEmail, params)
}
