// Package metrics holds the Prometheus collectors of the assistant. Labels are drawn
// from closed sets (actions, rule names, outcomes); chat ids and message text never
// become labels.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeFailure       = "failure"
	OutcomeFallback      = "fallback"
	OutcomeNotConfigured = "not_configured"
	OutcomeApology       = "apology"
)

// Webhook update kinds.
const (
	KindMessage     = "message"
	KindCommand     = "command"
	KindIgnored     = "ignored"
	KindRateLimited = "rate_limited"
)

var (
	// ClassifiedTotal counts classified messages by resulting action and the rule that produced it.
	ClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_classified_total",
		Help: "Total number of classified messages, by action and rule.",
	}, []string{"action", "rule"})

	// DispatchTotal counts dispatched intents by action and outcome.
	DispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_dispatch_total",
		Help: "Total number of dispatched intents, by action and outcome.",
	}, []string{"action", "outcome"})

	// DispatchDuration observes collaborator latency per action.
	DispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_dispatch_duration_seconds",
		Help:    "Time spent producing a reply, by action.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"action"})

	// QAFallbackTotal counts question-answering fallbacks by outcome (success/apology).
	QAFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_qa_fallback_total",
		Help: "Total number of question-answering fallbacks after a failed collaborator call.",
	}, []string{"outcome"})

	// WebhookUpdatesTotal counts incoming Telegram updates by kind.
	WebhookUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_webhook_updates_total",
		Help: "Total number of Telegram updates received, by kind (message/command/ignored/rate_limited).",
	}, []string{"kind"})

	// SchedulerRunsTotal counts scheduled job executions.
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_scheduler_runs_total",
		Help: "Total number of scheduled job runs, by job and outcome.",
	}, []string{"job", "outcome"})
)

// RecordClassified increments the classification counter.
func RecordClassified(action, rule string) {
	ClassifiedTotal.WithLabelValues(action, rule).Inc()
}

// RecordDispatch increments the dispatch counter and observes its duration.
func RecordDispatch(action, outcome string, took time.Duration) {
	DispatchTotal.WithLabelValues(action, outcome).Inc()
	DispatchDuration.WithLabelValues(action).Observe(took.Seconds())
}

// RecordFallback increments the fallback counter.
func RecordFallback(outcome string) {
	QAFallbackTotal.WithLabelValues(outcome).Inc()
}

// RecordWebhookUpdate increments the webhook counter.
func RecordWebhookUpdate(kind string) {
	WebhookUpdatesTotal.WithLabelValues(kind).Inc()
}

// RecordSchedulerRun increments the scheduler counter.
func RecordSchedulerRun(job, outcome string) {
	SchedulerRunsTotal.WithLabelValues(job, outcome).Inc()
}
