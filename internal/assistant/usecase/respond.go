package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/metrics"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
)

// Classify returns the intent of text.
func (uc *implUseCase) Classify(ctx context.Context, text string) router.Intent {
	return uc.classifier.Classify(ctx, text)
}

// Respond classifies text and dispatches the intent.
func (uc *implUseCase) Respond(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return MsgHelp
	}

	intent := uc.classifier.Classify(ctx, text)
	uc.l.Infof(ctx, "%s: action=%s rule=%s confidence=%d", LogPrefixRespond, intent.Action, intent.Rule, intent.Confidence)
	return uc.Dispatch(ctx, text, intent)
}

// Dispatch runs intent against its collaborator. A failed call (error or panic) is
// retried once as a question about the original text; configuration absence is
// reported as such and never retried.
func (uc *implUseCase) Dispatch(ctx context.Context, text string, intent router.Intent) string {
	start := time.Now()
	action := string(intent.Action)

	if intent.Action == router.ActionAskQuestion {
		question := intent.Param(router.ParamQuestion)
		if question == "" {
			question = text
		}
		reply, ok := uc.answer(ctx, question)
		metrics.RecordDispatch(action, outcome(ok), time.Since(start))
		return reply
	}

	reply, ok, err := uc.handle(ctx, intent)
	if err == nil {
		metrics.RecordDispatch(action, outcome(ok), time.Since(start))
		return reply
	}
	if errors.Is(err, gmail.ErrNotConfigured) {
		metrics.RecordDispatch(action, metrics.OutcomeNotConfigured, time.Since(start))
		return MsgServiceNotConfigured
	}

	uc.l.Warnf(ctx, "%s: %s failed, answering as a question: %v", LogPrefixDispatch, intent.Action, err)
	reply, ok = uc.answer(ctx, text)
	if ok {
		metrics.RecordFallback(metrics.OutcomeSuccess)
	} else {
		metrics.RecordFallback(metrics.OutcomeApology)
	}
	metrics.RecordDispatch(action, metrics.OutcomeFallback, time.Since(start))
	return reply
}

// answer is the last resort: its failure is final.
func (uc *implUseCase) answer(ctx context.Context, question string) (reply string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: question answering panicked: %v", LogPrefixDispatch, r)
			reply, ok = MsgApology, false
		}
	}()

	text, err := uc.qa.Answer(ctx, question)
	if err != nil {
		uc.l.Errorf(ctx, "%s: question answering failed: %v", LogPrefixDispatch, err)
		return MsgApology, false
	}
	return FormatAnswer(text), true
}

// handle calls the collaborator bound to intent.Action. ok=false marks a formatted
// failure reply; err is set only when the call itself failed.
func (uc *implUseCase) handle(ctx context.Context, intent router.Intent) (reply string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", assistant.ErrCollaboratorPanic, r)
		}
	}()

	switch intent.Action {
	case router.ActionGetStockPrice:
		return uc.stockPrice(ctx, intent)
	case router.ActionGetCryptoPrice:
		return uc.cryptoPrice(ctx, intent)
	case router.ActionGetTime:
		return uc.localTime(intent)
	case router.ActionGetWeather:
		return uc.currentWeather(ctx, intent)
	case router.ActionReadEmails:
		return uc.readEmails(ctx)
	case router.ActionSendEmail:
		return uc.sendEmail(ctx, intent)
	case router.ActionScheduleTask:
		return FormatTaskScheduled(intent.Param(router.ParamTaskName), intent.Param(router.ParamTime)), true, nil
	default:
		return MsgHelp, true, nil
	}
}

func outcome(ok bool) string {
	if ok {
		return metrics.OutcomeSuccess
	}
	return metrics.OutcomeFailure
}
