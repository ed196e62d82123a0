package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"personal-assistant/internal/assistant/usecase"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

func TestRespondScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Bitcoin price", func(t *testing.T) {
		d := newDeps()
		d.quotes.crypto = quote.CryptoQuote{Success: true, Symbol: "BTC", Name: "Bitcoin", Price: 65000.129, Change24h: 2.5, Currency: "USD"}

		reply := d.useCase().Respond(ctx, "Bitcoin price")
		if d.quotes.symbol != "BTC" {
			t.Errorf("expected BTC lookup, got %q", d.quotes.symbol)
		}
		for _, want := range []string{"Bitcoin (BTC)", "$65000.13", "📈 24h Change: +2.50%"} {
			if !strings.Contains(reply, want) {
				t.Errorf("reply %q does not contain %q", reply, want)
			}
		}
	})

	t.Run("weather in Tokyo", func(t *testing.T) {
		d := newDeps()
		d.weather.reading = weather.Reading{Success: true, City: "Tokyo", Country: "Japan", TempC: "18", TempF: "64", FeelsLikeC: "17", Humidity: "60", Description: "Partly cloudy", WindKmph: "10"}

		reply := d.useCase().Respond(ctx, "What's the weather in Tokyo?")
		if d.weather.city != "tokyo" {
			t.Errorf("expected city tokyo, got %q", d.weather.city)
		}
		if !strings.Contains(reply, "Weather in Tokyo, Japan") || !strings.Contains(reply, "18°C (64°F)") {
			t.Errorf("unexpected reply %q", reply)
		}
		if len(d.qa.questions) != 0 {
			t.Errorf("question answering must not run, got %v", d.qa.questions)
		}
	})

	t.Run("mail not configured does not fall back", func(t *testing.T) {
		d := newDeps()
		d.mail.err = gmail.ErrNotConfigured

		reply := d.useCase().Respond(ctx, "check my inbox")
		if reply != usecase.MsgServiceNotConfigured {
			t.Errorf("expected not configured reply, got %q", reply)
		}
		if len(d.qa.questions) != 0 {
			t.Errorf("fallback attempted: %v", d.qa.questions)
		}
	})

	t.Run("stock timeout falls back to question answering", func(t *testing.T) {
		d := newDeps()
		d.quotes.err = context.DeadlineExceeded

		reply := d.useCase().Respond(ctx, "AAPL stock price")
		if reply != usecase.AnswerPrefix+"Here is what I know." {
			t.Errorf("unexpected reply %q", reply)
		}
		if len(d.qa.questions) != 1 || d.qa.questions[0] != "AAPL stock price" {
			t.Errorf("expected one fallback with the original text, got %v", d.qa.questions)
		}
	})

	t.Run("stock timeout and question answering failure", func(t *testing.T) {
		d := newDeps()
		d.quotes.err = context.DeadlineExceeded
		d.qa.err = errors.New("no providers")

		reply := d.useCase().Respond(ctx, "AAPL stock price")
		if reply != usecase.MsgApology {
			t.Errorf("expected apology, got %q", reply)
		}
		if len(d.qa.questions) != 1 {
			t.Errorf("expected exactly one fallback attempt, got %d", len(d.qa.questions))
		}
	})
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	intent := func(action router.Action, params map[string]string) router.Intent {
		return router.Intent{Action: action, Params: params, Confidence: 90}
	}

	t.Run("provider failure result is not retried", func(t *testing.T) {
		d := newDeps()
		d.quotes.stock = quote.StockQuote{Symbol: "ZZZZ", Error: "Stock symbol 'ZZZZ' not found"}

		reply := d.useCase().Dispatch(ctx, "ZZZZ stock", intent(router.ActionGetStockPrice, map[string]string{router.ParamSymbol: "ZZZZ"}))
		if reply != "❌ Stock symbol 'ZZZZ' not found" {
			t.Errorf("unexpected reply %q", reply)
		}
		if len(d.qa.questions) != 0 {
			t.Errorf("fallback attempted: %v", d.qa.questions)
		}
	})

	t.Run("panic falls back", func(t *testing.T) {
		d := newDeps()
		d.quotes.panics = true

		reply := d.useCase().Dispatch(ctx, "btc", intent(router.ActionGetCryptoPrice, map[string]string{router.ParamSymbol: "BTC"}))
		if !strings.HasPrefix(reply, usecase.AnswerPrefix) || len(d.qa.questions) != 1 {
			t.Errorf("expected fallback answer, got %q", reply)
		}
	})

	t.Run("missing symbol uses default", func(t *testing.T) {
		d := newDeps()
		d.quotes.stock = quote.StockQuote{Success: true, Symbol: "AAPL"}
		d.useCase().Dispatch(ctx, "stock", intent(router.ActionGetStockPrice, nil))
		if d.quotes.symbol != router.DefaultTicker {
			t.Errorf("expected default ticker, got %q", d.quotes.symbol)
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		d := newDeps()
		d.clock.reading = worldclock.Reading{Error: "Unknown city/timezone: 'atlantis'. Try major cities like Tokyo, London, New York."}
		reply := d.useCase().Dispatch(ctx, "time in atlantis", intent(router.ActionGetTime, map[string]string{router.ParamCity: "atlantis"}))
		if !strings.HasPrefix(reply, "❌ Unknown city/timezone: 'atlantis'") {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("read emails", func(t *testing.T) {
		d := newDeps()
		d.mail.unread = []gmail.Message{
			{Sender: "Alice <alice@example.com>", Subject: "Lunch"},
			{Sender: "bob@example.com", Subject: ""},
		}
		reply := d.useCase().Dispatch(ctx, "inbox", intent(router.ActionReadEmails, nil))
		for _, want := range []string{"(2)", "1. <b>From:</b> Alice &lt;alice@example.com&gt;", "<b>Subject:</b> Lunch", "2. <b>From:</b> bob@example.com", usecase.NoSubject} {
			if !strings.Contains(reply, want) {
				t.Errorf("reply %q does not contain %q", reply, want)
			}
		}
	})

	t.Run("read emails failure falls back", func(t *testing.T) {
		d := newDeps()
		d.mail.err = errors.New("gmail list unread: 503")
		reply := d.useCase().Dispatch(ctx, "inbox", intent(router.ActionReadEmails, nil))
		if !strings.HasPrefix(reply, usecase.AnswerPrefix) {
			t.Errorf("expected fallback answer, got %q", reply)
		}
	})

	t.Run("send email", func(t *testing.T) {
		sendIntent := func(recipient, body string) router.Intent {
			params := map[string]string{router.ParamRecipient: recipient, router.ParamSubject: router.DefaultEmailSubject}
			if body != "" {
				params[router.ParamBody] = body
			}
			return intent(router.ActionSendEmail, params)
		}

		d := newDeps()
		if reply := d.useCase().Dispatch(ctx, "send email to bob", sendIntent("bob", "hi there")); reply != usecase.MsgInvalidRecipient {
			t.Errorf("expected invalid recipient, got %q", reply)
		}
		if reply := d.useCase().Dispatch(ctx, "send email to a@b.com x", sendIntent("a@b.com", "")); reply != usecase.MsgMissingBody {
			t.Errorf("expected missing body, got %q", reply)
		}
		if d.mail.sendCalls != 0 {
			t.Errorf("mail sent for an invalid request")
		}

		d.mail.sent = true
		long := strings.Repeat("a", 150)
		reply := d.useCase().Dispatch(ctx, "send", sendIntent("a@b.com", long))
		if !strings.Contains(reply, "✅ Email sent to a@b.com") || !strings.Contains(reply, strings.Repeat("a", 100)+"...") {
			t.Errorf("unexpected reply %q", reply)
		}
		if d.mail.subject != router.DefaultEmailSubject || d.mail.body != long {
			t.Errorf("unexpected mail %q %q", d.mail.subject, d.mail.body)
		}

		d.mail.sent = false
		if reply := d.useCase().Dispatch(ctx, "send", sendIntent("a@b.com", "hello")); reply != "❌ Failed to send email to a@b.com" {
			t.Errorf("unexpected reply %q", reply)
		}
		if len(d.qa.questions) != 0 {
			t.Errorf("rejected send must not fall back")
		}

		d.mail.err = gmail.ErrNotConfigured
		if reply := d.useCase().Dispatch(ctx, "send", sendIntent("a@b.com", "hello")); reply != usecase.MsgServiceNotConfigured {
			t.Errorf("expected not configured, got %q", reply)
		}
	})

	t.Run("question failure is terminal", func(t *testing.T) {
		d := newDeps()
		d.qa.err = errors.New("boom")
		reply := d.useCase().Dispatch(ctx, "why is the sky blue", intent(router.ActionAskQuestion, map[string]string{router.ParamQuestion: "why is the sky blue"}))
		if reply != usecase.MsgApology || len(d.qa.questions) != 1 {
			t.Errorf("expected one attempt and an apology, got %q after %d calls", reply, len(d.qa.questions))
		}
	})

	t.Run("schedule task", func(t *testing.T) {
		d := newDeps()
		reply := d.useCase().Dispatch(ctx, "remind me", intent(router.ActionScheduleTask, map[string]string{router.ParamTaskName: "remind me"}))
		if reply != "🕐 Task 'remind me' scheduled for unspecified time" {
			t.Errorf("unexpected reply %q", reply)
		}
		reply = d.useCase().Dispatch(ctx, "gym", intent(router.ActionScheduleTask, map[string]string{router.ParamTaskName: "gym", router.ParamTime: "7am"}))
		if reply != "🕐 Task 'gym' scheduled for 7am" {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("guidance", func(t *testing.T) {
		d := newDeps()
		for _, a := range []router.Action{router.ActionSendMessage, router.ActionUnknown, router.ActionUnsupported} {
			if reply := d.useCase().Dispatch(ctx, "help", intent(a, nil)); reply != usecase.MsgHelp {
				t.Errorf("%s: unexpected reply %q", a, reply)
			}
		}
	})

	t.Run("blank input", func(t *testing.T) {
		d := newDeps()
		if reply := d.useCase().Respond(ctx, "   "); reply != usecase.MsgHelp {
			t.Errorf("unexpected reply %q", reply)
		}
	})
}
