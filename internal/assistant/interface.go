package assistant

import (
	"context"

	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

// UseCase is the assistant core: classify free text, dispatch the intent to a
// collaborator and format the reply.
type UseCase interface {
	// Classify returns the intent of text.
	Classify(ctx context.Context, text string) router.Intent

	// Respond classifies text and returns the reply to deliver. It always returns a reply.
	Respond(ctx context.Context, text string) string

	// Dispatch runs an already classified intent. text is the original message, used for
	// the question-answering fallback.
	Dispatch(ctx context.Context, text string, intent router.Intent) string

	// DailySummary builds the summary sent by /summary and the scheduled summaries.
	DailySummary(ctx context.Context) string

	// EmailDigest lists up to limit unread messages.
	EmailDigest(ctx context.Context, limit int) (EmailDigestOutput, error)

	// UnreadEmails returns up to limit unread messages and archives them.
	UnreadEmails(ctx context.Context, limit int) ([]gmail.Message, error)

	// SendEmail sends a message through the mail provider.
	SendEmail(ctx context.Context, input SendEmailInput) error
}

// Classifier maps text to an intent and never fails.
type Classifier interface {
	Classify(ctx context.Context, text string) router.Intent
}

// QuoteProvider looks up stock and crypto prices. A symbol the provider does not know is
// a result with Success=false; errors are reserved for failed calls.
type QuoteProvider interface {
	GetStock(ctx context.Context, symbol string) (quote.StockQuote, error)
	GetCrypto(ctx context.Context, symbol string) (quote.CryptoQuote, error)
}

// WeatherProvider looks up current conditions for a city.
type WeatherProvider interface {
	GetWeather(ctx context.Context, city string) (weather.Reading, error)
}

// ClockProvider resolves a city to its local time.
type ClockProvider interface {
	GetTime(city string) worldclock.Reading
}

// MailProvider reads and sends mail. Calls return gmail.ErrNotConfigured when no
// credentials are available.
type MailProvider interface {
	GetUnread(ctx context.Context, max int) ([]gmail.Message, error)
	UnreadCount(ctx context.Context) (int, error)
	Send(ctx context.Context, to, subject, body string) (bool, error)
}

// EmailArchive keeps a local record of fetched mail.
type EmailArchive interface {
	Archive(ctx context.Context, msgs []gmail.Message) error
}

// QAProvider answers open questions. It has no access to real-time data.
type QAProvider interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ChatTransport delivers a reply to a chat and reports whether it was delivered.
type ChatTransport interface {
	Send(ctx context.Context, chatID int64, text string) bool
}

// PendingTaskCounter reports how many tasks are waiting to run.
type PendingTaskCounter interface {
	CountPending(ctx context.Context) (int, error)
}
