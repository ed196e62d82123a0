package usecase

import (
	"fmt"
	"strings"

	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

// Replies are Telegram HTML: markup is ours, every collaborator string is escaped.

// FormatStock renders a stock quote. The trend glyph follows the sign of the change,
// zero counting as up.
func FormatStock(q quote.StockQuote) string {
	if !q.Success {
		return failure(q.Error)
	}
	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	return fmt.Sprintf("%s <b>%s (%s)</b>\n💰 Price: $%.2f %s\n📊 Change: %+.2f (%+.2f%%)",
		trendGlyph(q.Change), escape(name), escape(q.Symbol),
		q.Price, currency(q.Currency), q.Change, q.ChangePercent)
}

// FormatCrypto renders a cryptocurrency quote.
func FormatCrypto(q quote.CryptoQuote) string {
	if !q.Success {
		return failure(q.Error)
	}
	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	return fmt.Sprintf("🪙 <b>%s (%s)</b>\n💰 Price: $%.2f %s\n%s 24h Change: %+.2f%%",
		escape(name), escape(q.Symbol),
		q.Price, currency(q.Currency), trendGlyph(q.Change24h), q.Change24h)
}

// FormatTime renders a local time reading.
func FormatTime(r worldclock.Reading) string {
	if !r.Success {
		return failure(r.Error)
	}
	return fmt.Sprintf("🕐 <b>%s</b>\n⏰ %s (%s)\n📅 %s\n🌍 %s",
		escape(r.City), r.Time12h, r.Time24h, r.Date, r.Timezone)
}

// FormatWeather renders current conditions.
func FormatWeather(r weather.Reading) string {
	if !r.Success {
		return failure(r.Error)
	}
	place := r.City
	if r.Country != "" {
		place += ", " + r.Country
	}
	return fmt.Sprintf("🌤 <b>Weather in %s</b>\n🌡 Temperature: %s°C (%s°F)\n🤗 Feels like: %s°C\n💧 Humidity: %s%%\n☁️ %s\n💨 Wind: %s km/h",
		escape(place), r.TempC, r.TempF, r.FeelsLikeC, r.Humidity,
		escape(r.Description), r.WindKmph)
}

// FormatEmails renders an enumerated sender/subject list.
func FormatEmails(msgs []gmail.Message) string {
	if len(msgs) == 0 {
		return MsgNoUnread
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📧 <b>Unread emails (%d):</b>\n", len(msgs))
	for i, m := range msgs {
		fmt.Fprintf(&b, "\n%d. <b>From:</b> %s\n   <b>Subject:</b> %s\n", i+1, escape(m.Sender), escape(subjectOf(m)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatEmailDigest renders unread messages with a short preview of each body.
func FormatEmailDigest(msgs []gmail.Message) string {
	if len(msgs) == 0 {
		return MsgNoUnread
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📧 <b>You have %d unread emails:</b>\n", len(msgs))
	for _, m := range msgs {
		preview := m.Snippet
		if preview == "" {
			preview = m.Body
		}
		fmt.Fprintf(&b, "\n<b>From:</b> %s\n<b>Subject:</b> %s\n<b>Preview:</b> %s\n",
			escape(m.Sender), escape(subjectOf(m)),
			escape(truncate(strings.Join(strings.Fields(preview), " "), digestBodyLen)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatEmailSent confirms a sent message, echoing its body.
func FormatEmailSent(recipient, body string) string {
	return fmt.Sprintf("✅ Email sent to %s\n\n💬 %s", escape(recipient), escape(truncate(body, bodyPreviewLen)))
}

// FormatTaskScheduled confirms a scheduled task.
func FormatTaskScheduled(name, when string) string {
	if strings.TrimSpace(when) == "" {
		when = DefaultTaskTime
	}
	return fmt.Sprintf(MsgTaskScheduled, escape(name), escape(when))
}

// FormatAnswer marks a model answer.
func FormatAnswer(answer string) string {
	return AnswerPrefix + escape(answer)
}

func trendGlyph(change float64) string {
	if change >= 0 {
		return "📈"
	}
	return "📉"
}

func currency(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

func failure(msg string) string {
	if msg == "" {
		msg = "Something went wrong"
	}
	return "❌ " + escape(msg)
}

func subjectOf(m gmail.Message) string {
	if strings.TrimSpace(m.Subject) == "" {
		return NoSubject
	}
	return m.Subject
}

// truncate cuts s to n runes plus an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape neutralizes the three characters Telegram HTML requires escaped.
func escape(s string) string {
	return htmlEscaper.Replace(s)
}
