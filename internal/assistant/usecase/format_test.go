package usecase_test

import (
	"strings"
	"testing"

	"personal-assistant/internal/assistant/usecase"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

func TestFormatStock(t *testing.T) {
	t.Run("down", func(t *testing.T) {
		got := usecase.FormatStock(quote.StockQuote{Success: true, Symbol: "AAPL", Name: "Apple Inc.", Price: 123.456, Change: -1.2, ChangePercent: -0.96, Currency: "USD"})
		for _, want := range []string{"$123.46", "📉", "-1.20", "(-0.96%)", "Apple Inc. (AAPL)"} {
			if !strings.Contains(got, want) {
				t.Errorf("%q does not contain %q", got, want)
			}
		}
		if strings.Contains(got, "📈") {
			t.Errorf("unexpected up glyph in %q", got)
		}
	})

	t.Run("zero change counts as up", func(t *testing.T) {
		got := usecase.FormatStock(quote.StockQuote{Success: true, Symbol: "IBM", Price: 10})
		if !strings.HasPrefix(got, "📈") || !strings.Contains(got, "+0.00 (+0.00%)") {
			t.Errorf("unexpected %q", got)
		}
		if !strings.Contains(got, "IBM (IBM)") || !strings.Contains(got, "USD") {
			t.Errorf("expected symbol as name and USD default, got %q", got)
		}
	})

	t.Run("failure", func(t *testing.T) {
		got := usecase.FormatStock(quote.StockQuote{Error: "Stock symbol 'X' not found"})
		if got != "❌ Stock symbol 'X' not found" {
			t.Errorf("unexpected %q", got)
		}
	})
}

func TestFormatCrypto(t *testing.T) {
	got := usecase.FormatCrypto(quote.CryptoQuote{Success: true, Symbol: "ETH", Name: "Ethereum", Price: 3000.5, Change24h: -3.456})
	for _, want := range []string{"Ethereum (ETH)", "$3000.50 USD", "📉 24h Change: -3.46%"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	got := usecase.FormatTime(worldclock.Reading{
		Success: true, City: "Tokyo", Timezone: "Asia/Tokyo",
		Time12h: "10:05 PM", Time24h: "22:05", Date: "Friday, March 15, 2024",
	})
	want := "🕐 <b>Tokyo</b>\n⏰ 10:05 PM (22:05)\n📅 Friday, March 15, 2024\n🌍 Asia/Tokyo"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatWeather(t *testing.T) {
	got := usecase.FormatWeather(weather.Reading{Success: true, City: "Paris", TempC: "20", TempF: "68", FeelsLikeC: "19", Humidity: "55", Description: "Sunny", WindKmph: "12"})
	for _, want := range []string{"Weather in Paris</b>", "20°C (68°F)", "Feels like: 19°C", "Humidity: 55%", "Sunny", "Wind: 12 km/h"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}

	if got := usecase.FormatWeather(weather.Reading{Error: "Weather data not found for 'x'"}); got != "❌ Weather data not found for 'x'" {
		t.Errorf("unexpected %q", got)
	}
}

func TestFormatEmails(t *testing.T) {
	if got := usecase.FormatEmails(nil); got != usecase.MsgNoUnread {
		t.Errorf("unexpected %q", got)
	}

	digest := usecase.FormatEmailDigest([]gmail.Message{
		{Sender: "Alice", Subject: "Report", Body: strings.Repeat("word ", 40)},
	})
	if !strings.Contains(digest, "You have 1 unread emails") || !strings.Contains(digest, "<b>Preview:</b> word word") || !strings.HasSuffix(digest, "...") {
		t.Errorf("unexpected digest %q", digest)
	}
}

func TestFormatEscapesMarkup(t *testing.T) {
	got := usecase.FormatAnswer("use <b> & </b> tags")
	if got != usecase.AnswerPrefix+"use &lt;b&gt; &amp; &lt;/b&gt; tags" {
		t.Errorf("unexpected %q", got)
	}
}
