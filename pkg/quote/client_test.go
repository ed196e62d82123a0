package quote_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-assistant/pkg/quote"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/chart/AAPL":
			if r.URL.Query().Get("range") != "1d" {
				t.Errorf("expected range=1d, got %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{"chart": {"result": [{"meta": {
				"regularMarketPrice": 190.5, "previousClose": 200.0,
				"currency": "USD", "shortName": "Apple Inc."}}], "error": null}}`))
		case r.URL.Path == "/chart/TSLA":
			w.Write([]byte(`{"chart": {"result": [{"meta": {"regularMarketPrice": 250, "chartPreviousClose": 200}}]}}`))
		case r.URL.Path == "/chart/ZZZZ":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"chart": {"result": null, "error": {"code": "Not Found"}}}`))
		case r.URL.Path == "/chart/EMPTY":
			w.Write([]byte(`{"chart": {"result": []}}`))
		case r.URL.Path == "/chart/BROKEN":
			w.Write([]byte(`<html>oops`))
		case r.URL.Path == "/chart/SLOW":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))

		case r.URL.Path == "/cg/simple/price":
			id := r.URL.Query().Get("ids")
			if r.URL.Query().Get("include_24hr_change") != "true" {
				t.Errorf("24h change not requested")
			}
			switch id {
			case "bitcoin":
				w.Write([]byte(`{"bitcoin": {"usd": 65000.123, "usd_24h_change": -2.5}}`))
			case "solana":
				w.Write([]byte(`{"solana": {"usd": 150, "usd_24h_change": 4.25}}`))
			default:
				w.Write([]byte(`{}`))
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGetStock(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c := quote.New(quote.Config{StockURL: ts.URL + "/chart", CryptoURL: ts.URL + "/cg", Timeout: 100 * time.Millisecond})
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q, err := c.GetStock(ctx, " aapl ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Success || q.Symbol != "AAPL" || q.Name != "Apple Inc." {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if math.Abs(q.Change-(-9.5)) > 1e-9 || math.Abs(q.ChangePercent-(-4.75)) > 1e-9 {
			t.Errorf("unexpected change: %f / %f", q.Change, q.ChangePercent)
		}
	})

	t.Run("chart previous close fallback and defaults", func(t *testing.T) {
		q, err := c.GetStock(ctx, "TSLA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Change != 50 || q.Currency != "USD" || q.Name != "TSLA" {
			t.Errorf("unexpected quote: %+v", q)
		}
	})

	t.Run("not found", func(t *testing.T) {
		for _, sym := range []string{"ZZZZ", "EMPTY"} {
			q, err := c.GetStock(ctx, sym)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", sym, err)
			}
			if q.Success || q.Error != "Stock symbol '"+sym+"' not found" {
				t.Errorf("%s: unexpected quote: %+v", sym, q)
			}
		}
	})

	t.Run("invalid payload is an error", func(t *testing.T) {
		if _, err := c.GetStock(ctx, "BROKEN"); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("timeout is an error", func(t *testing.T) {
		if _, err := c.GetStock(ctx, "SLOW"); err == nil {
			t.Error("expected timeout error")
		}
	})
}

func TestGetCrypto(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c := quote.New(quote.Config{StockURL: ts.URL + "/chart", CryptoURL: ts.URL + "/cg/"})
	ctx := context.Background()

	tests := []struct {
		in         string
		wantOK     bool
		wantSymbol string
		wantName   string
		wantPrice  float64
	}{
		{"BTC", true, "BTC", "Bitcoin", 65000.123},
		{"bitcoin", true, "BTC", "Bitcoin", 65000.123},
		{"SOL", true, "SOL", "Solana", 150},
		{"NOPE", false, "NOPE", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := c.GetCrypto(ctx, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Success != tt.wantOK || q.Symbol != tt.wantSymbol || q.Name != tt.wantName || q.Price != tt.wantPrice {
				t.Errorf("unexpected quote: %+v", q)
			}
			if !tt.wantOK && !strings.Contains(q.Error, "Cryptocurrency 'NOPE' not found") {
				t.Errorf("unexpected error text %q", q.Error)
			}
		})
	}

	t.Run("unreachable host", func(t *testing.T) {
		bad := quote.New(quote.Config{CryptoURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		if _, err := bad.GetCrypto(ctx, "BTC"); err == nil {
			t.Error("expected transport error")
		}
	})
}
