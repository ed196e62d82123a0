package quote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Config configures the quote client. Empty URLs fall back to the public endpoints.
type Config struct {
	StockURL   string
	CryptoURL  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches stock quotes from the Yahoo Finance chart API and crypto prices from
// CoinGecko. Lookups that the upstream cannot answer come back with Success=false;
// transport and decoding problems are returned as errors.
type Client struct {
	stockURL   string
	cryptoURL  string
	httpClient *http.Client
}

// New creates a new quote client.
func New(cfg Config) *Client {
	if cfg.StockURL == "" {
		cfg.StockURL = DefaultStockURL
	}
	if cfg.CryptoURL == "" {
		cfg.CryptoURL = DefaultCryptoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		stockURL:   strings.TrimRight(cfg.StockURL, "/"),
		cryptoURL:  strings.TrimRight(cfg.CryptoURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// GetStock returns the latest quote for symbol.
func (c *Client) GetStock(ctx context.Context, symbol string) (StockQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	notFound := StockQuote{Symbol: symbol, Error: fmt.Sprintf("Stock symbol '%s' not found", symbol)}

	endpoint := fmt.Sprintf("%s/%s?interval=1d&range=1d", c.stockURL, url.PathEscape(symbol))
	status, body, err := c.get(ctx, endpoint)
	if err != nil {
		return StockQuote{}, fmt.Errorf("quote.GetStock %s: %w", symbol, err)
	}
	if status != http.StatusOK {
		return notFound, nil
	}
	if !gjson.ValidBytes(body) {
		return StockQuote{}, fmt.Errorf("quote.GetStock %s: invalid JSON payload", symbol)
	}

	meta := gjson.GetBytes(body, "chart.result.0.meta")
	if !meta.Exists() || !meta.Get("regularMarketPrice").Exists() {
		return notFound, nil
	}

	price := meta.Get("regularMarketPrice").Float()
	prevClose := meta.Get("previousClose").Float()
	if prevClose == 0 {
		prevClose = meta.Get("chartPreviousClose").Float()
	}

	change := 0.0
	changePercent := 0.0
	if prevClose != 0 {
		change = price - prevClose
		changePercent = change / prevClose * 100
	}

	currency := meta.Get("currency").String()
	if currency == "" {
		currency = "USD"
	}
	name := meta.Get("shortName").String()
	if name == "" {
		name = meta.Get("longName").String()
	}
	if name == "" {
		name = symbol
	}

	return StockQuote{
		Success:       true,
		Symbol:        symbol,
		Name:          name,
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		Currency:      currency,
	}, nil
}

// GetCrypto returns the USD price and 24h change for a crypto symbol or coin name.
func (c *Client) GetCrypto(ctx context.Context, symbol string) (CryptoQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if alias, ok := cryptoAliases[symbol]; ok {
		symbol = alias
	}

	info, ok := coins[symbol]
	if !ok {
		info = coin{id: strings.ToLower(symbol), name: symbol}
	}
	notFound := CryptoQuote{Symbol: symbol, Error: fmt.Sprintf("Cryptocurrency '%s' not found", symbol)}

	q := url.Values{}
	q.Set("ids", info.id)
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")

	status, body, err := c.get(ctx, c.cryptoURL+"/simple/price?"+q.Encode())
	if err != nil {
		return CryptoQuote{}, fmt.Errorf("quote.GetCrypto %s: %w", symbol, err)
	}
	if status != http.StatusOK {
		return notFound, nil
	}
	if !gjson.ValidBytes(body) {
		return CryptoQuote{}, fmt.Errorf("quote.GetCrypto %s: invalid JSON payload", symbol)
	}

	entry := gjson.GetBytes(body, gjson.Escape(info.id))
	if !entry.Exists() || !entry.Get("usd").Exists() {
		return notFound, nil
	}

	return CryptoQuote{
		Success:   true,
		Symbol:    symbol,
		Name:      info.name,
		Price:     entry.Get("usd").Float(),
		Change24h: entry.Get("usd_24h_change").Float(),
		Currency:  "USD",
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
