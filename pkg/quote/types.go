package quote

// StockQuote is the result of a stock lookup. When Success is false only Symbol and
// Error are set.
type StockQuote struct {
	Success       bool    `json:"success"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name,omitempty"`
	Price         float64 `json:"price,omitempty"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Currency      string  `json:"currency,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// CryptoQuote is the result of a cryptocurrency lookup.
type CryptoQuote struct {
	Success   bool    `json:"success"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Change24h float64 `json:"change_24h"`
	Currency  string  `json:"currency,omitempty"`
	Error     string  `json:"error,omitempty"`
}

type coin struct {
	id   string
	name string
}
