package quote

import "time"

const (
	DefaultStockURL  = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultCryptoURL = "https://api.coingecko.com/api/v3"
	DefaultTimeout   = 10 * time.Second

	// Yahoo rejects requests without a browser-like agent.
	userAgent = "Mozilla/5.0 (compatible; personal-assistant/1.0)"
)

var cryptoAliases = map[string]string{
	"BITCOIN":  "BTC",
	"ETHEREUM": "ETH",
	"DOGECOIN": "DOGE",
	"RIPPLE":   "XRP",
	"CARDANO":  "ADA",
	"SOLANA":   "SOL",
}

var coins = map[string]coin{
	"BTC":   {"bitcoin", "Bitcoin"},
	"ETH":   {"ethereum", "Ethereum"},
	"DOGE":  {"dogecoin", "Dogecoin"},
	"XRP":   {"ripple", "XRP"},
	"ADA":   {"cardano", "Cardano"},
	"SOL":   {"solana", "Solana"},
	"DOT":   {"polkadot", "Polkadot"},
	"MATIC": {"matic-network", "Polygon"},
	"LTC":   {"litecoin", "Litecoin"},
	"BNB":   {"binancecoin", "BNB"},
	"AVAX":  {"avalanche-2", "Avalanche"},
	"LINK":  {"chainlink", "Chainlink"},
}
