package router

import "time"

// Log prefixes
const (
	LogPrefixClassify    = "internal.router.Classify"
	LogPrefixLLMClassify = "internal.router.LLMClassifier.Classify"
)

// Confidence scores per rule family.
const (
	ConfidenceRealtime = 95
	ConfidenceQuestion = 90
	ConfidenceEmail    = 90
	ConfidenceTask     = 85
	ConfidenceSummary  = 80
	ConfidenceHelp     = 85
	ConfidenceDefault  = 75
	ConfidenceRecover  = 50
)

// Extraction defaults.
const (
	DefaultTicker       = "AAPL"
	DefaultCrypto       = "BTC"
	DefaultCity         = "New York"
	DefaultEmailSubject = "Message"
	minBodyLen          = 3
)

// Secondary (LLM) classifier settings.
const (
	LLMTemperature   = 0.1
	LLMMaxTokens     = 200
	LLMTimeout       = 8 * time.Second
	LLMMaxConfidence = 85
)

// PromptClassifySystem asks the model for exactly one intent in JSON.
const PromptClassifySystem = `You are the intent router of a personal assistant bot.
Classify the user's message into exactly one action:

- get_stock_price: stock quote; parameters: {"symbol": "<TICKER>"}
- get_crypto_price: cryptocurrency price; parameters: {"symbol": "<BTC|ETH|...>"}
- get_time: current time in a city; parameters: {"city": "<city>"}
- get_weather: current weather; parameters: {"city": "<city>"}
- read_emails: read unread email; parameters: {}
- send_email: send an email; parameters: {"recipient": "<address>", "subject": "<subject>", "body": "<body>"}
- schedule_task: reminder, task or appointment; parameters: {"task_name": "<name>", "time": "<when>"}
- send_message: greetings, help, what the bot can do; parameters: {}
- ask_question: any other question or request; parameters: {"question": "<the message>"}

Return only JSON:
{"action": "<action>", "parameters": {...}, "confidence": 0-100, "reasoning": "<short>"}`

// PromptClassifyUser wraps the message being classified.
const PromptClassifyUser = `Message: "%s"`

// Keyword sets. Matching is substring containment on the lower-cased text, except for
// the token sets which must appear as whole words.
var (
	stockKeywords = []string{"stock", "share price", "stock price", "ticker", "market price"}

	cryptoKeywords      = []string{"bitcoin", "ethereum", "crypto", "cryptocurrency", "dogecoin", "solana", "cardano", "ripple"}
	cryptoTokenKeywords = []string{"btc", "eth", "doge", "sol", "ada", "xrp"}

	timeKeywords = []string{"time in", "current time in", "what time", "time now in", "local time"}
	timePhrases  = []string{"time in ", "time is it in ", "time now in "}

	weatherKeywords = []string{"weather in", "weather at", "temperature in", "forecast", "how hot", "how cold", "is it raining", "weather today"}
	weatherPhrases  = []string{"weather in ", "weather at ", "temperature in ", "forecast for ", "forecast in "}

	questionIndicators = []string{"what", "who", "where", "when", "why", "how", "tell me", "explain", "describe", "?",
		"meaning", "define", "capital", "population", "distance", "calculate", "convert"}

	emailKeywords     = []string{"email", "mail", "unread", "inbox", "gmail"}
	sendKeywords      = []string{"send", "write", "compose", "reply"}
	sendTokenKeywords = []string{"to"}

	taskKeywords    = []string{"task", "todo", "reminder", "schedule", "remind", "alarm", "meeting", "appointment"}
	summaryKeywords = []string{"summary", "daily summary", "overview", "report", "briefing"}
	helpKeywords    = []string{"help", "commands", "what can you do", "abilities", "features"}
)

// knownTickers is checked before any heuristic ticker guess.
var knownTickers = map[string]bool{
	"AAPL": true, "GOOGL": true, "GOOG": true, "MSFT": true, "AMZN": true, "META": true, "TSLA": true,
	"NVDA": true, "NFLX": true, "AMD": true, "INTC": true, "IBM": true, "ORCL": true, "CRM": true,
	"ADBE": true, "PYPL": true, "UBER": true, "LYFT": true, "SPOT": true, "SNAP": true, "TWTR": true,
	"PINS": true, "ZM": true, "SHOP": true, "SQ": true, "COIN": true, "HOOD": true, "RBLX": true,
	"ABNB": true, "PLTR": true, "SOFI": true, "NIO": true, "RIVN": true, "LCID": true, "F": true,
	"GM": true, "TM": true, "BA": true, "DIS": true, "WMT": true, "TGT": true, "COST": true, "HD": true,
	"LOW": true, "NKE": true, "SBUX": true, "MCD": true, "KO": true, "PEP": true, "JNJ": true,
	"PFE": true, "MRNA": true, "BNTX": true, "UNH": true, "CVS": true, "WBA": true, "JPM": true,
	"BAC": true, "WFC": true, "C": true, "GS": true, "MS": true, "V": true, "MA": true, "AXP": true,
}

var tickerStopWords = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "WHAT": true, "PRICE": true,
	"STOCK": true, "SHOW": true, "GET": true, "CHECK": true,
}

// cryptoSynonyms is ordered: the first set present in the text wins.
var cryptoSynonyms = []struct {
	symbol string
	names  []string // substring match
	tokens []string // whole word match
}{
	{"BTC", []string{"bitcoin"}, []string{"btc"}},
	{"ETH", []string{"ethereum"}, []string{"eth"}},
	{"DOGE", []string{"dogecoin"}, []string{"doge"}},
	{"SOL", []string{"solana"}, []string{"sol"}},
	{"ADA", []string{"cardano"}, []string{"ada"}},
	{"XRP", []string{"ripple"}, []string{"xrp"}},
}

var bodyConnectors = []string{"saying ", "with message ", "message: ", "body: ", "content: ", "that ", "with body "}
