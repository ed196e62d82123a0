package router

// Action is the closed set of things the assistant knows how to do.
type Action string

const (
	ActionGetStockPrice  Action = "get_stock_price"
	ActionGetCryptoPrice Action = "get_crypto_price"
	ActionGetTime        Action = "get_time"
	ActionGetWeather     Action = "get_weather"
	ActionAskQuestion    Action = "ask_question"
	ActionReadEmails     Action = "read_emails"
	ActionSendEmail      Action = "send_email"
	ActionScheduleTask   Action = "schedule_task"
	ActionSendMessage    Action = "send_message"
	ActionUnknown        Action = "unknown"
	ActionUnsupported    Action = "unsupported"
)

var knownActions = map[Action]bool{
	ActionGetStockPrice:  true,
	ActionGetCryptoPrice: true,
	ActionGetTime:        true,
	ActionGetWeather:     true,
	ActionAskQuestion:    true,
	ActionReadEmails:     true,
	ActionSendEmail:      true,
	ActionScheduleTask:   true,
	ActionSendMessage:    true,
	ActionUnknown:        true,
	ActionUnsupported:    true,
}

// Valid reports whether a is part of the action enumeration.
func (a Action) Valid() bool {
	return knownActions[a]
}

// Parameter keys.
const (
	ParamSymbol    = "symbol"
	ParamCity      = "city"
	ParamQuestion  = "question"
	ParamRecipient = "recipient"
	ParamSubject   = "subject"
	ParamBody      = "body"
	ParamTaskName  = "task_name"
	ParamTime      = "time"
)

// Intent is the classification of one message. It is built once per message and
// treated as read-only afterwards.
type Intent struct {
	Action     Action            `json:"action"`
	Params     map[string]string `json:"parameters"`
	Confidence int               `json:"confidence"`
	Rule       string            `json:"rule,omitempty"`
}

// Param returns the named parameter or "".
func (i Intent) Param(key string) string {
	return i.Params[key]
}

// Has reports whether the named parameter is present.
func (i Intent) Has(key string) bool {
	_, ok := i.Params[key]
	return ok
}

func newIntent(action Action, confidence int, params map[string]string) Intent {
	if params == nil {
		params = map[string]string{}
	}
	return Intent{Action: action, Params: params, Confidence: confidence}
}

// questionIntent is the open-question intent used by the default rule and by every
// recovery path.
func questionIntent(text string, confidence int) Intent {
	return newIntent(ActionAskQuestion, confidence, map[string]string{ParamQuestion: text})
}

// llmOutput is the JSON shape requested from the secondary classifier.
type llmOutput struct {
	Action     string         `json:"action"`
	Params     map[string]any `json:"parameters"`
	Confidence int            `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
}
