package usecase

// Log prefixes
const (
	LogPrefixRespond  = "assistant.usecase.Respond"
	LogPrefixDispatch = "assistant.usecase.Dispatch"
	LogPrefixSummary  = "assistant.usecase.DailySummary"
	LogPrefixEmail    = "assistant.usecase.Email"
)

// Replies
const (
	AnswerPrefix = "🤖 "

	MsgApology              = "❌ Sorry, I couldn't process your question. Please try again."
	MsgServiceNotConfigured = "📧 Email service not configured. Add Gmail credentials to enable email features."
	MsgInvalidRecipient     = "❌ I need a valid recipient email address, e.g. \"send email to john@example.com saying hello\"."
	MsgMissingBody          = "❌ Please provide the message content, e.g. \"send email to john@example.com saying hello\"."
	MsgSendFailed           = "❌ Failed to send email to %s"
	MsgNoUnread             = "📧 No unread emails"
	MsgTaskScheduled        = "🕐 Task '%s' scheduled for %s"

	DefaultTaskTime = "unspecified time"
	NoSubject       = "(no subject)"

	bodyPreviewLen  = 100
	digestBodyLen   = 100
	topSenderCount  = 3
	topSenderSample = 10
)

// MsgHelp is the guidance reply for send_message, unknown and unsupported intents.
const MsgHelp = `🤖 <b>I can help you with:</b>

📈 Stock prices: "AAPL stock price"
🪙 Crypto prices: "Bitcoin price"
🕐 World time: "What time is it in Tokyo?"
🌤 Weather: "Weather in London"
📧 Emails: "Read my emails" or "Send email to john@example.com saying hi"
📋 Tasks: "Remind me to call mom at 6pm"
❓ Anything else: just ask!

Use /help for commands.`
