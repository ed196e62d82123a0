package telegram

const (
	MsgWelcome = `🤖 <b>Personal Assistant Bot</b>

I can help you with:
• 📈 Stock and crypto prices
• 🌤 Weather and world time
• 📧 Reading and sending emails
• 📋 Tasks and reminders
• ❓ General questions

Type a command or just describe what you need!

Available commands:
/emails - Read unread emails
/tasks - Show pending tasks
/summary - Get daily summary
/help - Show this message`

	MsgCommands = `<b>Commands</b>
/start - Introduction
/emails - Read unread emails
/tasks - Show pending tasks
/summary - Get daily summary
/help - Show this message

Or write in plain words, e.g. "AAPL stock price" or "weather in Paris".`

	MsgUnknownCommand     = "❓ Unknown command: /%s\nType /help for available commands"
	MsgSlowDown           = "⏳ You're sending messages too fast. Please wait a moment."
	MsgMailNotConfigured  = "📧 Email service not configured. Add Gmail credentials to enable email features."
	MsgNoUnread           = "📧 No unread emails"
	MsgEmailsUnavailable  = "❌ Couldn't read your emails right now. Please try again later."
	MsgNoPendingTasks     = "✅ No pending tasks"
	MsgPendingTasksHeader = "📋 <b>Pending tasks:</b>\n\n"
	MsgTasksUnavailable   = "❌ Couldn't load your tasks right now. Please try again later."
)

const (
	cmdStart   = "start"
	cmdHelp    = "help"
	cmdEmails  = "emails"
	cmdTasks   = "tasks"
	cmdSummary = "summary"
)
