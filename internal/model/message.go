package model

import "time"

// Message is one inbound chat message together with the reply it received.
type Message struct {
	ID                string
	TelegramMessageID int64
	ChatID            int64
	UserID            int64
	Username          string
	Text              string
	IsCommand         bool
	Command           string // Command name without the slash, empty for natural language
	Action            string // Classified action, empty for commands
	Response          string
	CreatedAt         time.Time
}
