package message

// RecordInput is the input of UseCase.Record.
type RecordInput struct {
	TelegramMessageID int64
	ChatID            int64
	UserID            int64
	Username          string
	Text              string
	Command           string
	Action            string
	Response          string
}

// ListInput is the input of UseCase.List.
type ListInput struct {
	ChatID int64 // 0 for all chats
	Limit  int
}
