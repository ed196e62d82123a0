package webhook

import "time"

const (
	defaultMaxChats = 1000
	defaultTTL      = 5 * time.Minute
)

// LimiterConfig holds the per-chat throttling settings for inbound updates.
type LimiterConfig struct {
	RateLimitPerMin int           // Messages a chat may send per minute
	MaxChats        int           // Chats tracked at once, least recently seen are dropped
	TTL             time.Duration // How long an idle chat keeps its bucket
}
