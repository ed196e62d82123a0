package webhook

import (
	"strconv"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ChatLimiter is a token bucket per chat. Buckets live in an expiring LRU so idle chats
// do not accumulate.
type ChatLimiter struct {
	mu       sync.Mutex // serializes get-or-create of a chat's bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewChatLimiter builds a limiter from cfg. A non-positive RateLimitPerMin disables limiting.
func NewChatLimiter(cfg LimiterConfig) *ChatLimiter {
	if cfg.MaxChats <= 0 {
		cfg.MaxChats = defaultMaxChats
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}

	l := &ChatLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxChats, nil, cfg.TTL),
		rate:     rate.Inf,
	}
	if cfg.RateLimitPerMin > 0 {
		l.rate = rate.Limit(float64(cfg.RateLimitPerMin) / 60.0)
		l.burst = max(cfg.RateLimitPerMin/10, 1)
	}
	return l
}

// Allow reports whether chatID may send another message now.
func (l *ChatLimiter) Allow(chatID int64) bool {
	if l.rate == rate.Inf {
		return true
	}

	return l.bucket(strconv.FormatInt(chatID, 10)).Allow()
}

func (l *ChatLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}
