package openai

import "time"

const (
	DefaultBaseURL  = "https://api.openai.com/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 60 * time.Second
)
