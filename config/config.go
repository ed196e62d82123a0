package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	// Assistant collaborators
	Telegram  TelegramConfig
	Gmail     GmailConfig
	Realtime  RealtimeConfig
	Assistant AssistantConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	Scheduler SchedulerConfig
	Webhook   WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type TelegramConfig struct {
	BotToken       string
	WebhookURL     string
	DefaultChatID  int64
	NgrokAPIURL    string        // When set and WebhookURL is empty, the public URL is read from ngrok
	ProcessTimeout time.Duration // Budget for answering one update in the background
}

// GmailConfig points at the OAuth material for the mailbox. Mail features report
// "not configured" when Enabled is false or the credentials file is missing.
type GmailConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
}

type RealtimeConfig struct {
	StockAPIURL   string
	CryptoAPIURL  string
	WeatherAPIURL string
	Timeout       time.Duration
}

type AssistantConfig struct {
	LLMClassifierEnabled bool
	EmailPageSize        int
	QATemperature        float64
	QAMaxTokens          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      time.Duration    `yaml:"retry_delay"`
	MaxTotalTimeout time.Duration    `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type SchedulerConfig struct {
	Enabled            bool
	Timezone           string
	MorningSummaryTime string
	EveningSummaryTime string
	EmailCheckInterval time.Duration
	TaskCheckInterval  time.Duration
	MessageRetention   time.Duration
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/personal-assistant/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/personal-assistant/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Database.Path = v.GetString("database.path")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.DefaultChatID = v.GetInt64("telegram.default_chat_id")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")
	cfg.Telegram.ProcessTimeout = v.GetDuration("telegram.process_timeout")

	cfg.Gmail.Enabled = v.GetBool("gmail.enabled")
	cfg.Gmail.CredentialsPath = v.GetString("gmail.credentials_path")
	cfg.Gmail.TokenPath = v.GetString("gmail.token_path")
	if creds := v.GetString("gmail_credentials"); creds != "" {
		cfg.Gmail.CredentialsPath = creds
	}

	cfg.Realtime.StockAPIURL = v.GetString("realtime.stock_api_url")
	cfg.Realtime.CryptoAPIURL = v.GetString("realtime.crypto_api_url")
	cfg.Realtime.WeatherAPIURL = v.GetString("realtime.weather_api_url")
	cfg.Realtime.Timeout = v.GetDuration("realtime.timeout")

	cfg.Assistant.LLMClassifierEnabled = v.GetBool("assistant.llm_classifier_enabled")
	cfg.Assistant.EmailPageSize = v.GetInt("assistant.email_page_size")
	cfg.Assistant.QATemperature = v.GetFloat64("assistant.qa_temperature")
	cfg.Assistant.QAMaxTokens = v.GetInt("assistant.qa_max_tokens")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	cfg.Scheduler.Enabled = v.GetBool("scheduler.enabled")
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.MorningSummaryTime = v.GetString("scheduler.morning_summary_time")
	cfg.Scheduler.EveningSummaryTime = v.GetString("scheduler.evening_summary_time")
	cfg.Scheduler.EmailCheckInterval = v.GetDuration("scheduler.email_check_interval")
	cfg.Scheduler.TaskCheckInterval = v.GetDuration("scheduler.task_check_interval")
	cfg.Scheduler.MessageRetention = v.GetDuration("scheduler.message_retention")

	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("database.path", "assistant.db")

	v.SetDefault("telegram.process_timeout", "90s")

	v.SetDefault("gmail.enabled", false)
	v.SetDefault("gmail.credentials_path", "credentials.json")
	v.SetDefault("gmail.token_path", "token.json")

	v.SetDefault("realtime.stock_api_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	v.SetDefault("realtime.crypto_api_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("realtime.weather_api_url", "https://wttr.in")
	v.SetDefault("realtime.timeout", "10s")

	v.SetDefault("assistant.llm_classifier_enabled", false)
	v.SetDefault("assistant.email_page_size", 3)
	v.SetDefault("assistant.qa_temperature", 0.7)
	v.SetDefault("assistant.qa_max_tokens", 500)

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "30s")

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.morning_summary_time", "08:00")
	v.SetDefault("scheduler.evening_summary_time", "20:00")
	v.SetDefault("scheduler.email_check_interval", "15m")
	v.SetDefault("scheduler.task_check_interval", "1m")
	v.SetDefault("scheduler.message_retention", "720h")

	v.SetDefault("webhook.rate_limit_per_min", 30)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}
	if c.Assistant.EmailPageSize <= 0 {
		return fmt.Errorf("assistant.email_page_size must be positive")
	}
	if c.Realtime.Timeout <= 0 {
		return fmt.Errorf("realtime.timeout must be positive")
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone: %w", err)
	}
	for _, hhmm := range []string{c.Scheduler.MorningSummaryTime, c.Scheduler.EveningSummaryTime} {
		if _, err := time.Parse("15:04", hhmm); err != nil {
			return fmt.Errorf("scheduler summary time %q must be HH:MM", hhmm)
		}
	}
	return validateLLMConfig(&c.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration. An empty provider list is allowed:
// the assistant then answers open questions with its apology text.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
