package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultLanguageModel = "gpt-4o-mini"
	defaultAnalystName   = "Analyst"
)

type Config struct {
	Debug               bool
	DryRun              bool
	BotToken            string
	NotificationChatID  string
	OpenAIApiKey        string
	OpenAILanguageModel string
	AnalystName         string
	DbConnectionString  string
}

var config *Config

func GetConfig() *Config {
	if config != nil {
		return config
	}

	// Environment wins over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("unable to load .env file", "error", err)
	}
	config = load()

	return config
}

func load() *Config {
	conf := &Config{}

	// Debug mode
	conf.Debug = isTrue(os.Getenv("NEWS_DEBUG"))
	if conf.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Print to console instead of external services
	conf.DryRun = isTrue(os.Getenv("NEWS_DRY_RUN"))

	// Telegram
	conf.BotToken = os.Getenv("NEWS_TELEGRAM_TOKEN")
	conf.NotificationChatID = os.Getenv("NEWS_TELEGRAM_CHAT_ID")

	// Open AI
	conf.OpenAIApiKey = os.Getenv("NEWS_OPENAI_API_KEY")
	conf.OpenAILanguageModel = os.Getenv("NEWS_OPENAI_LANGUAGE_MODEL")
	if len(conf.OpenAILanguageModel) == 0 {
		conf.OpenAILanguageModel = defaultLanguageModel
	}
	conf.AnalystName = os.Getenv("NEWS_ANALYST_NAME")
	if len(conf.AnalystName) == 0 {
		conf.AnalystName = defaultAnalystName
	}

	// Headline archive
	conf.DbConnectionString = os.Getenv("NEWS_DB_STRING")

	slog.Debug("configuration parameters",
		"NEWS_DEBUG", conf.Debug,
		"NEWS_DRY_RUN", conf.DryRun,
		"NEWS_TELEGRAM_TOKEN", mask(conf.BotToken),
		"NEWS_TELEGRAM_CHAT_ID", conf.NotificationChatID,
		"NEWS_OPENAI_API_KEY", mask(conf.OpenAIApiKey),
		"NEWS_OPENAI_LANGUAGE_MODEL", conf.OpenAILanguageModel,
		"NEWS_ANALYST_NAME", conf.AnalystName,
		"NEWS_DB_STRING", mask(conf.DbConnectionString))

	return conf
}

// TelegramEnabled reports whether both the token and the recipients are set
func (c *Config) TelegramEnabled() bool {
	return len(c.BotToken) > 0 && len(c.NotificationChatID) > 0
}

func (c *Config) AnalystEnabled() bool {
	return len(c.OpenAIApiKey) > 0
}

func (c *Config) ArchiveEnabled() bool {
	return len(c.DbConnectionString) > 0
}

func isTrue(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}

func mask(secret string) string {
	if len(secret) == 0 {
		return ""
	}
	return "***"
}
