package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	GoogleAPIKey string
	GeminiModel  string

	EmailServiceURL string
	AlertEmail      string
	AlertDelivery   string // sync | deferred

	TelegramBotToken    string
	AlertTelegramChatID string

	DatabaseURL string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load читает конфигурацию один раз на старте. Обязателен только ключ движка,
// пустые настройки алертов и БД просто выключают соответствующие каналы.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		GoogleAPIKey: mustEnv("GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL_NAME", "gemini-1.5-flash"),

		EmailServiceURL: os.Getenv("EMAIL_SERVICE_URL"),
		AlertEmail:      os.Getenv("ALERT_EMAIL"),
		AlertDelivery:   getEnv("ALERT_DELIVERY", "deferred"),

		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		AlertTelegramChatID: os.Getenv("ALERT_TELEGRAM_CHAT_ID"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
