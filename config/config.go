package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Admin    AdminConfig
	Rates    RatesConfig
	Images   ImagesConfig
	Telegram TelegramConfig
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Addr string
}

// AdminConfig holds the allowlist of privileged user IDs (ADMIN_IDS,
// comma-separated). Every admin-only service function consults it.
type AdminConfig struct {
	IDs []string
}

func (c AdminConfig) IsAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

type RatesConfig struct {
	URL     string
	TTL     time.Duration
	Timeout time.Duration
}

type ImagesConfig struct {
	Dir string
}

type TelegramConfig struct {
	Token       string
	AdminChatID int64 // chat that receives order / access-request notifications
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	ttlMin, _ := strconv.Atoi(getEnv("RATES_TTL_MINUTES", "60"))
	timeoutSec, _ := strconv.Atoi(getEnv("RATES_TIMEOUT_SECONDS", "5"))
	chatID, _ := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "menuboard"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Admin: AdminConfig{
			IDs: splitIDs(os.Getenv("ADMIN_IDS")),
		},
		Rates: RatesConfig{
			URL:     getEnv("RATES_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
			TTL:     time.Duration(ttlMin) * time.Minute,
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		Images: ImagesConfig{
			Dir: getEnv("IMAGE_DIR", "images"),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TOKEN", ""),
			AdminChatID: chatID,
		},
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
