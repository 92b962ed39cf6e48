package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	DBPath             string
	CORSOrigins        string
	LogLevel           string
	RateLimitPerMinute int
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		DBPath:             GetEnv("DB_PATH", "./data/votes.db"),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		RateLimitPerMinute: GetEnvInt("RATE_LIMIT_PER_MINUTE", 200),
	}

	if AppConfig.RateLimitPerMinute <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be positive")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt is GetEnv for integer settings. Unparseable values fall back
// to the default.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
