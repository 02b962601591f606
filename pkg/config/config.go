package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	Environment     string
	SheetsAPIURL    string
	SheetsAPIKey    string
	SyncTimeout     time.Duration
	BaseCurrency    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		SheetsAPIURL:    getEnv("SHEETS_API_URL", ""),
		SheetsAPIKey:    getEnv("SHEETS_API_KEY", ""),
		SyncTimeout:     time.Duration(getEnvAsInt64("SYNC_TIMEOUT_SECONDS", 5)) * time.Second,
		BaseCurrency:    getEnv("BASE_CURRENCY", "USD"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
