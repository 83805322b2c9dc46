package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	MediaRoot   string
	// PageSize is the fixed number of posts per feed page.
	PageSize int
	// PostPreviewLen is the character count posts are truncated to for
	// their short textual representation.
	PostPreviewLen int
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		PostgresURL:    getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretjwtkey"),
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		PageSize:       getEnvInt("PAGE_SIZE", 10),
		PostPreviewLen: getEnvInt("POST_PREVIEW_LEN", 15),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		logrus.Warnf("Invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}
