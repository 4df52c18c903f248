package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Vision model API configuration
	APIBaseURL string
	APIKey     string

	// Object storage configuration
	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string
	S3BucketName   string

	// Redis configuration (rate limiting)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration (optional bearer auth)
	JWTSecret string
}

// New creates a Config instance from environment variables. Missing
// service credentials are not an error here; the corresponding call
// fails when it is made.
func New() *Config {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		APIBaseURL:     getEnv("API_BASE_URL", "https://api.openai.com/v1"),
		APIKey:         os.Getenv("API_KEY"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3BucketName:   os.Getenv("S3_BUCKET_NAME"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}

	if cfg.APIKey == "" {
		if keyFile := os.Getenv("API_KEY_FILE"); keyFile != "" {
			if data, err := os.ReadFile(keyFile); err == nil {
				cfg.APIKey = strings.TrimSpace(string(data))
			}
		}
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
