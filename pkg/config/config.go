package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API    APIConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	// AccessToken is a bearer token issued by the identity provider.
	// Empty means the client runs unauthenticated until login.
	AccessToken string
	// TokenFile is where the login command persists the token.
	TokenFile string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables may be set directly

	timeoutSec, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT", "30"))

	baseURL := getEnv("REST_API_BASE_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("REST_API_BASE_URL is not set")
	}

	tokenFile := getEnv("ACCESS_TOKEN_FILE", defaultTokenFile())

	token := getEnv("ACCESS_TOKEN", "")
	if token == "" {
		// Fall back to the token persisted by a previous login.
		if data, err := os.ReadFile(tokenFile); err == nil {
			token = strings.TrimSpace(string(data))
		}
	}

	return &Config{
		API: APIConfig{
			BaseURL: baseURL,
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		Auth: AuthConfig{
			AccessToken: token,
			TokenFile:   tokenFile,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trackwallet-token"
	}
	return filepath.Join(home, ".trackwallet", "token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
