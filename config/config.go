package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// SlackToken authenticates every Web API call and the RTM connection.
	SlackToken string

	// SlackChannel is the name of the channel polls are posted to.
	SlackChannel string

	// VoteTimeout is how long each poll stays open.
	VoteTimeout time.Duration

	// Debug enables verbose event logging.
	Debug bool
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	slackToken, err := getEnvRequired("SLACK_TOKEN")
	if err != nil {
		return nil, err
	}

	voteTimeout, err := ParseTimeout(getEnvWithDefault("VOTE_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid VOTE_TIMEOUT: %w", err)
	}

	return &AppConfig{
		SlackToken:   slackToken,
		SlackChannel: getEnvWithDefault("SLACK_CHANNEL", "random"),
		VoteTimeout:  voteTimeout,
		Debug:        os.Getenv("DEBUG") != "",
	}, nil
}

// ParseTimeout reads a poll duration. Both Go duration strings ("90s", "5m")
// and bare integers (seconds, the legacy deployment convention) are accepted.
func ParseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %d", seconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", timeout)
	}
	return timeout, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
