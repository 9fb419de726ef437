package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// The original tool identifies itself as a desktop Chrome; some sites serve
// stripped markup to anything else.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/124.0.0.0 Safari/537.36"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Fetcher   FetcherConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// FetcherConfig holds page retrieval configuration
type FetcherConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// RateLimitConfig holds per-client request throttling configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// New creates a new Config with values from environment variables
func New() (*Config, error) {
	port := getEnv("PORT", "8080")

	readTimeout, err := strconv.Atoi(getEnv("READ_TIMEOUT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := strconv.Atoi(getEnv("WRITE_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	fetchTimeout, err := strconv.Atoi(getEnv("FETCH_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:            port,
			ReadTimeout:     time.Duration(readTimeout) * time.Second,
			WriteTimeout:    time.Duration(writeTimeout) * time.Second,
			ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
		},
		Fetcher: FetcherConfig{
			Timeout:   time.Duration(fetchTimeout) * time.Second,
			UserAgent: getEnv("USER_AGENT", defaultUserAgent),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
