package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the upstream API key
const APIKeyEnv = "GOOGLE_API_KEY"

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Upstream    UpstreamConfig
	Server      ServerConfig
	Log         LogConfig
}

// UpstreamConfig holds the generative image API configuration
type UpstreamConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	// Timeout bounds a single upstream call. Zero disables the timeout.
	Timeout time.Duration
}

// ServerConfig holds inbound HTTP limits
type ServerConfig struct {
	MaxBodyBytes int64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// MissingKeyError reports a required configuration value that is absent
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s not found in environment variables", e.Key)
}

// RequireAPIKey returns the API key or a *MissingKeyError when it is unset
func (u UpstreamConfig) RequireAPIKey() (string, error) {
	if strings.TrimSpace(u.APIKey) == "" {
		return "", &MissingKeyError{Key: APIKeyEnv}
	}
	return u.APIKey, nil
}

// Load loads configuration from environment variables and an optional .env file.
// A missing API key is not a load error; it is reported per request.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("UPSTREAM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation")
	v.SetDefault("UPSTREAM_TIMEOUT", "60s")
	v.SetDefault("MAX_REQUEST_BODY_BYTES", 1<<20)
	v.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Upstream: UpstreamConfig{
			BaseURL: v.GetString("UPSTREAM_BASE_URL"),
			Model:   v.GetString("IMAGE_MODEL"),
			APIKey:  v.GetString(APIKeyEnv),
			Timeout: timeout,
		},
		Server: ServerConfig{
			MaxBodyBytes: v.GetInt64("MAX_REQUEST_BODY_BYTES"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: GetEnv("LOG_FORMAT", defaultLogFormat(v.GetString("ENVIRONMENT"))),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that must be well-formed at startup
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid UPSTREAM_BASE_URL %q", c.Upstream.BaseURL)
	}

	if c.Upstream.Model == "" {
		return fmt.Errorf("IMAGE_MODEL is required")
	}

	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_BYTES must be positive")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.Log.Format)
	}

	return nil
}

func defaultLogFormat(environment string) string {
	if environment == "production" {
		return "json"
	}
	return "text"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
