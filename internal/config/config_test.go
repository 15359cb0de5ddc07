package config

import (
	"errors"
	"testing"
	"time"
)

var configEnvVars = []string{
	"PORT",
	"ENVIRONMENT",
	"GOOGLE_API_KEY",
	"UPSTREAM_BASE_URL",
	"IMAGE_MODEL",
	"UPSTREAM_TIMEOUT",
	"MAX_REQUEST_BODY_BYTES",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.Port != "8081" {
					t.Errorf("Expected default port 8081, got %s", config.Port)
				}
				if config.Environment != "development" {
					t.Errorf("Expected default environment development, got %s", config.Environment)
				}
				if config.Upstream.BaseURL != "https://generativelanguage.googleapis.com/v1beta" {
					t.Errorf("Unexpected default base URL %s", config.Upstream.BaseURL)
				}
				if config.Upstream.Model != "gemini-2.0-flash-preview-image-generation" {
					t.Errorf("Unexpected default model %s", config.Upstream.Model)
				}
				if config.Upstream.Timeout != 60*time.Second {
					t.Errorf("Expected default timeout 60s, got %v", config.Upstream.Timeout)
				}
				if config.Server.MaxBodyBytes != 1<<20 {
					t.Errorf("Expected default body limit 1MiB, got %d", config.Server.MaxBodyBytes)
				}
				if config.Log.Format != "text" {
					t.Errorf("Expected text log format in development, got %s", config.Log.Format)
				}
				if config.Upstream.APIKey != "" {
					t.Errorf("Expected empty API key, got %q", config.Upstream.APIKey)
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":              "9000",
				"ENVIRONMENT":       "production",
				"GOOGLE_API_KEY":    "secret",
				"UPSTREAM_BASE_URL": "http://localhost:1234/v1",
				"IMAGE_MODEL":       "custom-model",
				"UPSTREAM_TIMEOUT":  "5s",
				"LOG_LEVEL":         "debug",
			},
			check: func(t *testing.T, config *Config) {
				if config.Port != "9000" {
					t.Errorf("Expected port 9000, got %s", config.Port)
				}
				if config.Upstream.APIKey != "secret" {
					t.Errorf("Expected API key secret, got %q", config.Upstream.APIKey)
				}
				if config.Upstream.BaseURL != "http://localhost:1234/v1" {
					t.Errorf("Expected custom base URL, got %s", config.Upstream.BaseURL)
				}
				if config.Upstream.Model != "custom-model" {
					t.Errorf("Expected custom-model, got %s", config.Upstream.Model)
				}
				if config.Upstream.Timeout != 5*time.Second {
					t.Errorf("Expected timeout 5s, got %v", config.Upstream.Timeout)
				}
				if config.Log.Level != "debug" {
					t.Errorf("Expected debug log level, got %s", config.Log.Level)
				}
				if config.Log.Format != "json" {
					t.Errorf("Expected json log format in production, got %s", config.Log.Format)
				}
			},
		},
		{
			name:    "zero timeout disables the deadline",
			envVars: map[string]string{"UPSTREAM_TIMEOUT": "0"},
			check: func(t *testing.T, config *Config) {
				if config.Upstream.Timeout != 0 {
					t.Errorf("Expected zero timeout, got %v", config.Upstream.Timeout)
				}
			},
		},
		{
			name:    "invalid timeout",
			envVars: map[string]string{"UPSTREAM_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "invalid base URL",
			envVars: map[string]string{"UPSTREAM_BASE_URL": "not a url"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			config, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.check(t, config)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		key, err := UpstreamConfig{APIKey: "abc"}.RequireAPIKey()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if key != "abc" {
			t.Errorf("Expected abc, got %s", key)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := UpstreamConfig{}.RequireAPIKey()
		var missing *MissingKeyError
		if !errors.As(err, &missing) {
			t.Fatalf("Expected *MissingKeyError, got %v", err)
		}
		if missing.Key != APIKeyEnv {
			t.Errorf("Expected key %s, got %s", APIKeyEnv, missing.Key)
		}
		if err.Error() != "GOOGLE_API_KEY not found in environment variables" {
			t.Errorf("Unexpected message: %s", err.Error())
		}
	})

	t.Run("blank", func(t *testing.T) {
		if _, err := (UpstreamConfig{APIKey: "   "}).RequireAPIKey(); err == nil {
			t.Error("Expected blank key to be rejected")
		}
	})
}

func TestAdaptConfigForServerless(t *testing.T) {
	base := func() *Config {
		return &Config{Environment: "development", Log: LogConfig{Level: "info", Format: "text"}}
	}

	t.Run("server mode unchanged", func(t *testing.T) {
		config := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: false})
		if config.Log.Format != "text" {
			t.Errorf("Expected text format, got %s", config.Log.Format)
		}
	})

	t.Run("lambda forces json logs", func(t *testing.T) {
		config := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: true, Stage: "dev"})
		if config.Log.Format != "json" {
			t.Errorf("Expected json format, got %s", config.Log.Format)
		}
		if config.Environment != "development" {
			t.Errorf("Expected development, got %s", config.Environment)
		}
	})

	t.Run("prod stage promotes environment", func(t *testing.T) {
		config := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: true, Stage: "prod"})
		if config.Environment != "production" {
			t.Errorf("Expected production, got %s", config.Environment)
		}
	})
}

func TestConfigureLogging(t *testing.T) {
	if err := ConfigureLogging(LogConfig{Level: "warn", Format: "json"}); err != nil {
		t.Fatalf("ConfigureLogging failed: %v", err)
	}
	if err := ConfigureLogging(LogConfig{Level: "nope", Format: "text"}); err == nil {
		t.Error("Expected error for invalid level")
	}
	if err := ConfigureLogging(LogConfig{Level: "info", Format: "text"}); err != nil {
		t.Fatalf("ConfigureLogging failed: %v", err)
	}
}
