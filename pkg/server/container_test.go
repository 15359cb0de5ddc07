package server

import (
	"context"
	"testing"
	"time"

	"image-relay-api/internal/config"
	"image-relay-api/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Upstream: config.UpstreamConfig{
			BaseURL: "http://127.0.0.1:1",
			Model:   "test-model",
			Timeout: time.Second,
		},
		Server: config.ServerConfig{MaxBodyBytes: 1024},
		Log:    config.LogConfig{Level: "error", Format: "text"},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container == nil {
		t.Fatal("Container is nil")
	}
	if container.RelayService == nil {
		t.Error("RelayService is nil")
	}
	if container.Config.Upstream.Model != "test-model" {
		t.Errorf("Expected model test-model, got %s", container.Config.Upstream.Model)
	}

	// Test cleanup
	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainer_NilConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Error("Expected error for nil configuration")
	}
}

func TestNewContainer_InvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "loud"

	if _, err := NewContainer(cfg); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

// TestContainerRelayService checks the wired service classifies a missing key
// without reaching the upstream
func TestContainerRelayService(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	outcome := container.RelayService.Generate(context.Background(), []byte(`{"prompt":"a cat"}`))
	if outcome.Kind != services.OutcomeConfigError {
		t.Errorf("Expected config error, got %s", outcome.Kind)
	}
}
