package lambda

import (
	"errors"
	"testing"
	"time"

	"image-relay-api/internal/config"
)

func validConfig() (*config.Config, error) {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Upstream: config.UpstreamConfig{
			BaseURL: "http://127.0.0.1:1",
			Model:   "test-model",
			Timeout: time.Second,
		},
		Server: config.ServerConfig{MaxBodyBytes: 1024},
		Log:    config.LogConfig{Level: "error", Format: "json"},
	}, nil
}

func TestConnectionManager_ReusesContainer(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return validConfig()
	})

	if cm.IsInitialized() {
		t.Error("Expected manager to start uninitialized")
	}

	first, err := cm.GetContainer()
	if err != nil {
		t.Fatalf("Failed to get container: %v", err)
	}
	second, err := cm.GetContainer()
	if err != nil {
		t.Fatalf("Failed to get container: %v", err)
	}

	if first != second {
		t.Error("Expected the same container across invocations")
	}
	if loads != 1 {
		t.Errorf("Expected configuration to load once, got %d", loads)
	}
	if cm.LastUsed().IsZero() {
		t.Error("Expected last used time to be set")
	}

	if err := cm.Cleanup(); err != nil {
		t.Errorf("Cleanup failed: %v", err)
	}
	if cm.IsInitialized() {
		t.Error("Expected manager to be uninitialized after cleanup")
	}
}

func TestConnectionManager_RetriesAfterFailure(t *testing.T) {
	attempts := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("parameter store unavailable")
		}
		return validConfig()
	})

	if _, err := cm.GetContainer(); err == nil {
		t.Fatal("Expected first initialization to fail")
	}
	if cm.IsInitialized() {
		t.Error("Failed initialization must not be cached")
	}

	if _, err := cm.GetContainer(); err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}
