package lambda

import (
	"fmt"
	"sync"
	"time"

	"image-relay-api/internal/config"
	"image-relay-api/pkg/server"
)

// ConfigLoader loads the configuration for a cold start
type ConfigLoader func() (*config.Config, error)

// ConnectionManager builds the service container once per Lambda execution
// environment and reuses it across warm invocations
type ConnectionManager struct {
	loader    ConfigLoader
	container *server.Container
	lastUsed  time.Time
	mu        sync.Mutex
}

// NewConnectionManager creates a connection manager that loads configuration with loader
func NewConnectionManager(loader ConfigLoader) *ConnectionManager {
	if loader == nil {
		loader = config.GetOptimizedConfig
	}
	return &ConnectionManager{loader: loader}
}

// GetContainer returns the service container, initializing it if necessary.
// A failed initialization is not cached, so the next invocation retries it.
func (cm *ConnectionManager) GetContainer() (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		cm.lastUsed = time.Now()
		return cm.container, nil
	}

	cfg, err := cm.loader()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	cm.container = container
	cm.lastUsed = time.Now()
	return container, nil
}

// IsInitialized reports whether a container is cached
func (cm *ConnectionManager) IsInitialized() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.container != nil
}

// LastUsed returns when the cached container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.lastUsed
}

// Cleanup releases the cached container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	return err
}
