package server

import (
	"fmt"

	"image-relay-api/internal/adapters/gemini"
	"image-relay-api/internal/config"
	"image-relay-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	RelayService services.RelayService

	// Internal dependencies
	upstream *gemini.Client
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if err := config.ConfigureLogging(cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	upstream := gemini.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Model, cfg.Upstream.Timeout)

	serviceContainer, err := services.NewServiceContainer(cfg.Upstream, upstream)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	container := &Container{
		Config:       cfg,
		RelayService: serviceContainer.RelayService,
		upstream:     upstream,
		services:     serviceContainer,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.upstream != nil {
		c.upstream.CloseIdleConnections()
	}
	return nil
}
