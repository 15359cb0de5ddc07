package services

import (
	"fmt"

	"image-relay-api/internal/config"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	RelayService RelayService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(upstream config.UpstreamConfig, generator ImageGenerator) (*ServiceContainer, error) {
	if generator == nil {
		return nil, fmt.Errorf("image generator cannot be nil")
	}

	return &ServiceContainer{
		RelayService: NewImageRelayService(upstream, generator),
	}, nil
}
