package services

import (
	"context"

	"image-relay-api/internal/adapters/gemini"
)

// RelayService defines the image relay operation shared by every entrypoint
type RelayService interface {
	// Generate relays one raw inbound body and never returns nil
	Generate(ctx context.Context, body []byte) *Outcome
}

// ImageGenerator is the upstream collaborator the relay calls
type ImageGenerator interface {
	GenerateContent(ctx context.Context, apiKey, prompt string) (*gemini.GenerateContentResponse, []byte, error)
}
