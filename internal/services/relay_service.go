package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"image-relay-api/internal/adapters/gemini"
	"image-relay-api/internal/config"
	"image-relay-api/internal/models"
)

// ImageRelayService implements RelayService against an ImageGenerator
type ImageRelayService struct {
	upstream  config.UpstreamConfig
	generator ImageGenerator
	logger    *logrus.Entry
}

// NewImageRelayService creates a new relay service
func NewImageRelayService(upstream config.UpstreamConfig, generator ImageGenerator) *ImageRelayService {
	return &ImageRelayService{
		upstream:  upstream,
		generator: generator,
		logger:    logrus.WithField("component", "relay"),
	}
}

// Generate parses body, calls the upstream at most once and classifies the result
func (s *ImageRelayService) Generate(ctx context.Context, body []byte) *Outcome {
	req, err := models.ParseGenerateRequest(body)
	if err != nil {
		return s.record(failure(OutcomeValidationError, err), 0)
	}

	apiKey, err := s.upstream.RequireAPIKey()
	if err != nil {
		return s.record(failure(OutcomeConfigError, err), len(req.Prompt))
	}

	resp, raw, err := s.generator.GenerateContent(ctx, apiKey, req.Prompt)
	if err != nil {
		if gemini.IsMalformed(err) {
			return s.record(failure(OutcomeShapeError, err), len(req.Prompt))
		}
		return s.record(failure(OutcomeUpstreamError, err), len(req.Prompt))
	}

	image, ok := gemini.ExtractImage(resp)
	if !ok {
		return s.record(failure(OutcomeShapeError, fmt.Errorf("%w. Response: %s", gemini.ErrNoImageData, raw)), len(req.Prompt))
	}

	return s.record(success(&models.GenerateResponse{
		ImageB64: image.Data,
		MimeType: image.MimeType,
	}), len(req.Prompt))
}

// record logs the outcome without prompt text or payloads
func (s *ImageRelayService) record(o *Outcome, promptLength int) *Outcome {
	fields := logrus.Fields{
		"outcome":       o.Kind.String(),
		"status_code":   o.StatusCode(),
		"prompt_length": promptLength,
	}
	if status := gemini.StatusCode(o.Err); status != 0 {
		fields["upstream_status"] = status
	}

	entry := s.logger.WithFields(fields)
	switch o.Kind {
	case OutcomeSuccess:
		entry.WithField("mime_type", o.Image.MimeType).Info("Image relayed")
	case OutcomeValidationError:
		entry.WithError(o.Err).Warn("Rejected generate request")
	case OutcomeShapeError:
		// Raw upstream bodies can hold large payloads
		entry.Error("Upstream response had no usable image")
	default:
		entry.WithError(o.Err).Error("Image relay failed")
	}

	return o
}
