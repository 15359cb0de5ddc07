package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"image-relay-api/internal/middleware"
	"image-relay-api/internal/services"
	"image-relay-api/pkg/lambda"
)

// RelayHandler handles image generation requests
type RelayHandler struct {
	relayService services.RelayService
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(relayService services.RelayService) *RelayHandler {
	return &RelayHandler{
		relayService: relayService,
	}
}

// @Summary Generate an image
// @Description Relay a text prompt to the image model and return the first inline image
// @Tags images
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Prompt"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.DetailResponse
// @Router /generate [post]
func (h *RelayHandler) Generate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		logrus.WithField("request_id", c.GetString(middleware.RequestIDKey)).WithError(err).Warn("Failed to read request body")
		c.Data(http.StatusBadRequest, lambda.JSONContentType, promptRequiredBody)
		return
	}

	status, payload := renderOutcome(h.relayService.Generate(c.Request.Context(), body))
	c.Data(status, lambda.JSONContentType, payload)
}

// Fallback relays a POST on any unregistered path and rejects other methods
func (h *RelayHandler) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Data(http.StatusMethodNotAllowed, lambda.JSONContentType, methodNotAllowedBody)
		return
	}
	h.Generate(c)
}

// HandleGenerate is the Lambda counterpart of Generate
func (h *RelayHandler) HandleGenerate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodPost:
	case http.MethodOptions:
		resp := lambda.NewJSONResponse(http.StatusNoContent, nil, req.RequestID)
		for key, value := range corsHeaders() {
			resp.Headers[key] = value
		}
		return resp, nil
	default:
		return lambda.NewJSONResponse(http.StatusMethodNotAllowed, methodNotAllowedBody, req.RequestID), nil
	}

	status, payload := renderOutcome(h.relayService.Generate(ctx, req.Body))
	return lambda.NewJSONResponse(status, payload, req.RequestID), nil
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, X-Correlation-ID",
	}
}
