package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"image-relay-api/internal/config"
	"image-relay-api/internal/handlers"
	"image-relay-api/internal/models"
	"image-relay-api/pkg/lambda"
)

// Built on the first invocation and reused while the execution environment is warm
var connections = lambda.NewConnectionManager(config.GetOptimizedConfig)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request
	req, err := lambda.FromAPIGatewayRequest(event)
	if err != nil {
		logrus.WithError(err).Warn("Failed to decode request body")
		return jsonResponse(http.StatusBadRequest, models.PromptRequired(), event.RequestContext.RequestID), nil
	}

	container, err := connections.GetContainer()
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return jsonResponse(http.StatusInternalServerError, models.NewDetailResponse(err.Error()), req.RequestID), nil
	}

	relayHandler := handlers.NewRelayHandler(container.RelayService)

	resp, err := relayHandler.HandleGenerate(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("request_id", req.RequestID).Error("Relay handler failed")
		return jsonResponse(http.StatusInternalServerError, models.NewDetailResponse(err.Error()), req.RequestID), nil
	}

	return resp.ToAPIGatewayResponse(), nil
}

func jsonResponse(status int, body interface{}, requestID string) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		payload = []byte(`{"detail":"An error occurred: failed to encode response"}`)
		status = http.StatusInternalServerError
	}
	return lambda.NewJSONResponse(status, payload, requestID).ToAPIGatewayResponse()
}

func main() {
	awslambda.Start(handler)
}
