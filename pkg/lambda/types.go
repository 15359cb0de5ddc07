package lambda

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// JSONContentType matches the content type gin writes for JSON bodies
const JSONContentType = "application/json; charset=utf-8"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// NewJSONResponse builds a response with a JSON content type
func NewJSONResponse(statusCode int, body []byte, requestID string) *Response {
	headers := map[string]string{"Content-Type": JSONContentType}
	if requestID != "" {
		headers["X-Request-ID"] = requestID
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}
}

// FromAPIGatewayRequest converts an API Gateway proxy event to a generic request.
// Base64-encoded bodies are decoded; a malformed encoding is an error.
func FromAPIGatewayRequest(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = decoded
	}

	requestID := event.Headers["X-Request-ID"]
	if requestID == "" {
		requestID = event.RequestContext.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   requestID,
	}, nil
}

// ToAPIGatewayResponse converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGatewayResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
