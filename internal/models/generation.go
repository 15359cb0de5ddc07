package models

// PromptRequiredMessage is the fixed 400 message for a missing or empty prompt
const PromptRequiredMessage = "A prompt is required."

// errorDetailPrefix prefixes every 500 detail message
const errorDetailPrefix = "An error occurred: "

// GenerateRequest is the inbound request body
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateResponse carries the relayed image
type GenerateResponse struct {
	ImageB64 string `json:"image_b64"`
	MimeType string `json:"mime_type"`
}

// ErrorResponse is returned for client errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse is returned for server errors
type DetailResponse struct {
	Detail string `json:"detail"`
}

// NewDetailResponse builds a server error body from an error message
func NewDetailResponse(message string) DetailResponse {
	return DetailResponse{Detail: errorDetailPrefix + message}
}

// PromptRequired returns the standard validation error body
func PromptRequired() ErrorResponse {
	return ErrorResponse{Error: PromptRequiredMessage}
}
