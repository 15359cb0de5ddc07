package handlers

import (
	"encoding/json"
	"net/http"

	"image-relay-api/internal/models"
	"image-relay-api/internal/services"
)

// MethodNotAllowedMessage is returned for any method other than POST
const MethodNotAllowedMessage = "Method not allowed"

var methodNotAllowedBody = mustMarshal(models.ErrorResponse{Error: MethodNotAllowedMessage})

var promptRequiredBody = mustMarshal(models.PromptRequired())

// renderOutcome maps a relay outcome to its status code and JSON body.
// Both the gin and the Lambda entrypoints write exactly these bytes.
func renderOutcome(outcome *services.Outcome) (int, []byte) {
	body, err := json.Marshal(outcome.Body())
	if err != nil {
		return http.StatusInternalServerError, mustMarshal(models.NewDetailResponse(err.Error()))
	}
	return outcome.StatusCode(), body
}

func mustMarshal(v interface{}) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return body
}
