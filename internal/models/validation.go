package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest marks an inbound body that cannot be relayed
var ErrInvalidRequest = errors.New("invalid generate request")

var validate = validator.New()

// ParseGenerateRequest decodes and validates an inbound request body.
// Every failure wraps ErrInvalidRequest.
func ParseGenerateRequest(body []byte) (*GenerateRequest, error) {
	var req GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidRequest, err)
	}

	if err := validate.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return nil, fmt.Errorf("%w: %s failed on %s", ErrInvalidRequest, validationErrors[0].Field(), validationErrors[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return &req, nil
}
