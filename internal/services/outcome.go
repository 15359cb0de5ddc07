package services

import (
	"net/http"

	"image-relay-api/internal/models"
)

// OutcomeKind identifies which branch a relay invocation ended in
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidationError
	OutcomeConfigError
	OutcomeUpstreamError
	OutcomeShapeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationError:
		return "validation_error"
	case OutcomeConfigError:
		return "config_error"
	case OutcomeUpstreamError:
		return "upstream_error"
	case OutcomeShapeError:
		return "shape_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one relay invocation.
// Image is set only for OutcomeSuccess; Err is set for every other kind.
type Outcome struct {
	Kind  OutcomeKind
	Image *models.GenerateResponse
	Err   error
}

// StatusCode maps the outcome to its HTTP status
func (o *Outcome) StatusCode() int {
	switch o.Kind {
	case OutcomeSuccess:
		return http.StatusOK
	case OutcomeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Body returns the JSON body for the outcome
func (o *Outcome) Body() interface{} {
	switch o.Kind {
	case OutcomeSuccess:
		return o.Image
	case OutcomeValidationError:
		return models.PromptRequired()
	default:
		message := "unknown error"
		if o.Err != nil {
			message = o.Err.Error()
		}
		return models.NewDetailResponse(message)
	}
}

func success(image *models.GenerateResponse) *Outcome {
	return &Outcome{Kind: OutcomeSuccess, Image: image}
}

func failure(kind OutcomeKind, err error) *Outcome {
	return &Outcome{Kind: kind, Err: err}
}
