package gemini

import (
	"errors"
	"fmt"
	"net/http"
)

// Common upstream error types
var (
	ErrUnexpectedStatus  = errors.New("unexpected upstream status")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrNoImageData       = errors.New("API response did not contain image data")
)

// UpstreamError represents a failed upstream call with additional context
type UpstreamError struct {
	Op         string // Operation that failed (e.g., "send", "read", "decode")
	StatusCode int    // HTTP status, zero when no response was received
	Body       string // Raw upstream body, if any
	Err        error  // Underlying error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && errors.Is(e.Err, ErrUnexpectedStatus):
		return fmt.Sprintf("upstream returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	case e.Body != "":
		return fmt.Sprintf("upstream %s failed: %v. Response: %s", e.Op, e.Err, e.Body)
	default:
		return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(op string, statusCode int, body string, err error) *UpstreamError {
	return &UpstreamError{
		Op:         op,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// IsStatusError returns true if the upstream answered with a non-2xx status
func IsStatusError(err error) bool {
	return errors.Is(err, ErrUnexpectedStatus)
}

// IsMalformed returns true if a 2xx upstream body could not be decoded
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// StatusCode returns the upstream HTTP status carried by err, or zero
func StatusCode(err error) int {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}
	return 0
}
