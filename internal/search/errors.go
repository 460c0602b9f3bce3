package search

import (
	"errors"
	"net/http"
	"strings"
)

const genericFetchError = "Error occured when fetching mileages. Please try again."

var ErrMalformedUpstreamResponse = errors.New("malformed upstream response")

// AppError carries the HTTP status and the caller-facing messages. Err holds
// the underlying cause for logs only.
type AppError struct {
	Status   int
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newValidationError(messages []string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Messages: messages}
}

func newUpstreamError(err error) *AppError {
	return &AppError{
		Status:   http.StatusInternalServerError,
		Messages: []string{genericFetchError},
		Err:      err,
	}
}
