package chat

import (
	"errors"
	"net/http"
	"strconv"
)

// invalidRequestError signals a request rejected before any upstream call.
type invalidRequestError struct{ msg string }

func (e invalidRequestError) Error() string   { return e.msg }
func (e invalidRequestError) StatusCode() int { return http.StatusBadRequest }

// ErrInvalidRequest constructs an invalid-request error.
func ErrInvalidRequest(msg string) error { return invalidRequestError{msg: msg} }

// IsInvalidRequest reports whether err rejects the request as malformed.
func IsInvalidRequest(err error) bool {
	var e invalidRequestError
	return errors.As(err, &e)
}

// modelNotAllowedError names a model outside the allow-list.
type modelNotAllowedError struct{ model string }

func (e modelNotAllowedError) Error() string   { return "Model '" + e.model + "' not allowed." }
func (e modelNotAllowedError) StatusCode() int { return http.StatusBadRequest }

// ErrModelNotAllowed constructs a model-not-allowed error.
func ErrModelNotAllowed(model string) error { return modelNotAllowedError{model: model} }

// IsModelNotAllowed reports whether err rejects the requested model.
func IsModelNotAllowed(err error) bool {
	var e modelNotAllowedError
	return errors.As(err, &e)
}

// upstreamUnavailableError is returned once every attempt has failed.
// It wraps the last attempt's error.
type upstreamUnavailableError struct {
	attempts int
	last     error
}

func (e upstreamUnavailableError) Error() string {
	msg := "<nil>"
	if e.last != nil {
		msg = e.last.Error()
	}
	return "LLM failed after retries: " + msg
}

func (e upstreamUnavailableError) StatusCode() int { return http.StatusInternalServerError }
func (e upstreamUnavailableError) Unwrap() error   { return e.last }

// ErrUpstreamUnavailable constructs an exhaustion error.
func ErrUpstreamUnavailable(attempts int, last error) error {
	return upstreamUnavailableError{attempts: attempts, last: last}
}

// IsUpstreamUnavailable reports whether err means all attempts failed.
func IsUpstreamUnavailable(err error) bool {
	var e upstreamUnavailableError
	return errors.As(err, &e)
}

// Attempts returns how many upstream attempts preceded err, or 0.
func Attempts(err error) int {
	var e upstreamUnavailableError
	if errors.As(err, &e) {
		return e.attempts
	}
	return 0
}

func attemptLabel(attempt, max int) string {
	return strconv.Itoa(attempt) + "/" + strconv.Itoa(max)
}
