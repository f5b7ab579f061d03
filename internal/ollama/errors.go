package ollama

import "errors"

// StatusError reports a non-success HTTP status from the upstream.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "ollama error: " + e.Status
	}
	return "ollama error: " + e.Status + ": " + e.Body
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
