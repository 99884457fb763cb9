package model

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped by TransportError when the backend replied
// with a body that does not match the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// ValidationRule names the client-side check that rejected a request.
type ValidationRule int

const (
	RuleURLRequired ValidationRule = iota
	RuleSelectionRequired
	RuleFileRequired
)

// ValidationError is returned before any network call is made.
type ValidationError struct {
	Rule ValidationRule
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleURLRequired:
		return "validation: url is required"
	case RuleSelectionRequired:
		return "validation: select a format or subtitles"
	case RuleFileRequired:
		return "validation: a file is required"
	}
	return "validation failed"
}

// BackendError is a non-2xx response carrying the backend's error string.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// TransportError covers network failures and undecodable responses.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
