package model

import (
	"encoding/json"
	"errors"
)

// OutcomeKind classifies how a dispatcher operation resolved.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidation
	OutcomeBackend
	OutcomeTransport
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidation:
		return "validation"
	case OutcomeBackend:
		return "backend"
	case OutcomeTransport:
		return "transport"
	}
	return "unknown"
}

// Outcome is the resolved result of one user action.
type Outcome struct {
	Kind OutcomeKind

	// Message is the user-facing notification text.
	Message string

	// Data is the raw success body, nil on failure.
	Data json.RawMessage

	// Err is the underlying error, nil on success.
	Err error
}

// OK returns true for a successful outcome.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// KindOf classifies err into an OutcomeKind.
// Errors that are not one of the typed errors count as transport failures.
func KindOf(err error) OutcomeKind {
	if err == nil {
		return OutcomeSuccess
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return OutcomeValidation
	}
	var be *BackendError
	if errors.As(err, &be) {
		return OutcomeBackend
	}
	return OutcomeTransport
}
