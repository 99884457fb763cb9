package dto

import (
	"encoding/json"
	"fmt"

	"github.com/handiism/vidscribe/internal/model"
)

// JSONError is the failure body every endpoint returns on non-2xx.
type JSONError struct {
	Error *string `json:"error"`
}

// DecodeEnvelope splits a response into its success body or a typed failure.
//
// A 2xx response must carry valid JSON. A non-2xx response must carry an
// object with a string "error" field, which becomes a *model.BackendError.
// Any other shape is reported as model.ErrMalformedResponse.
func DecodeEnvelope(status int, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON (status %d)", model.ErrMalformedResponse, status)
	}

	if status >= 200 && status < 300 {
		return json.RawMessage(body), nil
	}

	var je JSONError
	if err := json.Unmarshal(body, &je); err != nil || je.Error == nil {
		return nil, fmt.Errorf("%w: status %d without error message", model.ErrMalformedResponse, status)
	}

	return nil, &model.BackendError{Status: status, Message: *je.Error}
}
