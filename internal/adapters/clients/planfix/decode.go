package planfix

import (
	"encoding/json"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// decodeEnvelope interprets a Planfix response body. The body is accepted as
// T when it decodes and validates; otherwise it is tried as an error envelope
// and returned as *APIError. A body that fits neither yields *ShapeError.
// The HTTP status is informational only: Planfix sends error envelopes with
// both 200 and 4xx statuses.
func decodeEnvelope[T any](op string, status int, body []byte) (*T, error) {
	out := new(T)
	successErr := json.Unmarshal(body, out)
	if successErr == nil {
		successErr = schema.Validate(out)
	}
	if successErr == nil {
		return out, nil
	}

	var env schema.ErrorResponse
	errorErr := json.Unmarshal(body, &env)
	if errorErr == nil {
		errorErr = schema.Validate(&env)
	}
	if errorErr == nil {
		return nil, newAPIError(op, status, &env)
	}

	return nil, &ShapeError{
		Operation:  op,
		Status:     status,
		SuccessErr: successErr,
		ErrorErr:   errorErr,
	}
}
