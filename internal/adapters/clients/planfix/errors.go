package planfix

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("planfix: api error")

	// ErrShapeMismatch matches every *ShapeError.
	ErrShapeMismatch = errors.New("planfix: response matches neither the success nor the error shape")
)

// APIError is an error envelope returned by Planfix.
type APIError struct {
	Operation string
	Status    int
	Result    string
	Code      int
	Message   string
}

func newAPIError(op string, status int, env *schema.ErrorResponse) *APIError {
	e := &APIError{
		Operation: op,
		Status:    status,
		Result:    env.Result,
		Code:      *env.Code,
	}
	if env.Error != nil {
		e.Message = *env.Error
	}
	return e
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("planfix %s: api error code %d (result %q)", e.Operation, e.Code, e.Result)
	}
	return fmt.Sprintf("planfix %s: api error code %d: %s", e.Operation, e.Code, e.Message)
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// ShapeError reports a response body that satisfied neither the expected
// success shape nor the error shape.
type ShapeError struct {
	Operation string
	Status    int
	// SuccessErr is why the body was rejected as a success payload.
	SuccessErr error
	// ErrorErr is why the body was rejected as an error envelope.
	ErrorErr error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("planfix %s: unexpected response (HTTP %d): success shape: %v; error shape: %v",
		e.Operation, e.Status, e.SuccessErr, e.ErrorErr)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Unwrap returns the success-shape failure.
func (e *ShapeError) Unwrap() error {
	return e.SuccessErr
}
