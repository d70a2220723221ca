package engine

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spacetimeops/relativity/physics"
)

// ErrorKind classifies a calculation failure. Classification is typed
// rather than message-substring based so the HTTP mapping cannot be
// broken by rewording a message.
type ErrorKind int

const (
	// KindMissingField: the request omitted type, inputs, or a required
	// input field.
	KindMissingField ErrorKind = iota
	// KindUnsupportedType: no validator/solver pair exists for the type.
	KindUnsupportedType
	// KindConstraintViolation: inputs are physically inadmissible.
	KindConstraintViolation
	// KindUnimplemented: an advertised type whose solver is a stub was
	// rejected by a caller that refuses stub results.
	KindUnimplemented
	// KindInternal: anything else, e.g. a solver producing NaN/Inf.
	KindInternal
)

// String returns the wire name of the kind, used as error_type in
// server-error response bodies.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindUnsupportedType:
		return "unsupported_calculation_type"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindUnimplemented:
		return "unimplemented_calculation"
	default:
		return "internal_error"
	}
}

// HTTPStatus maps the kind to its boundary status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindMissingField, KindUnsupportedType, KindConstraintViolation:
		return http.StatusBadRequest
	case KindUnimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed failure every engine operation returns.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Classify converts any failure into a typed *Error, passing through
// errors that are already classified. Each failure is classified exactly
// once, at the boundary that receives it.
func Classify(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	var constraint *physics.ConstraintError
	if errors.As(err, &constraint) {
		return &Error{Kind: KindConstraintViolation, Message: constraint.Message}
	}

	var missing *physics.MissingFieldError
	if errors.As(err, &missing) {
		return &Error{Kind: KindMissingField, Message: missing.Message}
	}

	var unsupportedMetric *physics.UnsupportedMetricError
	if errors.As(err, &unsupportedMetric) {
		return &Error{Kind: KindUnsupportedType, Message: unsupportedMetric.Error()}
	}

	var input *physics.InputError
	if errors.As(err, &input) {
		return &Error{Kind: KindMissingField, Message: input.Message}
	}

	return &Error{Kind: KindInternal, Message: err.Error()}
}
