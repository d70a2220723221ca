package physics

import "fmt"

// ConstraintError reports a violated physical admissibility bound, such
// as a non-positive mass or a naked-singularity spin/charge combination.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

func constraintf(format string, args ...any) error {
	return &ConstraintError{Message: fmt.Sprintf(format, args...)}
}

// MissingFieldError reports a required input field that was not supplied.
type MissingFieldError struct {
	Field   string
	Message string
}

func (e *MissingFieldError) Error() string { return e.Message }

func missingField(field string) error {
	return &MissingFieldError{
		Field:   field,
		Message: fmt.Sprintf("missing required field %q", field),
	}
}

// UnsupportedMetricError reports a metric_type the tensor solvers cannot
// derive from.
type UnsupportedMetricError struct {
	MetricType string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("unsupported metric type %q", e.MetricType)
}

// InputError reports an input field that is present but not usable as a
// number.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string { return e.Message }
