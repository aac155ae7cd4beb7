package thread

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid thread parameter")
	// ErrGeometry is matched by every *GeometryError.
	ErrGeometry = errors.New("thread geometry construction failed")
	// ErrMetricsOnly is returned when geometry is requested from a
	// Result built from a Simple spec.
	ErrMetricsOnly = errors.New("thread result carries metrics only")
)

// ParameterError reports an input rejected before any geometry is built.
type ParameterError struct {
	Field string      // offending field
	Value interface{} // value received
	Legal string      // description of the legal values
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("thread: invalid %s %v, must be %s", e.Field, e.Value, e.Legal)
}

// Is makes errors.Is(err, ErrInvalidParameter) true.
func (e *ParameterError) Is(target error) bool { return target == ErrInvalidParameter }

func paramErr(field string, value interface{}, legal string) error {
	return &ParameterError{Field: field, Value: value, Legal: legal}
}

// GeometryError reports a failure while constructing the thread solid.
type GeometryError struct {
	Op  string // construction step: "profile", "loop", "chain", "finish"
	Err error
}

func (e *GeometryError) Error() string {
	if e.Err == nil {
		return "thread: " + e.Op + " failed"
	}
	return "thread: " + e.Op + ": " + e.Err.Error()
}

func (e *GeometryError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGeometry) true.
func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

func geomErr(op string, err error) error {
	return &GeometryError{Op: op, Err: err}
}
