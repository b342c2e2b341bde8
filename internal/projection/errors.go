package projection

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; the concrete
// *Error value carries the offending parameter and value.
var (
	// ErrConfiguration marks an invalid or missing configuration parameter.
	// Always raised before any array math runs.
	ErrConfiguration = errors.New("invalid projection configuration")

	// ErrGridGeneration marks invalid point counts or bounds surfacing
	// during grid construction.
	ErrGridGeneration = errors.New("grid generation failed")

	// ErrTransformation marks a coordinate-to-pixel mapping failure, such
	// as a zero-width axis domain.
	ErrTransformation = errors.New("coordinate transformation failed")

	// ErrProcessing wraps a failure inside the forward/backward pipeline,
	// carrying the originating error. Rejected pipeline inputs (empty
	// images, mismatched grids) carry this kind too.
	ErrProcessing = errors.New("projection processing failed")

	// ErrRegistration marks a duplicate registration, an incomplete
	// bundle, or an unknown projection name on lookup.
	ErrRegistration = errors.New("projection registration failed")
)

// Error is a structured projection error: a kind, the parameter or
// coordinate that triggered it, and optionally the underlying cause.
// Message formatting stays here; callers branch on Kind via errors.Is.
type Error struct {
	Kind  error
	Param string
	Value any
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Param != "" {
		msg = fmt.Sprintf("%s: %s=%v", msg, e.Param, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func configErr(param string, value any) error {
	return &Error{Kind: ErrConfiguration, Param: param, Value: value}
}

func gridErr(param string, value any) error {
	return &Error{Kind: ErrGridGeneration, Param: param, Value: value}
}

func transformErr(param string, value any) error {
	return &Error{Kind: ErrTransformation, Param: param, Value: value}
}

func processErr(stage string, err error) error {
	return &Error{Kind: ErrProcessing, Param: "stage", Value: stage, Err: err}
}

func inputErr(param string, value any) error {
	return &Error{Kind: ErrProcessing, Param: param, Value: value}
}

func registrationErr(name string, cause string) error {
	return &Error{Kind: ErrRegistration, Param: "name", Value: name, Err: errors.New(cause)}
}
