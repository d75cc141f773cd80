package rendering

import "fmt"

// MissingInputError indicates the caller supplied no portfolio data. This is a
// caller programming error: it is rejected before the rendering engine is
// launched.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// EngineError indicates a failure inside the rendering engine (launch,
// content load, or screenshot). Engine resources are always released before
// this error is surfaced.
type EngineError struct {
	Stage string
	Cause error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("rendering engine failed during %s: %v", e.Stage, e.Cause)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}
