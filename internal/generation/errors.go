package generation

import "fmt"

// UnconfiguredError indicates the provider credential is missing. This is a
// deployment problem: no network call is attempted and retrying is pointless.
type UnconfiguredError struct {
	Variable string
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("generator is not configured: missing %s", e.Variable)
}

// ProviderUnavailableError indicates the text-generation provider kept failing
// at the transport level after the bounded retry budget was spent. The caller
// may re-invoke manually once the provider recovers.
type ProviderUnavailableError struct {
	Attempts int
	Cause    error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}

// InvalidOutputError indicates the provider responded but its payload was
// unparsable or violated the response schema. RawOutput carries the provider
// text for diagnostics. Not retried automatically: malformed output is a
// model-quality issue, not a transient fault.
type InvalidOutputError struct {
	Reason    string
	RawOutput string
	Cause     error
}

func (e *InvalidOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid provider output: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid provider output: %s", e.Reason)
}

func (e *InvalidOutputError) Unwrap() error {
	return e.Cause
}
