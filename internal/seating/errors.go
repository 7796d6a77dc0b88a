// Package seating implements the seating allocation engine: a pure,
// deterministic transformation from an exam session's registrations and a
// hall configuration to a numbered seating plan.  The engine performs no
// I/O; reading rosters and persisting plans belong to the roster and
// repository packages.
package seating

import "fmt"

// ConfigurationError reports a Config that cannot be allocated against:
// a non-positive field or an odd hall capacity.  It is always detected
// before any allocation work starts.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid allocation config: " + e.Reason
}

// SchemaError reports a registration record missing a required field.
// Upstream normalization owns schema integrity, but the engine re-validates
// before trusting field access since it is the last line of defense before
// an allocation decision silently uses a blank value.
type SchemaError struct {
	Field      string
	RegisterNo int64
}

func (e *SchemaError) Error() string {
	if e.RegisterNo != 0 {
		return fmt.Sprintf("registration %d: missing required field %q", e.RegisterNo, e.Field)
	}
	return fmt.Sprintf("registration: missing required field %q", e.Field)
}

// AllocationInfeasible reports that a student could not be placed because
// every hall is either full or at its per-subject cap for that student's
// subject.  Allocation is all-or-nothing: nothing is committed when this
// error is returned.  The two exhaustion causes are deliberately not
// distinguished for callers, only in diagnostics text.
type AllocationInfeasible struct {
	SubjectCode string
}

func (e *AllocationInfeasible) Error() string {
	return fmt.Sprintf("cannot allocate subject %s; constraints too strict", e.SubjectCode)
}
