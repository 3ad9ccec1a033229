package errors

import "fmt"

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrInvalidStateTransition indicates a wizard step transition that the
// transition table does not allow
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrStepIncomplete indicates the current step's completion guard is not
// satisfied, so the wizard cannot advance
type ErrStepIncomplete struct {
	Step   string
	Reason string
}

func (e *ErrStepIncomplete) Error() string {
	return fmt.Sprintf("step %s incomplete: %s", e.Step, e.Reason)
}

// ErrInvalidInput indicates a single rejected input value
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrFormInvalid carries the full per-field error map of a failed
// submit-time validation
type ErrFormInvalid struct {
	Fields map[string]string
}

func (e *ErrFormInvalid) Error() string {
	return fmt.Sprintf("form validation failed for %d field(s)", len(e.Fields))
}
