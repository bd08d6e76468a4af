package pipeline

import "github.com/KeisukeTTTT/estate-management/internal/validation"

// State is a step of one mutation. REJECTED, FAILED and COMMITTED are terminal.
type State string

const (
	StateReceived   State = "RECEIVED"
	StateValidating State = "VALIDATING"
	StateResolving  State = "RESOLVING"
	StatePersisting State = "PERSISTING"
	StateRejected   State = "REJECTED"
	StateFailed     State = "FAILED"
	StateCommitted  State = "COMMITTED"
)

func (s State) Terminal() bool {
	return s == StateRejected || s == StateFailed || s == StateCommitted
}

const (
	MessageRejected = "There are errors in the input."
	MessageFailed   = "Failed to save to the database."
)

// Result is what the caller of a form submission sees.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

// Outcome is the terminal state of one run. RedirectTo is set only for a
// committed mutation whose policy is Redirect.
type Outcome struct {
	State      State
	Result     Result
	RedirectTo string
	EntityID   string
}

func rejected(errs validation.FieldErrors) Outcome {
	return Outcome{
		State:  StateRejected,
		Result: Result{Success: false, Message: MessageRejected, Errors: errs},
	}
}

func failed() Outcome {
	return Outcome{
		State:  StateFailed,
		Result: Result{Success: false, Message: MessageFailed, Errors: validation.FieldErrors{}},
	}
}
