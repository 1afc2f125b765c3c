package model

// Outcome is the final state of a user-triggered operation
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeCancelled Outcome = "cancelled"
)

// Result is returned by mutations instead of reloading the page
type Result struct {
	Outcome Outcome
	Message string
	// Navigation is the destination of a full form submission, if any
	Navigation *Navigation
}

// Succeeded reports whether the operation succeeded
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// Cancelled reports whether the user declined the confirmation
func (r Result) Cancelled() bool {
	return r.Outcome == OutcomeCancelled
}

// NewSuccess creates a successful result
func NewSuccess(message string) Result {
	return Result{Outcome: OutcomeSuccess, Message: message}
}

// NewFailure creates a failed result
func NewFailure(message string) Result {
	return Result{Outcome: OutcomeFailure, Message: message}
}

// ResultCancelled is the result of a declined confirmation
var ResultCancelled = Result{Outcome: OutcomeCancelled}
