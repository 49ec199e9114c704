package questiongen

import "fmt"

// Validator checks a candidate question before it is admitted to a set.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in error
	// messages and logging.
	Name() string

	// Validate returns nil if the candidate passes, or a ValidationError
	// describing the failure. Failing candidates are dropped, not fatal.
	Validate(raw RawQuestion) *ValidationError
}

// ValidationError describes why a candidate question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// InsufficientQuestionsError reports that too few candidates survived
// validation to assemble the requested set. The caller decides whether
// to retry with a different provider or abort.
type InsufficientQuestionsError struct {
	Requested int
	Received  int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("insufficient questions: requested %d, %d usable after validation", e.Requested, e.Received)
}
