package session

import "fmt"

// InvalidStateError reports an operation attempted in a state that does
// not permit it, or with an out-of-range question index.
type InvalidStateError struct {
	Op     string
	Status Status
	Msg    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %s: %s", e.Op, e.Status, e.Msg)
}

// IncompleteSessionError reports a Finish attempt while questions are
// still unanswered. Skipped questions need an explicit empty answer.
type IncompleteSessionError struct {
	Unanswered []int
}

func (e *IncompleteSessionError) Error() string {
	return fmt.Sprintf("cannot finish: %d questions unanswered", len(e.Unanswered))
}
