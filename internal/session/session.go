package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/nmehta/pharmaquiz/internal/quiz"
)

// Status is the lifecycle state of a quiz session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Session is one attempt at a question set, from start to completion.
// It is manipulated by a single control flow; no internal locking.
type Session struct {
	id        string
	params    quiz.Parameters
	questions quiz.QuestionSet
	answers   []*quiz.Answer

	status  Status
	current int
	// visited is the highest index the session has navigated to. Answers
	// may only target visited questions.
	visited int

	startedAt   time.Time
	completedAt time.Time
}

// New creates a session over the given question set in the NotStarted
// state.
func New(params quiz.Parameters, questions quiz.QuestionSet) *Session {
	return &Session{
		id:        uuid.NewString(),
		params:    params,
		questions: questions,
		answers:   make([]*quiz.Answer, len(questions)),
		status:    StatusNotStarted,
	}
}

// Start moves the session to InProgress and places the cursor on the
// first question.
func (s *Session) Start() error {
	if s.status != StatusNotStarted {
		return &InvalidStateError{Op: "start", Status: s.status, Msg: "session already started"}
	}
	if len(s.questions) == 0 {
		return &InvalidStateError{Op: "start", Status: s.status, Msg: "question set is empty"}
	}
	s.status = StatusInProgress
	s.current = 0
	s.visited = 0
	s.startedAt = time.Now()
	return nil
}

// SubmitAnswer records an answer for the question at index and returns
// whether it was correct. Only the current or a previously visited
// question may be answered; re-answering overwrites the prior answer.
// An empty selection is a valid answer and marks the question skipped.
func (s *Session) SubmitAnswer(index int, selection []int) (bool, error) {
	if s.status != StatusInProgress {
		return false, &InvalidStateError{Op: "submit answer", Status: s.status, Msg: "session is not in progress"}
	}
	if index < 0 || index > s.visited {
		return false, &InvalidStateError{Op: "submit answer", Status: s.status, Msg: "question index out of range"}
	}

	q := s.questions[index]
	a := quiz.NewAnswer(q, selection, time.Now())
	s.answers[index] = &a
	// Judge the normalized selection so the verdict here matches what
	// scoring later recomputes from the stored answer.
	return quiz.CheckAnswer(q, a.Selected), nil
}

// Advance moves the cursor one question forward, clamped at the last
// question. A no-op at the boundary.
func (s *Session) Advance() {
	if s.status != StatusInProgress {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		if s.current > s.visited {
			s.visited = s.current
		}
	}
}

// Retreat moves the cursor one question back, clamped at the first
// question.
func (s *Session) Retreat() {
	if s.status != StatusInProgress {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Finish moves the session to Completed. Every question must carry a
// recorded answer, including explicit empty answers for skips.
func (s *Session) Finish() error {
	if s.status != StatusInProgress {
		return &InvalidStateError{Op: "finish", Status: s.status, Msg: "session is not in progress"}
	}
	var missing []int
	for i, a := range s.answers {
		if a == nil {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return &IncompleteSessionError{Unanswered: missing}
	}
	s.status = StatusCompleted
	s.completedAt = time.Now()
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Parameters returns the quiz parameters the session was built for.
func (s *Session) Parameters() quiz.Parameters { return s.params }

// Questions returns the question set. Callers must not modify it.
func (s *Session) Questions() quiz.QuestionSet { return s.questions }

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question under the cursor, or nil when
// the session has not started.
func (s *Session) CurrentQuestion() *quiz.Question {
	if s.status == StatusNotStarted {
		return nil
	}
	return &s.questions[s.current]
}

// Answer returns the recorded answer for index, or nil if unanswered.
func (s *Session) Answer(index int) *quiz.Answer {
	if index < 0 || index >= len(s.answers) {
		return nil
	}
	return s.answers[index]
}

// AnsweredCount returns how many questions carry a recorded answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != nil {
			n++
		}
	}
	return n
}

// StartedAt returns the start timestamp, zero before Start.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CompletedAt returns the completion timestamp, zero before Finish.
func (s *Session) CompletedAt() time.Time { return s.completedAt }
