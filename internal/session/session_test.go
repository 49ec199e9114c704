package session

import (
	"errors"
	"testing"

	"github.com/nmehta/pharmaquiz/internal/quiz"
)

func testQuestions() quiz.QuestionSet {
	return quiz.QuestionSet{
		{
			ID: "q1", Text: "Pick B", Type: quiz.TypeSingleChoice,
			Options: []string{"A", "B", "C", "D"}, CorrectIndices: []int{1},
			Category: "Methodology", Difficulty: quiz.DifficultyFundamental,
		},
		{
			ID: "q2", Text: "True or false", Type: quiz.TypeTrueFalse,
			Options: []string{"True", "False"}, CorrectIndices: []int{0},
			Category: "Market Access", Difficulty: quiz.DifficultyIntermediate,
		},
		{
			ID: "q3", Text: "Pick A and C", Type: quiz.TypeMultiSelect,
			Options: []string{"A", "B", "C"}, CorrectIndices: []int{0, 2},
			Category: "Methodology", Difficulty: quiz.DifficultyAdvanced,
		},
	}
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := New(quiz.Parameters{}, testQuestions())
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	return s
}

func TestLifecycle(t *testing.T) {
	s := New(quiz.Parameters{}, testQuestions())
	if s.Status() != StatusNotStarted {
		t.Fatalf("Status = %s, want %s", s.Status(), StatusNotStarted)
	}
	if s.CurrentQuestion() != nil {
		t.Error("CurrentQuestion() before start should be nil")
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if s.Status() != StatusInProgress {
		t.Fatalf("Status = %s, want %s", s.Status(), StatusInProgress)
	}
	if s.StartedAt().IsZero() {
		t.Error("StartedAt not set")
	}

	var stateErr *InvalidStateError
	if err := s.Start(); !errors.As(err, &stateErr) {
		t.Errorf("second Start = %v, want InvalidStateError", err)
	}
}

func TestSubmitAnswer_VerdictAndOverwrite(t *testing.T) {
	s := startedSession(t)

	correct, err := s.SubmitAnswer(0, []int{1})
	if err != nil {
		t.Fatalf("SubmitAnswer error: %v", err)
	}
	if !correct {
		t.Error("correct answer judged incorrect")
	}

	// Re-answering overwrites.
	correct, err = s.SubmitAnswer(0, []int{3})
	if err != nil {
		t.Fatalf("SubmitAnswer error: %v", err)
	}
	if correct {
		t.Error("wrong answer judged correct")
	}
	if got := s.Answer(0).Selected; len(got) != 1 || got[0] != 3 {
		t.Errorf("Answer(0).Selected = %v, want [3]", got)
	}
}

func TestSubmitAnswer_VerdictMatchesStoredAnswer(t *testing.T) {
	s := startedSession(t)

	// A duplicate-bearing selection normalizes to the single correct
	// index; the verdict must reflect the stored answer.
	correct, err := s.SubmitAnswer(0, []int{1, 1})
	if err != nil {
		t.Fatalf("SubmitAnswer error: %v", err)
	}
	if !correct {
		t.Error("normalized selection judged incorrect at submit time")
	}

	stored := s.Answer(0)
	if got := stored.Selected; len(got) != 1 || got[0] != 1 {
		t.Fatalf("Answer(0).Selected = %v, want [1]", got)
	}
	if got := quiz.CheckAnswer(testQuestions()[0], stored.Selected); got != correct {
		t.Errorf("recomputed verdict = %v, submit verdict = %v", got, correct)
	}
}

func TestSubmitAnswer_OnlyVisitedQuestions(t *testing.T) {
	s := startedSession(t)

	// Index 2 has not been visited yet.
	_, err := s.SubmitAnswer(2, []int{0})
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("SubmitAnswer on unvisited index = %v, want InvalidStateError", err)
	}

	s.Advance()
	s.Advance()
	if _, err := s.SubmitAnswer(2, []int{0, 2}); err != nil {
		t.Fatalf("SubmitAnswer on visited index error: %v", err)
	}
	// Earlier questions stay answerable after retreat.
	s.Retreat()
	if _, err := s.SubmitAnswer(0, []int{1}); err != nil {
		t.Fatalf("SubmitAnswer on earlier index error: %v", err)
	}

	if _, err := s.SubmitAnswer(-1, nil); !errors.As(err, &stateErr) {
		t.Errorf("SubmitAnswer(-1) = %v, want InvalidStateError", err)
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	s := startedSession(t)

	s.Retreat()
	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex after retreat at start = %d, want 0", s.CurrentIndex())
	}

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex after repeated advance = %d, want 2", s.CurrentIndex())
	}
}

func TestFinish_RequiresEveryAnswer(t *testing.T) {
	s := startedSession(t)

	s.SubmitAnswer(0, []int{1})

	err := s.Finish()
	var incomplete *IncompleteSessionError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Finish with gaps = %v, want IncompleteSessionError", err)
	}
	if len(incomplete.Unanswered) != 2 {
		t.Errorf("Unanswered = %v, want 2 indices", incomplete.Unanswered)
	}

	// An explicit empty selection counts as answered.
	s.Advance()
	s.SubmitAnswer(1, nil)
	s.Advance()
	s.SubmitAnswer(2, []int{0})

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("Status = %s, want %s", s.Status(), StatusCompleted)
	}
	if s.CompletedAt().IsZero() {
		t.Error("CompletedAt not set")
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	s := startedSession(t)
	for i := 0; i < 3; i++ {
		s.SubmitAnswer(i, nil)
		s.Advance()
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}

	var stateErr *InvalidStateError
	if _, err := s.SubmitAnswer(0, []int{1}); !errors.As(err, &stateErr) {
		t.Errorf("SubmitAnswer after completion = %v, want InvalidStateError", err)
	}
	if err := s.Finish(); !errors.As(err, &stateErr) {
		t.Errorf("second Finish = %v, want InvalidStateError", err)
	}
}

func TestStart_EmptySet(t *testing.T) {
	s := New(quiz.Parameters{}, nil)
	var stateErr *InvalidStateError
	if err := s.Start(); !errors.As(err, &stateErr) {
		t.Errorf("Start with empty set = %v, want InvalidStateError", err)
	}
}
