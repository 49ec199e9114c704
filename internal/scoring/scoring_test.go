package scoring

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/session"
)

// completedSession builds a finished session over n single-choice
// questions. answers[i] selects the correct option when true.
func completedSession(t *testing.T, questions quiz.QuestionSet, correct []bool) *session.Session {
	t.Helper()
	s := session.New(quiz.Parameters{
		ProjectName:     "Oncology ATU Wave 3",
		ClientName:      "Acme Pharma",
		TherapyArea:     "Oncology",
		ExperienceLevel: 4,
	}, questions)
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for i := range questions {
		selection := []int{questions[i].CorrectIndices[0]}
		if !correct[i] {
			wrong := (questions[i].CorrectIndices[0] + 1) % len(questions[i].Options)
			selection = []int{wrong}
		}
		if _, err := s.SubmitAnswer(i, selection); err != nil {
			t.Fatalf("SubmitAnswer(%d) error: %v", i, err)
		}
		s.Advance()
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	return s
}

// questionGrid builds questions spread over the given categories and
// difficulties, cycling through both.
func questionGrid(n int, categories []string, difficulties []quiz.Difficulty) quiz.QuestionSet {
	set := make(quiz.QuestionSet, n)
	for i := 0; i < n; i++ {
		set[i] = quiz.Question{
			ID:             fmt.Sprintf("q%d", i),
			Text:           fmt.Sprintf("Question %d", i),
			Type:           quiz.TypeSingleChoice,
			Options:        []string{"A", "B", "C", "D"},
			CorrectIndices: []int{i % 4},
			Category:       categories[i%len(categories)],
			Difficulty:     difficulties[i%len(difficulties)],
		}
	}
	return set
}

func TestEvaluate_Boundaries(t *testing.T) {
	questions := questionGrid(10, []string{"Methodology"}, []quiz.Difficulty{quiz.DifficultyFundamental})

	allWrong := make([]bool, 10)
	s := completedSession(t, questions, allWrong)
	r, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if r.Score != 0.0 || r.Grade != "F" || r.Passed {
		t.Errorf("all wrong: score=%.1f grade=%s passed=%t, want 0.0 F false", r.Score, r.Grade, r.Passed)
	}

	allRight := make([]bool, 10)
	for i := range allRight {
		allRight[i] = true
	}
	s = completedSession(t, questions, allRight)
	r, err = Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if r.Score != 100.0 || r.Grade != "A" || !r.Passed {
		t.Errorf("all right: score=%.1f grade=%s passed=%t, want 100.0 A true", r.Score, r.Grade, r.Passed)
	}
}

func TestEvaluate_RoundsToOneDecimal(t *testing.T) {
	// 8 of 15 correct is 53.333...%, reported as 53.3.
	questions := questionGrid(15, []string{"Methodology"}, []quiz.Difficulty{quiz.DifficultyFundamental})
	correct := make([]bool, 15)
	for i := 0; i < 8; i++ {
		correct[i] = true
	}
	s := completedSession(t, questions, correct)
	r, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if r.Score != 53.3 {
		t.Errorf("Score = %v, want 53.3", r.Score)
	}
	if r.Grade != "F" || r.Passed {
		t.Errorf("grade=%s passed=%t, want F false", r.Grade, r.Passed)
	}
}

func TestGradeLadder(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := grade(tt.score); got != tt.want {
			t.Errorf("grade(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEvaluate_Breakdowns(t *testing.T) {
	categories := []string{"Market Access", "Methodology"}
	difficulties := []quiz.Difficulty{quiz.DifficultyFundamental, quiz.DifficultyIntermediate}
	questions := questionGrid(10, categories, difficulties)

	// Even indices (Market Access, fundamental) correct, odd wrong.
	correct := make([]bool, 10)
	for i := 0; i < 10; i += 2 {
		correct[i] = true
	}
	s := completedSession(t, questions, correct)
	r, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	wantCat := map[string]Breakdown{
		"Market Access": {Correct: 5, Total: 5, Percentage: 100.0},
		"Methodology":   {Correct: 0, Total: 5, Percentage: 0.0},
	}
	if !reflect.DeepEqual(r.Categories, wantCat) {
		t.Errorf("Categories = %v, want %v", r.Categories, wantCat)
	}
	wantDiff := map[string]Breakdown{
		"fundamental":  {Correct: 5, Total: 5, Percentage: 100.0},
		"intermediate": {Correct: 0, Total: 5, Percentage: 0.0},
	}
	if !reflect.DeepEqual(r.Difficulties, wantDiff) {
		t.Errorf("Difficulties = %v, want %v", r.Difficulties, wantDiff)
	}
	if !reflect.DeepEqual(r.Recommendations, []string{"Methodology"}) {
		t.Errorf("Recommendations = %v, want [Methodology]", r.Recommendations)
	}
}

func TestRecommend_SortsWeakestFirst(t *testing.T) {
	categories := map[string]Breakdown{
		"Regulatory":    {Correct: 1, Total: 4, Percentage: 25.0},
		"Methodology":   {Correct: 2, Total: 4, Percentage: 50.0},
		"Market Access": {Correct: 0, Total: 4, Percentage: 0.0},
		"Strong":        {Correct: 4, Total: 4, Percentage: 100.0},
		"Also Weak":     {Correct: 2, Total: 4, Percentage: 50.0},
	}
	got := recommend(categories, 60.0)
	want := []string{"Market Access", "Regulatory", "Also Weak", "Methodology"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recommend() = %v, want %v", got, want)
	}
}

func TestEvaluate_CountsSkipsSeparately(t *testing.T) {
	questions := questionGrid(5, []string{"Methodology"}, []quiz.Difficulty{quiz.DifficultyFundamental})
	s := session.New(quiz.Parameters{TherapyArea: "Oncology"}, questions)
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for i := range questions {
		selection := []int{questions[i].CorrectIndices[0]}
		if i >= 3 {
			// Skipped: recorded with an empty selection.
			selection = nil
		}
		if _, err := s.SubmitAnswer(i, selection); err != nil {
			t.Fatalf("SubmitAnswer(%d) error: %v", i, err)
		}
		s.Advance()
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}

	r, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if r.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", r.TotalQuestions)
	}
	if r.AnsweredCount != 3 {
		t.Errorf("AnsweredCount = %d, want 3", r.AnsweredCount)
	}
	if r.CorrectAnswers != 3 {
		t.Errorf("CorrectAnswers = %d, want 3", r.CorrectAnswers)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	questions := questionGrid(6, []string{"A", "B", "C"}, []quiz.Difficulty{quiz.DifficultyAdvanced})
	correct := []bool{true, false, true, false, true, false}
	s := completedSession(t, questions, correct)

	r1, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	r2, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("second Evaluate error: %v", err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Error("repeated Evaluate on the same session differs")
	}
}

func TestEvaluate_RequiresCompletedSession(t *testing.T) {
	s := session.New(quiz.Parameters{}, questionGrid(3, []string{"A"}, []quiz.Difficulty{quiz.DifficultyFundamental}))

	_, err := Evaluate(s, DefaultConfig())
	var notCompleted *NotCompletedError
	if !errors.As(err, &notCompleted) {
		t.Fatalf("Evaluate on NotStarted = %v, want NotCompletedError", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if _, err := Evaluate(s, DefaultConfig()); !errors.As(err, &notCompleted) {
		t.Errorf("Evaluate on InProgress = %v, want NotCompletedError", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	questions := questionGrid(10, []string{"Market Access", "Methodology"},
		[]quiz.Difficulty{quiz.DifficultyFundamental, quiz.DifficultyIntermediate, quiz.DifficultyAdvanced})
	correct := []bool{true, true, false, true, false, false, true, true, false, true}
	s := completedSession(t, questions, correct)
	r, err := Evaluate(s, DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	data, err := Export(r)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(parsed.Categories, r.Categories) {
		t.Errorf("category breakdown changed across round trip: %v != %v", parsed.Categories, r.Categories)
	}
	if !reflect.DeepEqual(parsed.Difficulties, r.Difficulties) {
		t.Errorf("difficulty breakdown changed across round trip: %v != %v", parsed.Difficulties, r.Difficulties)
	}
	if parsed.Score != r.Score || parsed.Grade != r.Grade || parsed.Passed != r.Passed {
		t.Errorf("summary fields changed across round trip")
	}
	if parsed.AnsweredCount != r.AnsweredCount || parsed.TotalQuestions != r.TotalQuestions {
		t.Errorf("counts changed across round trip: answered %d/%d, total %d/%d",
			parsed.AnsweredCount, r.AnsweredCount, parsed.TotalQuestions, r.TotalQuestions)
	}
}
