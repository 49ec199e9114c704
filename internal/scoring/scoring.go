package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/session"
)

// Config holds the scoring thresholds.
type Config struct {
	// PassThreshold is the minimum score to pass, inclusive.
	PassThreshold float64

	// WeakAreaThreshold is the category percentage below which a
	// category is surfaced as a recommendation.
	WeakAreaThreshold float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		PassThreshold:     70.0,
		WeakAreaThreshold: 60.0,
	}
}

// Breakdown is the per-group correctness summary.
type Breakdown struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Result is the scored outcome of a completed session. Field names are
// stable; external consumers depend on them.
type Result struct {
	SessionID       string               `json:"session_id"`
	ProjectName     string               `json:"project_name"`
	ClientName      string               `json:"client_name"`
	TherapyArea     string               `json:"therapy_area"`
	ExperienceLevel int                  `json:"experience_level"`
	StartedAt       time.Time            `json:"started_at"`
	CompletedAt     time.Time            `json:"completed_at"`
	TotalQuestions  int                  `json:"total_questions"`
	AnsweredCount   int                  `json:"answered_questions"`
	CorrectAnswers  int                  `json:"correct_answers"`
	Score           float64              `json:"score_percentage"`
	Grade           string               `json:"grade"`
	Passed          bool                 `json:"passed"`
	Categories      map[string]Breakdown `json:"category_breakdown"`
	Difficulties    map[string]Breakdown `json:"difficulty_breakdown"`
	Recommendations []string             `json:"recommendations"`
}

// NotCompletedError reports a scoring request for a session that has
// not reached the Completed state.
type NotCompletedError struct {
	Status session.Status
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("cannot score session in state %s", e.Status)
}

// Evaluate scores a completed session. It is a pure function of the
// session and config: no side effects, identical output on repeat calls.
func Evaluate(s *session.Session, cfg Config) (*Result, error) {
	if s.Status() != session.StatusCompleted {
		return nil, &NotCompletedError{Status: s.Status()}
	}

	questions := s.Questions()
	params := s.Parameters()

	correct := 0
	answered := 0
	categories := make(map[string]Breakdown)
	difficulties := make(map[string]Breakdown)
	for i, q := range questions {
		a := s.Answer(i)
		if !a.Unanswered() {
			answered++
		}
		ok := quiz.CheckAnswer(q, a.Selected)
		if ok {
			correct++
		}
		categories[q.Category] = tally(categories[q.Category], ok)
		difficulties[string(q.Difficulty)] = tally(difficulties[string(q.Difficulty)], ok)
	}
	for k, b := range categories {
		b.Percentage = percentage(b.Correct, b.Total)
		categories[k] = b
	}
	for k, b := range difficulties {
		b.Percentage = percentage(b.Correct, b.Total)
		difficulties[k] = b
	}

	score := percentage(correct, len(questions))

	return &Result{
		SessionID:       s.ID(),
		ProjectName:     params.ProjectName,
		ClientName:      params.ClientName,
		TherapyArea:     params.TherapyArea,
		ExperienceLevel: params.ExperienceLevel,
		StartedAt:       s.StartedAt(),
		CompletedAt:     s.CompletedAt(),
		TotalQuestions:  len(questions),
		AnsweredCount:   answered,
		CorrectAnswers:  correct,
		Score:           score,
		Grade:           grade(score),
		Passed:          score >= cfg.PassThreshold,
		Categories:      categories,
		Difficulties:    difficulties,
		Recommendations: recommend(categories, cfg.WeakAreaThreshold),
	}, nil
}

func tally(b Breakdown, correct bool) Breakdown {
	b.Total++
	if correct {
		b.Correct++
	}
	return b
}

// percentage returns correct/total as a percentage rounded to one
// decimal place.
func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

// grade maps a score to a letter grade. Boundaries are inclusive, so a
// tie resolves to the higher grade.
func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// recommend returns the categories below the weak-area threshold,
// weakest first. Ties break on category name so the order is stable.
func recommend(categories map[string]Breakdown, threshold float64) []string {
	weak := make([]string, 0)
	for name, b := range categories {
		if b.Percentage < threshold {
			weak = append(weak, name)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		bi, bj := categories[weak[i]], categories[weak[j]]
		if bi.Percentage != bj.Percentage {
			return bi.Percentage < bj.Percentage
		}
		return weak[i] < weak[j]
	})
	return weak
}
