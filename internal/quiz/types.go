package quiz

import "time"

// QuestionType describes how a question is answered.
type QuestionType string

const (
	// TypeSingleChoice means exactly one option is correct and the
	// respondent picks one.
	TypeSingleChoice QuestionType = "single_choice"

	// TypeMultiSelect means one or more options are correct and the
	// respondent picks a set. Scored as exact set match, no partial credit.
	TypeMultiSelect QuestionType = "multi_select"

	// TypeTrueFalse is a single-choice question with exactly two options.
	TypeTrueFalse QuestionType = "true_false"
)

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeSingleChoice, TypeMultiSelect, TypeTrueFalse:
		return true
	}
	return false
}

// Difficulty is the question difficulty tier.
type Difficulty string

const (
	DifficultyFundamental  Difficulty = "fundamental"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{DifficultyFundamental, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyFundamental, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Question is a single validated quiz question. Immutable after creation.
type Question struct {
	// ID uniquely identifies the question within its set.
	ID string `json:"id"`

	// Text is the question prompt shown to the respondent.
	Text string `json:"text"`

	// Type determines how the question is answered and scored.
	Type QuestionType `json:"type"`

	// Options is the ordered list of option texts.
	Options []string `json:"options"`

	// CorrectIndices holds the indices of the correct options.
	// Exactly one entry for single_choice and true_false, one or more
	// for multi_select. Sorted ascending.
	CorrectIndices []int `json:"correct_indices"`

	// Category is the free-text knowledge area, e.g. "Market Access".
	Category string `json:"category"`

	// Difficulty is the tier this question was generated for.
	Difficulty Difficulty `json:"difficulty"`

	// Explanation is shown after answering.
	Explanation string `json:"explanation"`
}

// QuestionSet is an ordered, fixed-size sequence of questions.
type QuestionSet []Question

// Answer records a submitted response to one question.
// Correctness is not stored here; it is derived by CheckAnswer.
type Answer struct {
	// QuestionID is the ID of the question this answer belongs to.
	QuestionID string `json:"question_id"`

	// Selected holds the chosen option indices, sorted ascending.
	// Empty means the question was explicitly left unanswered.
	Selected []int `json:"selected"`

	// SubmittedAt is when the answer was recorded.
	SubmittedAt time.Time `json:"submitted_at"`
}

// Unanswered reports whether the answer carries no selection.
func (a Answer) Unanswered() bool {
	return len(a.Selected) == 0
}
