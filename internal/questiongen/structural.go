package questiongen

import (
	"fmt"

	"github.com/nmehta/pharmaquiz/internal/quiz"
)

// StructuralValidator checks that a candidate has all required fields,
// a known type and difficulty, and correct indices within bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(raw RawQuestion) *ValidationError {
	if raw.QuestionText == "" {
		return v.fail("question_text is empty")
	}
	if raw.Category == "" {
		return v.fail("category is empty")
	}
	if !quiz.Difficulty(raw.Difficulty).Valid() {
		return v.fail(fmt.Sprintf("unknown difficulty %q", raw.Difficulty))
	}
	qt := quiz.QuestionType(raw.Type)
	if !qt.Valid() {
		return v.fail(fmt.Sprintf("unknown question type %q", raw.Type))
	}
	if len(raw.Options) == 0 {
		return v.fail("options is empty")
	}
	if len(raw.CorrectIndices) == 0 {
		return v.fail("correct_indices is empty")
	}
	for _, i := range raw.CorrectIndices {
		if i < 0 || i >= len(raw.Options) {
			return v.fail(fmt.Sprintf("correct index %d out of bounds for %d options", i, len(raw.Options)))
		}
	}

	switch qt {
	case quiz.TypeSingleChoice:
		if len(raw.CorrectIndices) != 1 {
			return v.fail(fmt.Sprintf("single_choice needs exactly 1 correct index, got %d", len(raw.CorrectIndices)))
		}
	case quiz.TypeTrueFalse:
		if len(raw.Options) != 2 {
			return v.fail(fmt.Sprintf("true_false needs exactly 2 options, got %d", len(raw.Options)))
		}
		if len(raw.CorrectIndices) != 1 {
			return v.fail(fmt.Sprintf("true_false needs exactly 1 correct index, got %d", len(raw.CorrectIndices)))
		}
	case quiz.TypeMultiSelect:
		if len(raw.CorrectIndices) >= len(raw.Options) {
			return v.fail("multi_select must have at least one incorrect option")
		}
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
