package quiz

import (
	"slices"
	"time"
)

// CheckAnswer compares a submitted selection against a question's correct
// option indices. Returns true only for an exact match.
//
// Rules:
//   - single_choice / true_false: correct iff exactly one index is selected
//     and it equals the sole correct index. Zero or multiple selections are
//     incorrect, never an error.
//   - multi_select: correct iff the selected set equals the correct set.
//     Subsets and supersets of the correct set are incorrect.
//
// An empty selection is a valid (incorrect) input. The question is never
// mutated.
func CheckAnswer(q Question, selected []int) bool {
	switch q.Type {
	case TypeSingleChoice, TypeTrueFalse:
		if len(selected) != 1 || len(q.CorrectIndices) != 1 {
			return false
		}
		return selected[0] == q.CorrectIndices[0]

	case TypeMultiSelect:
		if len(selected) == 0 || len(selected) != len(q.CorrectIndices) {
			return false
		}
		return slices.Equal(normalizeSelection(selected), normalizeSelection(q.CorrectIndices))
	}

	return false
}

// NewAnswer builds a normalized Answer record for the given question:
// duplicates removed, indices sorted ascending.
func NewAnswer(q Question, selected []int, at time.Time) Answer {
	return Answer{
		QuestionID:  q.ID,
		Selected:    normalizeSelection(selected),
		SubmittedAt: at,
	}
}

// normalizeSelection returns a sorted, de-duplicated copy of indices.
func normalizeSelection(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	out := slices.Clone(indices)
	slices.Sort(out)
	return slices.Compact(out)
}
