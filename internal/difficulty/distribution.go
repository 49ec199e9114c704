// Package difficulty maps an experience level to a target mix of
// fundamental, intermediate, and advanced question counts.
package difficulty

import (
	"fmt"

	"github.com/nmehta/pharmaquiz/internal/quiz"
)

// mix holds the percentage split for one experience level.
// Each row sums to 100.
type mix struct {
	Fundamental  int
	Intermediate int
	Advanced     int
}

// distributionTable is the fixed split per experience level.
// Lower levels weight toward fundamentals; higher levels shift the mix
// toward application and expert-level questions.
var distributionTable = map[int]mix{
	1: {80, 15, 5},
	2: {70, 20, 10},
	3: {60, 25, 15},
	4: {50, 30, 20},
	5: {40, 35, 25},
	6: {30, 40, 30},
	7: {20, 50, 30},
}

// Buckets holds the per-tier question counts for one generation request.
type Buckets struct {
	Fundamental  int `json:"fundamental"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

// Total returns the sum of all bucket counts.
func (b Buckets) Total() int {
	return b.Fundamental + b.Intermediate + b.Advanced
}

// Count returns the bucket count for the given tier.
func (b Buckets) Count(d quiz.Difficulty) int {
	switch d {
	case quiz.DifficultyFundamental:
		return b.Fundamental
	case quiz.DifficultyIntermediate:
		return b.Intermediate
	case quiz.DifficultyAdvanced:
		return b.Advanced
	}
	return 0
}

// Distribute splits total questions across the three tiers for the given
// experience level. The fundamental and intermediate percentages are
// rounded half-up; the advanced bucket takes whatever remains, so the
// result always sums to exactly total. For a 50/30/20 split of 15 this
// yields (8, 5, 2).
func Distribute(level, total int) (Buckets, error) {
	m, ok := distributionTable[level]
	if !ok {
		return Buckets{}, &quiz.ConfigurationError{
			Field: "experience_level",
			Msg:   fmt.Sprintf("must be between %d and %d, got %d", quiz.MinExperienceLevel, quiz.MaxExperienceLevel, level),
		}
	}
	if total <= 0 {
		return Buckets{}, &quiz.ConfigurationError{
			Field: "question_count",
			Msg:   fmt.Sprintf("must be positive, got %d", total),
		}
	}

	b := Buckets{
		Fundamental:  roundPct(total, m.Fundamental),
		Intermediate: roundPct(total, m.Intermediate),
	}
	b.Advanced = total - b.Fundamental - b.Intermediate

	// Tiny totals can round the first two buckets past the whole; pull
	// the overshoot back out of the intermediate bucket.
	if b.Advanced < 0 {
		b.Intermediate += b.Advanced
		b.Advanced = 0
	}

	return b, nil
}

// roundPct computes total*pct/100 rounded half-up, in integer arithmetic.
func roundPct(total, pct int) int {
	return (total*pct + 50) / 100
}
