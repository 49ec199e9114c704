package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/llm"
	"github.com/nmehta/pharmaquiz/internal/quiz"
)

// Builder assembles a question set by issuing one generation request to
// the LLM provider and validating every candidate it returns.
type Builder struct {
	provider llm.Provider
	config   Config
}

// New creates a Builder with the given provider and config.
func New(provider llm.Provider, cfg Config) *Builder {
	return &Builder{provider: provider, config: cfg}
}

// Build generates a question set matching the given difficulty buckets.
// Exactly one provider request is issued; failover between providers is
// the provider's concern, not the Builder's. Returns
// InsufficientQuestionsError when too few candidates survive validation
// to fill every bucket.
func (b *Builder) Build(ctx context.Context, p quiz.Parameters, buckets difficulty.Buckets) (quiz.QuestionSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	total := buckets.Total()
	if total <= 0 {
		return nil, &quiz.ConfigurationError{Field: "buckets", Msg: "question count must be positive"}
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p, buckets)},
		},
		Schema:      BatchSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var batch batchOutput
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}

	candidates := b.validate(batch.Questions)
	set, err := assemble(candidates, buckets)
	if err != nil {
		return nil, err
	}

	slog.Debug("question set built",
		"requested", total,
		"received", len(batch.Questions),
		"usable", len(candidates))
	return set, nil
}

// validate runs the validator chain over each candidate, dropping any
// that fail. Rejections are logged, not fatal.
func (b *Builder) validate(raws []RawQuestion) []quiz.Question {
	out := make([]quiz.Question, 0, len(raws))
candidates:
	for i, raw := range raws {
		for _, v := range b.config.Validators {
			if verr := v.Validate(raw); verr != nil {
				slog.Debug("candidate question rejected", "index", i, "reason", verr)
				continue candidates
			}
		}
		out = append(out, toQuestion(raw))
	}
	return out
}

// toQuestion converts a validated candidate into the trusted model,
// assigning an ID and normalizing the correct index set.
func toQuestion(raw RawQuestion) quiz.Question {
	indices := slices.Clone(raw.CorrectIndices)
	slices.Sort(indices)
	indices = slices.Compact(indices)

	return quiz.Question{
		ID:             uuid.NewString(),
		Text:           raw.QuestionText,
		Type:           quiz.QuestionType(raw.Type),
		Options:        slices.Clone(raw.Options),
		CorrectIndices: indices,
		Category:       raw.Category,
		Difficulty:     quiz.Difficulty(raw.Difficulty),
		Explanation:    raw.Explanation,
	}
}

// assemble picks questions to fill each difficulty bucket. When a tier
// is short, the deficit is filled from other tiers' surplus, preferring
// fundamental, then intermediate, then advanced. The result always has
// exactly the total bucket count or the assembly fails.
func assemble(candidates []quiz.Question, buckets difficulty.Buckets) (quiz.QuestionSet, error) {
	pools := make(map[quiz.Difficulty][]quiz.Question, len(quiz.Difficulties))
	for _, q := range candidates {
		pools[q.Difficulty] = append(pools[q.Difficulty], q)
	}

	total := buckets.Total()
	set := make(quiz.QuestionSet, 0, total)
	for _, d := range quiz.Difficulties {
		want := buckets.Count(d)
		pool := pools[d]
		n := min(want, len(pool))
		set = append(set, pool[:n]...)
		pools[d] = pool[n:]
	}

	// Substitute from surplus for any tier that came up short.
	for _, d := range quiz.Difficulties {
		if len(set) == total {
			break
		}
		pool := pools[d]
		n := min(total-len(set), len(pool))
		set = append(set, pool[:n]...)
	}

	if len(set) < total {
		return nil, &InsufficientQuestionsError{Requested: total, Received: len(set)}
	}
	return set, nil
}
