package questiongen

import (
	"fmt"
	"strings"

	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/quiz"
)

const systemPrompt = `You are an expert pharmaceutical consultant quiz generator.
Create relevant, accurate questions for pharmaceutical market research consultants
based on the provided therapy area, client information, and experience level.

Rules:
- Generate exactly the number of questions requested for each difficulty tier.
- fundamental covers basic concepts, definitions, and general industry knowledge.
- intermediate covers practical application, analysis, and methodology understanding.
- advanced covers complex scenarios, strategic thinking, and expert-level insights.
- Mix question types: single_choice (4-5 options), multi_select (3-6 options, at
  least one correct), and true_false (options exactly ["True", "False"]).
- Cover therapy area knowledge, competitive landscape, regulatory considerations,
  market access, and project methodology.
- Questions must be specific to the given therapy area and indication, relevant to
  the project type, and appropriate for the stated experience level.
- Every question needs a clear, educational explanation of the correct answer.
- When supporting document excerpts are provided, ground questions in them where
  they are relevant; never contradict them.`

// buildUserMessage constructs the generation request body from the quiz
// parameters and the per-tier question counts.
func buildUserMessage(p quiz.Parameters, b difficulty.Buckets) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Therapy area: %s\n", p.TherapyArea)
	if p.SecondaryTherapyArea != "" {
		fmt.Fprintf(&sb, "Secondary therapy area: %s\n", p.SecondaryTherapyArea)
	}
	if p.Indication != "" {
		fmt.Fprintf(&sb, "Indication: %s\n", p.Indication)
	}
	fmt.Fprintf(&sb, "Project type: %s\n", p.ProjectType)
	fmt.Fprintf(&sb, "Client scenario: %s\n", p.ClientScenario)
	fmt.Fprintf(&sb, "Experience level: %d/7 (%s)\n", p.ExperienceLevel, quiz.ExperienceLevels[p.ExperienceLevel])
	if len(p.ProductNames) > 0 {
		fmt.Fprintf(&sb, "Products in scope: %s\n", strings.Join(p.ProductNames, ", "))
	}

	sb.WriteString("\nQuestions to generate:\n")
	fmt.Fprintf(&sb, "- fundamental: %d\n", b.Fundamental)
	fmt.Fprintf(&sb, "- intermediate: %d\n", b.Intermediate)
	fmt.Fprintf(&sb, "- advanced: %d\n", b.Advanced)

	if p.ContextText != "" {
		sb.WriteString("\nSupporting document excerpts:\n")
		sb.WriteString(p.ContextText)
	}

	return sb.String()
}
