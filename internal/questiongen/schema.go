package questiongen

import "github.com/nmehta/pharmaquiz/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of pharmaceutical consulting quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question shown to the consultant, in plain text",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"single_choice", "multi_select", "true_false"},
							"description": "How the consultant answers: pick one option, pick several, or judge a statement",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "4-5 options for single_choice, 3-6 for multi_select, exactly [\"True\", \"False\"] for true_false",
						},
						"correct_indices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "integer",
							},
							"description": "Zero-based indices of the correct options. Exactly one for single_choice and true_false.",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Topic grouping, e.g. \"Therapy Area Knowledge\", \"Market Access\", \"Methodology\"",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"fundamental", "intermediate", "advanced"},
							"description": "Difficulty tier the question was generated for",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct, written for a consultant reviewing their results",
						},
					},
					"required":             []any{"question_text", "type", "options", "correct_indices", "category", "difficulty", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
