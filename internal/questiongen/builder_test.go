package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/llm"
	"github.com/nmehta/pharmaquiz/internal/quiz"
)

func testParameters() quiz.Parameters {
	return quiz.Parameters{
		ProjectName:     "Oncology ATU Wave 3",
		ClientName:      "Acme Pharma",
		TherapyArea:     "Oncology",
		Indication:      "NSCLC",
		ProjectType:     quiz.ProjectATU,
		ClientScenario:  quiz.ScenarioNewClientBaseline,
		ExperienceLevel: 4,
	}
}

// batchJSON builds a response with the given number of valid questions
// per difficulty tier.
func batchJSON(fundamental, intermediate, advanced int) json.RawMessage {
	var qs []string
	add := func(diff string, n int) {
		for i := 0; i < n; i++ {
			qs = append(qs, fmt.Sprintf(`{
				"question_text": "Question %s %d?",
				"type": "single_choice",
				"options": ["A", "B", "C", "D"],
				"correct_indices": [1],
				"category": "Therapy Area Knowledge",
				"difficulty": %q,
				"explanation": "B is correct."
			}`, diff, i, diff))
		}
	}
	add("fundamental", fundamental)
	add("intermediate", intermediate)
	add("advanced", advanced)
	return json.RawMessage(`{"questions": [` + strings.Join(qs, ",") + `]}`)
}

func TestBuild_FillsBucketsExactly(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(8, 5, 2)})
	b := New(mock, DefaultConfig())

	buckets := difficulty.Buckets{Fundamental: 8, Intermediate: 5, Advanced: 2}
	set, err := b.Build(context.Background(), testParameters(), buckets)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(set) != 15 {
		t.Fatalf("len(set) = %d, want 15", len(set))
	}
	for _, d := range quiz.Difficulties {
		got := 0
		for _, q := range set {
			if q.Difficulty == d {
				got++
			}
		}
		if got != buckets.Count(d) {
			t.Errorf("%s count = %d, want %d", d, got, buckets.Count(d))
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want exactly 1", mock.CallCount())
	}
}

func TestBuild_SubstitutesAcrossTiers(t *testing.T) {
	// Advanced is short by 2; the surplus fundamental questions fill in.
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(10, 5, 0)})
	b := New(mock, DefaultConfig())

	buckets := difficulty.Buckets{Fundamental: 8, Intermediate: 5, Advanced: 2}
	set, err := b.Build(context.Background(), testParameters(), buckets)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(set) != 15 {
		t.Errorf("len(set) = %d, want 15", len(set))
	}
}

func TestBuild_InsufficientQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(3, 2, 0)})
	b := New(mock, DefaultConfig())

	buckets := difficulty.Buckets{Fundamental: 8, Intermediate: 5, Advanced: 2}
	_, err := b.Build(context.Background(), testParameters(), buckets)

	var insuff *InsufficientQuestionsError
	if !errors.As(err, &insuff) {
		t.Fatalf("error = %v, want InsufficientQuestionsError", err)
	}
	if insuff.Requested != 15 || insuff.Received != 5 {
		t.Errorf("error = %+v, want requested 15, received 5", insuff)
	}
}

func TestBuild_DropsInvalidCandidates(t *testing.T) {
	// One candidate has an out-of-bounds correct index and must be dropped.
	raw := `{"questions": [
		{"question_text": "Good?", "type": "true_false", "options": ["True", "False"],
		 "correct_indices": [0], "category": "Methodology", "difficulty": "fundamental",
		 "explanation": "Yes."},
		{"question_text": "Bad?", "type": "single_choice", "options": ["A", "B"],
		 "correct_indices": [5], "category": "Methodology", "difficulty": "fundamental",
		 "explanation": "Broken."}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	b := New(mock, DefaultConfig())

	set, err := b.Build(context.Background(), testParameters(), difficulty.Buckets{Fundamental: 1})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(set) != 1 || set[0].Text != "Good?" {
		t.Errorf("set = %+v, want only the valid candidate", set)
	}
}

func TestBuild_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	b := New(mock, DefaultConfig())

	_, err := b.Build(context.Background(), testParameters(), difficulty.Buckets{Fundamental: 1})
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
}

func TestBuild_InvalidParameters(t *testing.T) {
	p := testParameters()
	p.ExperienceLevel = 9
	mock := llm.NewMockProvider()
	b := New(mock, DefaultConfig())

	_, err := b.Build(context.Background(), p, difficulty.Buckets{Fundamental: 1})
	var cfgErr *quiz.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0 on bad parameters", mock.CallCount())
	}
}

func TestBuild_AssignsIDsAndNormalizesIndices(t *testing.T) {
	raw := `{"questions": [
		{"question_text": "Pick all that apply", "type": "multi_select",
		 "options": ["A", "B", "C", "D"], "correct_indices": [3, 1],
		 "category": "Market Access", "difficulty": "intermediate",
		 "explanation": "B and D."}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	b := New(mock, DefaultConfig())

	set, err := b.Build(context.Background(), testParameters(), difficulty.Buckets{Intermediate: 1})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	q := set[0]
	if q.ID == "" {
		t.Error("question ID not assigned")
	}
	if q.CorrectIndices[0] != 1 || q.CorrectIndices[1] != 3 {
		t.Errorf("CorrectIndices = %v, want sorted [1 3]", q.CorrectIndices)
	}
}
