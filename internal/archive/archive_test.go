package archive

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/nmehta/pharmaquiz/internal/scoring"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(sessionID string, score float64, completedAt time.Time) *scoring.Result {
	return &scoring.Result{
		SessionID:       sessionID,
		ProjectName:     "Oncology ATU Wave 3",
		ClientName:      "Acme Pharma",
		TherapyArea:     "Oncology",
		ExperienceLevel: 4,
		CompletedAt:     completedAt,
		TotalQuestions:  15,
		CorrectAnswers:  int(score * 15 / 100),
		Score:           score,
		Grade:           "C",
		Passed:          score >= 70,
		Categories: map[string]scoring.Breakdown{
			"Methodology": {Correct: 5, Total: 8, Percentage: 62.5},
		},
		Difficulties: map[string]scoring.Breakdown{
			"fundamental": {Correct: 7, Total: 8, Percentage: 87.5},
		},
		Recommendations: []string{},
	}
}

func TestSaveAndGetResult(t *testing.T) {
	s := testStore(t)
	want := testResult("sess-1", 73.3, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	if err := s.SaveResult(want); err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}
	got, err := s.GetResult("sess-1")
	if err != nil {
		t.Fatalf("GetResult error: %v", err)
	}
	if !reflect.DeepEqual(got.Categories, want.Categories) {
		t.Errorf("Categories = %v, want %v", got.Categories, want.Categories)
	}
	if got.Score != want.Score || got.Grade != want.Grade {
		t.Errorf("got score=%v grade=%s, want score=%v grade=%s", got.Score, got.Grade, want.Score, want.Grade)
	}
}

func TestGetResult_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.GetResult("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetResult = %v, want ErrNotFound", err)
	}
}

func TestSaveResult_ReplacesPrior(t *testing.T) {
	s := testStore(t)
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	if err := s.SaveResult(testResult("sess-1", 40.0, at)); err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}
	updated := testResult("sess-1", 80.0, at)
	updated.Grade = "B"
	if err := s.SaveResult(updated); err != nil {
		t.Fatalf("second SaveResult error: %v", err)
	}

	got, err := s.GetResult("sess-1")
	if err != nil {
		t.Fatalf("GetResult error: %v", err)
	}
	if got.Score != 80.0 {
		t.Errorf("Score = %v, want 80.0 after replace", got.Score)
	}
	list, err := s.ListResults()
	if err != nil {
		t.Fatalf("ListResults error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}
}

func TestListResults_NewestFirst(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		r := testResult(id, 70.0, base.Add(time.Duration(i)*time.Hour))
		if err := s.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%s) error: %v", id, err)
		}
	}

	list, err := s.ListResults()
	if err != nil {
		t.Fatalf("ListResults error: %v", err)
	}
	var ids []string
	for _, sm := range list {
		ids = append(ids, sm.SessionID)
	}
	want := []string{"new", "mid", "old"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}
