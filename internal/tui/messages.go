package tui

import (
	"time"

	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/scoring"
)

// setReadyMsg is sent when question generation finishes.
type setReadyMsg struct {
	Set quiz.QuestionSet
	Err error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// scoredMsg is sent when the finished session has been evaluated.
type scoredMsg struct {
	Result *scoring.Result
	Err    error
}
