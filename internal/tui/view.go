package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/scoring"
	"github.com/nmehta/pharmaquiz/internal/tui/components"
	"github.com/nmehta/pharmaquiz/internal/tui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch m.state {
	case stateSetup:
		v.SetContent(m.renderSetup())
	case stateGenerating:
		v.SetContent(m.renderGenerating())
	case stateQuestion:
		v.SetContent(m.renderQuestion())
	case stateResults:
		v.SetContent(m.renderResults())
	case stateError:
		v.SetContent(m.renderError())
	}
	return v
}

func (m Model) renderSetup() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz setup"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("tab next field · enter start"))
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(m.notice))
	}
	return b.String()
}

func (m Model) renderGenerating() string {
	frame := spinnerFrames[m.spinner]
	return "\n\n\n  " + theme.Subtitle.Render(fmt.Sprintf("%s Generating questions for %s...", frame, m.deps.Params.TherapyArea))
}

func (m Model) renderQuestion() string {
	q := m.sess.CurrentQuestion()
	idx := m.sess.CurrentIndex()
	total := len(m.sess.Questions())

	var b strings.Builder

	header := fmt.Sprintf("Question %d of %d", idx+1, total)
	b.WriteString(theme.Title.Render(header))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s · answered %d/%d",
		q.Category, q.Difficulty, m.sess.AnsweredCount(), total)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(m.choice.View())
	b.WriteString("\n")

	if q.Type == quiz.TypeMultiSelect {
		b.WriteString(theme.Hint.Render("space toggle · enter submit · ←/→ navigate · s skip · f finish"))
	} else {
		b.WriteString(theme.Hint.Render("enter submit · ←/→ navigate · s skip · f finish"))
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(m.notice))
	}

	return b.String()
}

func (m Model) renderResults() string {
	r := m.result
	var b strings.Builder

	b.WriteString(theme.Title.Render("Results"))
	b.WriteString("\n\n")

	verdict := theme.Correct.Render("PASSED")
	if !r.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}
	b.WriteString(fmt.Sprintf("%s  Score %.1f%%  Grade %s  (%d/%d correct)\n\n",
		verdict, r.Score, r.Grade, r.CorrectAnswers, r.TotalQuestions))

	b.WriteString(theme.Subtitle.Render("By category"))
	b.WriteString("\n")
	b.WriteString(renderBreakdowns(r.Categories, m.barWidth()))

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("By difficulty"))
	b.WriteString("\n")
	b.WriteString(renderBreakdowns(r.Difficulties, m.barWidth()))

	if len(r.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Focus areas"))
		b.WriteString("\n")
		for _, name := range r.Recommendations {
			b.WriteString(theme.Body.Render("  · "+name) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("q quit"))
	return b.String()
}

func (m Model) renderError() string {
	return "\n\n\n  " + theme.Incorrect.Render("Error: "+m.errMsg) +
		"\n\n  " + theme.Hint.Render("q quit")
}

func (m Model) barWidth() int {
	if m.width > 40 && m.width < 100 {
		return m.width - 10
	}
	return 60
}

func renderBreakdowns(groups map[string]scoring.Breakdown, width int) string {
	names := make([]string, 0, len(groups))
	maxLen := 0
	for name := range groups {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		g := groups[name]
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("  %-*s", maxLen, name),
			Percent:     g.Percentage,
			ShowPercent: true,
			Width:       width,
		}
		b.WriteString(bar.View())
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d/%d", g.Correct, g.Total)))
		b.WriteString("\n")
	}
	return b.String()
}
