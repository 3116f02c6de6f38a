package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/session"
	"github.com/meera/lingua/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	switch s.phase {
	case phaseFeedback:
		return s.renderFeedback(width)
	case phaseSummary:
		return s.renderSummary(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	// Progress and countdown line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.q.Variant.DisplayName()))

	right := fmt.Sprintf("Q %d/%d", s.served+1, s.deps.Deck.Len())
	if s.q.TimeLimitSeconds > 0 {
		remaining := s.q.TimeLimitSeconds - int(s.sess.Elapsed().Seconds())
		if remaining < 0 {
			remaining = 0
		}
		right += fmt.Sprintf("  %d:%02d", remaining/60, remaining%60)
	}
	if s.sess.Attempts() > 0 {
		right += fmt.Sprintf("  attempt %d/%d", s.sess.Attempts()+1, s.q.AttemptLimit())
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.q.Prompt))
	b.WriteString("\n\n")

	// Input area.
	b.WriteString(s.renderInput(width))

	// Revealed hints.
	if revealed := s.sess.RevealedHints(); len(revealed) > 0 {
		b.WriteString("\n\n")
		for _, h := range revealed {
			text := h.Text
			if ai, ok := s.aiHints[h.Tier]; ok {
				text = ai
			}
			line := theme.Hint.Render(fmt.Sprintf("  Hint (%s, -%d): %s", h.Tier, h.Cost, text))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *QuizScreen) renderInput(width int) string {
	switch s.q.Variant {
	case question.MultipleChoice:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View())

	case question.FillBlank, question.TextInput:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())

	case question.DragDrop:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderBoard())

	case question.ImageBased:
		header := theme.Subtitle.Width(width).Render("Pick the matching region")
		if s.q.Mode == question.RegionMulti {
			header = theme.Subtitle.Width(width).Render("Toggle with space, submit with enter")
		}
		return header + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View())
	}
	return ""
}

// renderBoard shows the drag_drop targets with their placements so far,
// then the item selector for the current target.
func (s *QuizScreen) renderBoard() string {
	var b strings.Builder
	for i, target := range s.q.Targets {
		switch {
		case i < s.targetIdx:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
				Render(fmt.Sprintf("  %s → %s", target, s.placements[target])))
		case i == s.targetIdx:
			b.WriteString(theme.Selected.Render(fmt.Sprintf("▸ %s → ?", target)))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %s → ?", target)))
		}
		b.WriteString("\n")
	}

	if s.targetIdx < len(s.q.Targets) {
		b.WriteString("\n")
		b.WriteString(s.choice.View())
	}
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch s.feedback.Tier {
	case session.TierCorrect:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render(s.feedback.Encouragement))
	case session.TierPartial:
		b.WriteString(center.Foreground(theme.Partial).Bold(true).Render(s.feedback.Encouragement))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render(s.feedback.Encouragement))
	}
	b.WriteString("\n")

	if s.feedback.ScoreDisplay != "" {
		b.WriteString(center.Foreground(theme.Accent).Render(s.feedback.ScoreDisplay))
		b.WriteString("\n")
	}

	if res := s.sess.LastResult(); res != nil && res.TimedOut {
		b.WriteString(center.Foreground(theme.TextDim).Render("Time's up!"))
		b.WriteString("\n")
	}

	if s.feedback.CorrectAnswer != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", s.feedback.CorrectAnswer)))
		b.WriteString("\n")
	}

	if s.feedback.Explanation != "" && !s.retriable() {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.feedback.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	if s.milestone != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("Streak! " + s.milestone))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.retriable() {
		b.WriteString(center.Foreground(theme.TextDim).Render("Enter to try again, H for a hint, S to skip."))
		if s.feedback.HintSuggestion != "" {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).Render(s.feedback.HintSuggestion))
		}
	} else {
		b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	}

	return b.String()
}

func (s *QuizScreen) renderSummary(width int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Run complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("Questions answered: %d", s.served)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Success).
		Render(fmt.Sprintf("Correct: %d", s.correct)))
	b.WriteString("\n")

	if s.deps.Gamify != nil {
		b.WriteString(center.Foreground(theme.Accent).
			Render(fmt.Sprintf("Points earned: %d", s.deps.Gamify.PointsEarned)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to finish."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this run early?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your progress so far is saved."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, end run"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// fillBlankPlaceholder tells the learner how to enter multiple blanks.
func fillBlankPlaceholder(q *question.Question) string {
	if question.CountBlanks(q.Prompt) > 1 {
		return "Fill the blanks, separated by commas..."
	}
	return "Fill the blank..."
}
