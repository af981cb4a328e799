package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	idx := s.sess.Current()
	q := s.sess.CurrentQuestion()
	answered := s.sess.IsAnswered(idx)

	var b strings.Builder

	// Status line: kind tag left, progress right.
	kindTag := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  [%s]", q.Kind.Display()))

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d · Score %d · Answered %d",
			idx+1, s.sess.Len(), s.sess.Score(), s.sess.AnsweredCount()))

	pad := width - lipgloss.Width(kindTag) - lipgloss.Width(progress) - 4
	line := kindTag
	if pad > 0 {
		line += strings.Repeat(" ", pad) + progress
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Answer area.
	if q.Kind.HasOptions() {
		chosen, _ := s.sess.Answer(idx)
		block := s.opts.View(answered, chosen, q.Answer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	} else if answered {
		chosen, _ := s.sess.Answer(idx)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Your answer: %s", strings.TrimSpace(chosen))))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n")

	// Feedback panel once graded.
	if answered {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(idx, width))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(idx, width int) string {
	q := s.sess.CurrentQuestion()

	var b strings.Builder

	if s.sess.StatusAt(idx) == session.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Correct!  +%d", session.PointsPerCorrect)))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Incorrect — correct answer: %s", q.Answer)))
	}

	if expl := s.explanations[idx]; expl != nil {
		b.WriteString("\n\n")
		note := expl.Explanation
		if expl.MemoryHook != "" {
			note += "\n\n" + theme.Hint.Render(expl.MemoryHook)
		}
		card := theme.Card.Width(min(width-8, 72)).Render(note)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	} else if s.requested[idx] && s.reviewSvc != nil && s.reviewSvc.Pending(idx) {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Thinking about an explanation..."))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("End this session?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Unanswered questions stay unanswered."))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render("[Y] End session    [N] Keep going"))
	return b.String()
}
