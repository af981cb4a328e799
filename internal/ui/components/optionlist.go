package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// OptionList renders the options of a choice question with cursor
// selection. Each option is addressed by its extracted token, so "B. RAM"
// answers to the B key and "(T) True" to T.
type OptionList struct {
	Options  []string
	Tokens   []string
	Selected int
}

// NewOptionList creates an option list for the given raw option strings.
func NewOptionList(options []string) OptionList {
	tokens := make([]string, len(options))
	for i, opt := range options {
		tokens[i] = quiz.ExtractToken(opt)
	}
	return OptionList{Options: options, Tokens: tokens}
}

// MoveUp moves the cursor up, clamped at the first option.
func (l *OptionList) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves the cursor down, clamped at the last option.
func (l *OptionList) MoveDown() {
	if l.Selected < len(l.Options)-1 {
		l.Selected++
	}
}

// SelectToken moves the cursor to the option whose token matches,
// case-insensitively. Returns false when no option matches.
func (l *OptionList) SelectToken(token string) bool {
	for i, t := range l.Tokens {
		if strings.EqualFold(t, token) {
			l.Selected = i
			return true
		}
	}
	return false
}

// SelectedToken returns the token of the option under the cursor, or ""
// for an empty list.
func (l OptionList) SelectedToken() string {
	if l.Selected < 0 || l.Selected >= len(l.Tokens) {
		return ""
	}
	return l.Tokens[l.Selected]
}

// View renders the list. Before grading, the cursor row is highlighted.
// After grading the list is locked: the correct option is green, a wrong
// chosen option is red, and the learner's pick keeps its marker.
func (l OptionList) View(locked bool, chosenAnswer, correctAnswer string) string {
	var b strings.Builder

	for i, opt := range l.Options {
		token := l.Tokens[i]

		if locked {
			marker := "  "
			if tokenMatches(token, chosenAnswer) {
				marker = "● "
			}
			line := fmt.Sprintf("%s%s", marker, opt)
			switch {
			case tokenMatches(token, correctAnswer):
				b.WriteString(theme.Correct.Render(line))
			case tokenMatches(token, chosenAnswer):
				b.WriteString(theme.Incorrect.Render(line))
			default:
				b.WriteString(theme.Unanswered.Render(line))
			}
		} else {
			marker := "  "
			if i == l.Selected {
				marker = "▸ "
			}
			line := fmt.Sprintf("%s%s", marker, opt)
			if i == l.Selected {
				b.WriteString(theme.Selected.Render(line))
			} else {
				b.WriteString(theme.Unselected.Render(line))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func tokenMatches(token, answer string) bool {
	return answer != "" && strings.EqualFold(strings.TrimSpace(token), strings.TrimSpace(answer))
}
