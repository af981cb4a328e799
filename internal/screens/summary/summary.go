package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// Stats holds the final numbers shown on the summary screen.
type Stats struct {
	Score      int
	Total      int
	Answered   int
	Correct    int
	Incorrect  int
	Duration   time.Duration
	ReportPath string // last exported report, "" when none
}

// Accuracy returns the fraction of answered questions that were correct.
func (s Stats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	stats Stats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats Stats) *SummaryScreen {
	return &SummaryScreen{stats: stats}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(st.Duration.Minutes())
	secs := int(st.Duration.Seconds()) % 60
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Final score: %d", st.Score))
	b.WriteString(score)
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d        Answered: %d        Correct: %d        Incorrect: %d",
		st.Total, st.Answered, st.Correct, st.Incorrect)
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(stats))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("Accuracy: %.0f%%", st.Accuracy()*100)
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(accuracy))
	b.WriteString("\n\n")

	if st.ReportPath != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Wrong-answer report: %s", st.ReportPath)))
	} else if st.Incorrect > 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Tip: press e during a session to export a wrong-answer report"))
	}

	return b.String()
}
