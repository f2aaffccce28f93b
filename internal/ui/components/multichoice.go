package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sahanajogi126/quizforge/internal/ui/theme"
)

// MultiChoice is an option selector for MCQ and true/false questions.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new option selector.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the question with its labeled options.
func (m MultiChoice) View() string {
	s := theme.Body.Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += theme.Wrong.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
