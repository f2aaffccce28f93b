package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/Sahanajogi126/quizforge/internal/ui/theme"
)

// AnswerInput is a free-text answer field for fill-in-the-blank and
// short-answer questions.
type AnswerInput struct {
	Question  string
	Model     textinput.Model
	Submitted bool
}

// NewAnswerInput creates a focused text input under the question.
func NewAnswerInput(question, placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	return AnswerInput{
		Question: question,
		Model:    ti,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles typing and submission.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.Submitted {
		return a, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		a.Submitted = true
		return a, nil
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the question and input field.
func (a AnswerInput) View() string {
	return theme.Body.Bold(true).Render(a.Question) + "\n\n" + a.Model.View()
}

// Value returns the trimmed typed answer.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Matches reports whether the typed answer equals want, ignoring case
// and surrounding whitespace.
func (a AnswerInput) Matches(want string) bool {
	return strings.EqualFold(a.Value(), strings.TrimSpace(want))
}
