package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Sahanajogi126/quizforge/internal/quizgen"
	"github.com/Sahanajogi126/quizforge/internal/ui/components"
	"github.com/Sahanajogi126/quizforge/internal/ui/theme"
)

// playerModel steps through a quiz one question at a time, keeping a
// running score. Short-answer questions are reviewed, not scored: the
// model answer is shown for self-assessment.
type playerModel struct {
	items    []quizgen.QuestionItem
	index    int
	score    int
	scored   int
	choice   components.MultiChoice
	input    components.AnswerInput
	answered bool
	done     bool
}

func newPlayerModel(items []quizgen.QuestionItem) playerModel {
	m := playerModel{items: items}
	m.loadCurrent()
	return m
}

func (m *playerModel) loadCurrent() {
	item := m.items[m.index]
	switch item.Type {
	case quizgen.TypeMCQ:
		m.choice = components.NewMultiChoice(item.Question, item.Options, correctIndex(item))
	case quizgen.TypeTrueFalse:
		m.choice = components.NewMultiChoice(item.Question, []string{"True", "False"}, trueFalseIndex(item))
	default:
		m.input = components.NewAnswerInput(item.Question, "type your answer")
	}
	m.answered = false
}

func correctIndex(item quizgen.QuestionItem) int {
	for i, opt := range item.Options {
		if strings.EqualFold(opt, item.Answer) {
			return i
		}
	}
	return 0
}

func trueFalseIndex(item quizgen.QuestionItem) int {
	if strings.EqualFold(item.Answer, "False") {
		return 1
	}
	return 0
}

func (m playerModel) usesChoice() bool {
	t := m.items[m.index].Type
	return t == quizgen.TypeMCQ || t == quizgen.TypeTrueFalse
}

func (m playerModel) Init() tea.Cmd {
	if m.usesChoice() {
		return m.choice.Init()
	}
	return m.input.Init()
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey && kmsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.done {
		if isKey {
			return m, tea.Quit
		}
		return m, nil
	}

	// After an answer is revealed, any Enter advances.
	if m.answered {
		if isKey && kmsg.String() == "enter" {
			return m.advance()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.usesChoice() {
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			m.answered = true
			m.scored++
			if m.choice.IsCorrect() {
				m.score++
			}
		}
	} else {
		m.input, cmd = m.input.Update(msg)
		if m.input.Submitted {
			m.answered = true
			if m.items[m.index].Type == quizgen.TypeFillBlank {
				m.scored++
				if m.input.Matches(m.items[m.index].Answer) {
					m.score++
				}
			}
		}
	}
	return m, cmd
}

func (m playerModel) advance() (tea.Model, tea.Cmd) {
	if m.index+1 >= len(m.items) {
		m.done = true
		return m, nil
	}
	m.index++
	m.loadCurrent()
	return m, m.Init()
}

func (m playerModel) View() tea.View {
	v := tea.NewView("")

	if m.done {
		v.SetContent(theme.Card.Render(fmt.Sprintf(
			"%s\n\nScore: %d / %d scored questions\n\n%s",
			theme.Title.Render("Quiz complete!"),
			m.score, m.scored,
			theme.Hint.Render("Press any key to exit"),
		)))
		return v
	}

	header := theme.Title.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.items)))

	var body string
	if m.usesChoice() {
		body = m.choice.View()
	} else {
		body = m.input.View()
	}

	var footer string
	switch {
	case m.answered && m.usesChoice():
		footer = theme.Hint.Render("Enter to continue")
	case m.answered:
		item := m.items[m.index]
		verdict := ""
		if item.Type == quizgen.TypeFillBlank {
			if m.input.Matches(item.Answer) {
				verdict = theme.Correct.Render("Correct!") + "\n"
			} else {
				verdict = theme.Wrong.Render("Not quite.") + "\n"
			}
		}
		footer = verdict + theme.Body.Render("Answer: "+item.Answer) + "\n" + theme.Hint.Render("Enter to continue")
	default:
		footer = theme.Hint.Render("Enter to submit · Ctrl+C to quit")
	}

	v.SetContent(header + "\n\n" + body + "\n" + footer)
	return v
}

// Play runs the interactive quiz player over items.
func Play(items []quizgen.QuestionItem) error {
	if len(items) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	p := tea.NewProgram(newPlayerModel(items))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run quiz player: %w", err)
	}
	return nil
}
