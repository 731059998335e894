package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/tui/components"
	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// GoalsModel lets the visitor pick one of the life goals
type GoalsModel struct {
	goals         []domain.Goal
	selectedIndex int
	width         int
	height        int
}

// NewGoalsModel creates the goals scene with the standard goal list
func NewGoalsModel() *GoalsModel {
	goals := make([]domain.Goal, len(domain.Goals))
	copy(goals, domain.Goals)
	return &GoalsModel{goals: goals}
}

// SetSize updates the scene dimensions
func (m *GoalsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedGoal returns the highlighted goal
func (m *GoalsModel) SelectedGoal() (domain.Goal, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.goals) {
		return domain.Goal{}, false
	}
	return m.goals[m.selectedIndex], true
}

// Update handles messages for the goals scene
func (m *GoalsModel) Update(msg tea.Msg) (*GoalsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.goals)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		goal, ok := m.SelectedGoal()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.GoalSelectedMsg{Goal: goal}
		}
	}

	return m, nil
}

// View renders the goal menu
func (m *GoalsModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SelectedItemStyle.Render("What are you planning for?"))
	content.WriteString("\n\n")
	content.WriteString(components.GoalList(m.goals, m.selectedIndex))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ move • enter select"))

	return tuistyles.BorderStyle.Render(content.String())
}
