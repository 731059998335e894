package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// TermSource lists what the premium table offers
type TermSource interface {
	AvailableAges() []int
	TermsForAge(age int) []int
}

// SelectionModel picks an entry age, then a term offered at that age
type SelectionModel struct {
	source       TermSource
	ages         []int
	terms        []int
	ageIndex     int
	termIndex    int
	choosingTerm bool // an age is fixed and its terms are listed
	width        int
	height       int
}

// NewSelectionModel creates an empty selection scene
func NewSelectionModel() *SelectionModel {
	return &SelectionModel{}
}

// SetSource loads the ages offered by the table
func (m *SelectionModel) SetSource(source TermSource) {
	m.source = source
	m.ages = source.AvailableAges()
	m.Reset()
}

// Reset returns to the age list
func (m *SelectionModel) Reset() {
	m.ageIndex = 0
	m.termIndex = 0
	m.terms = nil
	m.choosingTerm = false
}

// SetSize updates the scene dimensions
func (m *SelectionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ChoosingTerm reports whether the term list is showing
func (m *SelectionModel) ChoosingTerm() bool {
	return m.choosingTerm
}

// SelectedAge returns the highlighted or fixed age
func (m *SelectionModel) SelectedAge() int {
	if m.ageIndex < 0 || m.ageIndex >= len(m.ages) {
		return 0
	}
	return m.ages[m.ageIndex]
}

// SelectedTerm returns the highlighted term, 0 before an age is fixed
func (m *SelectionModel) SelectedTerm() int {
	if !m.choosingTerm || m.termIndex < 0 || m.termIndex >= len(m.terms) {
		return 0
	}
	return m.terms[m.termIndex]
}

// Update handles messages for the selection scene
func (m *SelectionModel) Update(msg tea.Msg) (*SelectionModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.move(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		m.move(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("backspace", "left", "h"))):
		if m.choosingTerm {
			m.choosingTerm = false
			m.terms = nil
			m.termIndex = 0
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "right", "l"))):
		return m, m.confirm()
	}

	return m, nil
}

func (m *SelectionModel) move(delta int) {
	if m.choosingTerm {
		m.termIndex = clamp(m.termIndex+delta, len(m.terms))
		return
	}
	m.ageIndex = clamp(m.ageIndex+delta, len(m.ages))
}

func (m *SelectionModel) confirm() tea.Cmd {
	if m.source == nil || len(m.ages) == 0 {
		return nil
	}
	if !m.choosingTerm {
		m.terms = m.source.TermsForAge(m.SelectedAge())
		m.termIndex = 0
		m.choosingTerm = len(m.terms) > 0
		return nil
	}

	age, term := m.SelectedAge(), m.SelectedTerm()
	return func() tea.Msg {
		return tuimsg.SelectionCompleteMsg{Age: age, Term: term}
	}
}

func clamp(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// View renders the age list or the term list
func (m *SelectionModel) View() string {
	var content strings.Builder

	if len(m.ages) == 0 {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("No ages available"))
	}

	if !m.choosingTerm {
		content.WriteString(tuistyles.SelectedItemStyle.Render("Select your age"))
		content.WriteString("\n\n")
		content.WriteString(renderColumns(m.ages, m.ageIndex, "%2d yrs"))
		content.WriteString("\n\n")
		content.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ move • enter choose age"))
		return tuistyles.BorderStyle.Render(content.String())
	}

	content.WriteString(tuistyles.SelectedItemStyle.Render(fmt.Sprintf("Age %d: select a term", m.SelectedAge())))
	content.WriteString("\n\n")
	content.WriteString(renderColumns(m.terms, m.termIndex, "%2d years"))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ move • enter quote • backspace change age"))
	return tuistyles.BorderStyle.Render(content.String())
}

// renderColumns lays values out in columns of eight rows
func renderColumns(values []int, selected int, format string) string {
	const rows = 8
	cellStyle := lipgloss.NewStyle().Width(14)
	lines := make([]string, rows)
	for i, v := range values {
		prefix, style := "  ", tuistyles.UnselectedItemStyle
		if i == selected {
			prefix, style = "▸ ", tuistyles.SelectedItemStyle
		}
		cell := style.Render(prefix + fmt.Sprintf(format, v))
		lines[i%rows] += cellStyle.Render(cell)
	}

	var out []string
	for _, l := range lines {
		if l != "" {
			out = append(out, strings.TrimRight(l, " "))
		}
	}
	return strings.Join(out, "\n")
}
