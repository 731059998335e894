package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// HeroTagline is the headline shown on the home scene
const HeroTagline = "Plan today for the goals of tomorrow"

// HomeModel is the hero landing scene
type HomeModel struct {
	productName string
	sumAssured  decimal.Decimal
	loaded      bool
	width       int
	height      int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetProduct records the product edition being presented
func (m *HomeModel) SetProduct(name string, sumAssured decimal.Decimal) {
	m.productName = name
	m.sumAssured = sumAssured
	m.loaded = true
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	// Home scene is passive; enter is handled by the parent
	return m, nil
}

// View renders the hero
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.HeroStyle.Render("◉  " + HeroTagline + "  ◉"))
	content.WriteString("\n\n")

	if !m.loaded {
		content.WriteString(tuistyles.SubtitleStyle.Render("Loading product..."))
		return tuistyles.BorderStyle.Render(content.String())
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary)
	content.WriteString(nameStyle.Render(m.productName))
	content.WriteString("\n")
	content.WriteString(tuistyles.MetricLabelStyle.Render("Sum assured: "))
	content.WriteString(tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(m.sumAssured)))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("%s %s",
		tuistyles.HelpKeyStyle.Render("enter"),
		tuistyles.HelpDescStyle.Render("choose your goal")))

	return tuistyles.BorderStyle.Render(content.String())
}
