package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// MaxBenefitStage is the last reveal step of the benefit illustration
const MaxBenefitStage = 3

// Stage headlines, revealed in order
const (
	StagePremiumsStop = "Premiums stop"
	StageIncome       = "10% SA every year"
	StageMaturity     = "110% SA + Bonus"
)

// BenefitModel reveals what the family receives if the life assured dies
type BenefitModel struct {
	illustration *calculation.DeathBenefitIllustration
	stage        int
	width        int
	height       int
}

// NewBenefitModel creates an empty benefit scene
func NewBenefitModel() *BenefitModel {
	return &BenefitModel{}
}

// SetIllustration replaces the illustration and restarts the reveal
func (m *BenefitModel) SetIllustration(ill calculation.DeathBenefitIllustration) {
	m.illustration = &ill
	m.stage = 0
}

// Stage returns the current reveal step, 0 to MaxBenefitStage
func (m *BenefitModel) Stage() int {
	return m.stage
}

// DeathYear returns the illustrated policy year of death, 0 when empty
func (m *BenefitModel) DeathYear() int {
	if m.illustration == nil {
		return 0
	}
	return m.illustration.DeathYear
}

// SetSize updates the scene dimensions
func (m *BenefitModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the benefit scene
func (m *BenefitModel) Update(msg tea.Msg) (*BenefitModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.illustration == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "enter", " ", "space"))):
		if m.stage < MaxBenefitStage {
			m.stage++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
		if m.stage > 0 {
			m.stage--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
		m.stage = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("+", "="))):
		return m, m.changeYear(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("-"))):
		return m, m.changeYear(-1)
	}

	return m, nil
}

func (m *BenefitModel) changeYear(delta int) tea.Cmd {
	year := m.illustration.DeathYear + delta
	if year < 1 || year > m.illustration.Term {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.DeathYearChangedMsg{Year: year}
	}
}

// View renders the stages revealed so far
func (m *BenefitModel) View() string {
	if m.illustration == nil {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("No plan selected yet"))
	}
	ill := m.illustration

	var content strings.Builder
	content.WriteString(tuistyles.SelectedItemStyle.Render(
		fmt.Sprintf("If death occurs in policy year %d of %d", ill.DeathYear, ill.Term)))
	content.WriteString("\n\n")

	stageStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorAccent)
	pending := tuistyles.HelpDescStyle

	steps := []struct {
		title  string
		detail string
	}{
		{StagePremiumsStop, fmt.Sprintf("Future premiums of %s are waived", tuistyles.FormatCurrency(ill.PremiumsWaived))},
		{StageIncome, m.incomeDetail()},
		{StageMaturity, fmt.Sprintf("On the decided date the family receives %s", tuistyles.FormatCurrency(ill.MaturityBenefit.TotalMaturity))},
	}

	for i, step := range steps {
		n := i + 1
		if n > m.stage {
			content.WriteString(pending.Render(fmt.Sprintf("%d. ...", n)))
			content.WriteString("\n")
			continue
		}
		content.WriteString(stageStyle.Render(fmt.Sprintf("%d. %s", n, step.title)))
		content.WriteString("\n   ")
		content.WriteString(step.detail)
		content.WriteString("\n")
	}

	if m.stage == MaxBenefitStage {
		content.WriteString("\n")
		content.WriteString(tuistyles.MetricLabelStyle.Render("Total benefit: "))
		content.WriteString(tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(ill.TotalBenefit)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("→ reveal • ← back • +/- policy year • r restart"))

	return tuistyles.BorderStyle.Render(content.String())
}

func (m *BenefitModel) incomeDetail() string {
	ill := m.illustration
	if len(ill.IncomeSchedule) == 0 {
		return "No income years remain before maturity"
	}
	first := ill.IncomeSchedule[0].PolicyYear
	last := ill.IncomeSchedule[len(ill.IncomeSchedule)-1].PolicyYear
	return fmt.Sprintf("%s a year from year %d to %d (%s in all)",
		tuistyles.FormatCurrency(ill.AnnualIncomeBenefit), first, last,
		tuistyles.FormatCurrency(ill.TotalIncomeBenefit))
}
