package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/tui/components"
	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// QuoteModel shows the premium and maturity estimate for a selection
type QuoteModel struct {
	goal    *domain.Goal
	quote   *domain.Quote
	display calculation.DisplayFigures
	width   int
	height  int
}

// NewQuoteModel creates an empty quote scene
func NewQuoteModel() *QuoteModel {
	return &QuoteModel{}
}

// SetQuote replaces the quote on display
func (m *QuoteModel) SetQuote(goal *domain.Goal, q domain.Quote, display calculation.DisplayFigures) {
	m.goal = goal
	m.quote = &q
	m.display = display
}

// Quote returns the quote on display, if any
func (m *QuoteModel) Quote() (domain.Quote, bool) {
	if m.quote == nil {
		return domain.Quote{}, false
	}
	return *m.quote, true
}

// SetSize updates the scene dimensions
func (m *QuoteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the quote scene
func (m *QuoteModel) Update(msg tea.Msg) (*QuoteModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quote == nil {
		return m, nil
	}

	if key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "b"))) {
		return m, func() tea.Msg { return tuimsg.ShowBenefitMsg{} }
	}
	return m, nil
}

// View renders the quote
func (m *QuoteModel) View() string {
	if m.quote == nil {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("No plan selected yet"))
	}
	q := m.quote

	var content strings.Builder

	header := fmt.Sprintf("Age %d • Term %d years", q.Age, q.Term)
	if m.goal != nil {
		header = fmt.Sprintf("%s (%s) • %s", m.goal.TitleGu, m.goal.Title, header)
	}
	content.WriteString(tuistyles.SelectedItemStyle.Render(header))
	content.WriteString("\n\n")

	maturity := q.EstimatedMaturity
	cards := []*components.MetricCard{
		components.NewMetricCard("Annual premium", tuistyles.FormatCurrency(q.AnnualPremium)).
			WithDescription(fmt.Sprintf("for %d years", q.PremiumPayingTerm)),
		components.NewMetricCard("Total premiums", tuistyles.FormatCurrency(q.TotalPremiumPaid)),
		components.NewMetricCard("Estimated maturity", tuistyles.FormatCurrency(maturity.TotalMaturity)).
			WithTrend(true, fmt.Sprintf("%sx of premiums paid", q.MaturityMultiple().StringFixed(2))).
			WithDescription(fmt.Sprintf("at age %d", q.MaturityAge())),
	}
	content.WriteString(components.MetricGrid(cards, 3))
	content.WriteString("\n\n")

	bar := components.NewProgressBar(q.PremiumPayingTerm, q.Term).
		WithLabel("Premium paying term within the policy term").
		WithWidth(q.Term * 2)
	content.WriteString(bar.Render())
	content.WriteString("\n\n")

	content.WriteString(tuistyles.MetricLabelStyle.Render("Installments"))
	content.WriteString("\n")
	for _, opt := range q.InstallmentOptions {
		line := fmt.Sprintf("  %-12s %s", opt.Mode.Label(), tuistyles.FormatCurrency(opt.Amount))
		if opt.IsApproximate {
			line += " (approx.)"
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(tuistyles.MetricLabelStyle.Render("Maturity breakdown"))
	content.WriteString("\n")
	content.WriteString(components.NewMetricCard("  Basic sum assured", tuistyles.FormatCurrency(maturity.BasicSumAssured)).RenderCompact())
	content.WriteString("\n")
	content.WriteString(components.NewMetricCard("  Reversionary bonus", tuistyles.FormatCurrency(maturity.SimpleReversionaryBonus)).RenderCompact())
	content.WriteString("\n")
	content.WriteString(components.NewMetricCard("  Final additional bonus", tuistyles.FormatCurrency(maturity.FinalAdditionalBonus)).RenderCompact())
	content.WriteString("\n\n")

	if !m.display.EstimatedMaturity.IsZero() {
		content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("Illustrated: %s premium, %s maturity (%s)",
			tuistyles.FormatCurrency(m.display.AnnualPremium),
			tuistyles.FormatCurrency(m.display.EstimatedMaturity),
			m.display.Source)))
		content.WriteString("\n")
	}
	content.WriteString(tuistyles.HelpDescStyle.Render("enter/b see benefit illustration • esc change selection"))

	return tuistyles.BorderStyle.Render(content.String())
}
