package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jeevanlakshya/plan733/internal/output"
)

// Colors follow the brochure palette: navy panels with gold accents
var (
	ColorPrimary   = lipgloss.Color("#053A8A")
	ColorSecondary = lipgloss.Color("#BFA14A")
	ColorAccent    = lipgloss.Color("#FFD92E")
	ColorSuccess   = lipgloss.Color("#2E8B57")
	ColorDanger    = lipgloss.Color("#C0392B")
	ColorInfo      = lipgloss.Color("#5DADE2")

	ColorForeground = lipgloss.Color("#F5F5F5")
	ColorMuted      = lipgloss.Color("#8A8F98")
	ColorBorder     = lipgloss.Color("#BFA14A")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(lipgloss.Color("#1B2A49")).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorAccent).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	HeroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// MetricTrendStyle colours a change by direction
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// FormatCurrency renders rupees with Indian digit grouping
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
