package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// ProgressBar fills a bar in proportion to Current out of Total
type ProgressBar struct {
	Current   int
	Total     int
	Width     int
	Label     string
	ShowCount bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current:   current,
		Total:     total,
		Width:     40,
		ShowCount: true,
	}
}

// WithLabel sets the label printed above the bar
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the completion percentage
func (p *ProgressBar) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Current) / float64(p.Total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// IsComplete reports whether Current has reached Total
func (p *ProgressBar) IsComplete() bool {
	return p.Current >= p.Total
}

// Render returns the styled bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(tuistyles.MetricLabelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	filled := int(float64(p.Width) * p.Percentage() / 100)
	empty := p.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	content.WriteString("[")
	content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	content.WriteString("]")

	if p.ShowCount {
		content.WriteString(" ")
		content.WriteString(tuistyles.HelpDescStyle.Render(fmt.Sprintf("%d/%d", p.Current, p.Total)))
	}

	return content.String()
}
