package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// MetricCard displays a single figure with label, value, and optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend annotates a figure with a direction and a short note
type Trend struct {
	IsPositive bool
	Change     string // e.g. "2.01x of premiums paid"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 30,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{
		IsPositive: isPositive,
		Change:     change,
	}
	return m
}

// WithDescription adds a description line under the value
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) trendLine(sep string) string {
	if m.Trend == nil {
		return ""
	}
	arrow := tuistyles.TrendIndicator(m.Trend.IsPositive)
	return sep + tuistyles.MetricTrendStyle(m.Trend.IsPositive).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)

	var desc string
	if m.Description != "" {
		desc = "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + m.trendLine("\n") + desc)
}

// RenderCompact returns a single line without border
func (m *MetricCard) RenderCompact() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label + ":")
	value := tuistyles.MetricValueStyle.Render(m.Value)
	return label + " " + value + m.trendLine(" ")
}

// MetricGrid lays cards out in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
