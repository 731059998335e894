package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/tui/tuistyles"
)

// GoalCard shows one life goal with its Gujarati title
type GoalCard struct {
	Goal       domain.Goal
	IsSelected bool
	Width      int
}

// NewGoalCard creates a card for a goal
func NewGoalCard(goal domain.Goal) *GoalCard {
	return &GoalCard{Goal: goal, Width: 36}
}

// SetSelected marks the card as highlighted
func (g *GoalCard) SetSelected(selected bool) *GoalCard {
	g.IsSelected = selected
	return g
}

// WithWidth sets the card width
func (g *GoalCard) WithWidth(width int) *GoalCard {
	g.Width = width
	return g
}

// Render returns the bordered card
func (g *GoalCard) Render() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorAccent).Render(g.Goal.TitleGu)
	sub := tuistyles.SubtitleStyle.Render(g.Goal.Title)

	border := tuistyles.ColorBorder
	if g.IsSelected {
		border = tuistyles.ColorAccent
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(g.Width).
		Render(title + "\n" + sub)
}

// RenderCompact returns a single line
func (g *GoalCard) RenderCompact() string {
	return fmt.Sprintf("%s (%s)", g.Goal.TitleGu, g.Goal.Title)
}

// GoalList renders goals as a selectable menu
func GoalList(goals []domain.Goal, selectedIndex int) string {
	if len(goals) == 0 {
		return tuistyles.InfoStyle.Render("No goals available")
	}

	rendered := make([]string, len(goals))
	for i, goal := range goals {
		card := NewGoalCard(goal).SetSelected(i == selectedIndex)
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix + card.RenderCompact())
	}

	return strings.Join(rendered, "\n")
}
