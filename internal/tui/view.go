package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneGoals:
		content = m.goalsModel.View()
	case SceneSelection:
		content = m.selectionModel.View()
	case SceneQuote:
		content = m.quoteModel.View()
	case SceneBenefit:
		content = m.benefitModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4 // title (2) + status (1) + padding (1)
	if contentHeight < 0 {
		contentHeight = 0
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the product title and breadcrumb
func (m Model) renderTitleBar() string {
	name := "Jeevan Lakshya 733"
	if m.product != nil && m.product.Name != "" {
		name = m.product.Name
	}
	title := TitleStyle.Render(name)

	crumbs := []string{m.currentScene.String()}
	if m.goal != nil && m.currentScene != SceneHome {
		crumbs = append(crumbs, m.goal.Title)
	}
	if m.age > 0 && (m.currentScene == SceneQuote || m.currentScene == SceneBenefit) {
		crumbs = append(crumbs, fmt.Sprintf("age %d", m.age), fmt.Sprintf("%d years", m.term))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(strings.Join(crumbs, " / ")))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneHome {
		shortcuts = append(shortcuts, formatShortcut(globalKeys.Start.Help().Key, globalKeys.Start.Help().Desc))
	}
	for _, b := range globalKeys.shortHelp() {
		shortcuts = append(shortcuts, formatShortcut(b.Help().Key, b.Help().Desc))
	}

	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	return ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"enter", "start / choose / reveal"},
		{"↑/↓ j/k", "move through lists"},
		{"backspace", "change age while picking a term"},
		{"b", "benefit illustration from the quote"},
		{"→/←", "reveal or hide benefit stages"},
		{"+/-", "change the policy year of death"},
		{"r", "restart the benefit reveal"},
		{"?", "show this help"},
		{"esc", "go back"},
		{"q/ctrl+c", "quit"},
	}

	var content strings.Builder
	content.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	content.WriteString("\n\n")
	for _, r := range rows {
		content.WriteString(HelpKeyStyle.Width(12).Render(r[0]))
		content.WriteString(HelpDescStyle.Render(r[1]))
		content.WriteString("\n")
	}

	return BorderStyle.Render(content.String())
}
