package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeScenes()
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Scene)
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ProductLoadedMsg:
		m.loading = false
		m.product = msg.Product
		m.engine = msg.Product.NewEngine(m.logger)
		m.homeModel.SetProduct(msg.Product.Name, msg.Product.Table.SumAssured())
		m.selectionModel.SetSource(msg.Product.Table)
		m.resizeScenes()
		return m, nil

	case tuimsg.GoalSelectedMsg:
		goal := msg.Goal
		m.goal = &goal
		m.selectionModel.Reset()
		m.navigate(SceneSelection)
		return m, nil

	case tuimsg.SelectionCompleteMsg:
		if m.engine == nil {
			return m, nil
		}
		m.age, m.term = msg.Age, msg.Term
		return m, buildQuoteCmd(m.engine, m.product.Bonus, msg.Age, msg.Term)

	case tuimsg.QuoteReadyMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.quoteModel.SetQuote(m.goal, msg.Quote, msg.Display)
		m.deathYear = DefaultDeathYear
		m.navigate(SceneQuote)
		return m, nil

	case tuimsg.ShowBenefitMsg:
		if err := m.illustrate(m.deathYear); err != nil {
			m.err = err
			return m, nil
		}
		m.navigate(SceneBenefit)
		return m, nil

	case tuimsg.DeathYearChangedMsg:
		if err := m.illustrate(msg.Year); err != nil {
			m.err = err
		}
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// illustrate recomputes the benefit illustration for a policy year of death
func (m *Model) illustrate(year int) error {
	q, ok := m.quoteModel.Quote()
	if !ok || m.engine == nil {
		return nil
	}
	ill, err := m.engine.WhatIfDeath(q.Age, q.Term, year, m.product.Bonus)
	if err != nil {
		return err
	}
	m.deathYear = year
	m.benefitModel.SetIllustration(ill)
	return nil
}

func (m *Model) navigate(scene Scene) {
	if scene == m.currentScene {
		return
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
}

func (m *Model) resizeScenes() {
	h := m.height - 4
	m.homeModel.SetSize(m.width, h)
	m.goalsModel.SetSize(m.width, h)
	m.selectionModel.SetSize(m.width, h)
	m.quoteModel.SetSize(m.width, h)
	m.benefitModel.SetSize(m.width, h)
}

func navigateCmd(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.Quit) {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Help):
		if m.currentScene != SceneHelp {
			return m, navigateCmd(SceneHelp)
		}
		return m, nil

	case key.Matches(msg, globalKeys.Back):
		if m.currentScene == SceneHelp {
			return m, navigateCmd(m.previousScene)
		}
		if m.currentScene != SceneHome {
			return m, navigateCmd(m.currentScene.parent())
		}
		return m, nil

	case m.currentScene == SceneHome && key.Matches(msg, globalKeys.Start):
		return m, navigateCmd(SceneGoals)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates to the active scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneGoals:
		m.goalsModel, cmd = m.goalsModel.Update(msg)
	case SceneSelection:
		m.selectionModel, cmd = m.selectionModel.Update(msg)
	case SceneQuote:
		m.quoteModel, cmd = m.quoteModel.Update(msg)
	case SceneBenefit:
		m.benefitModel, cmd = m.benefitModel.Update(msg)
	}

	return m, cmd
}
