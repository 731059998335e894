package tui

import (
	"github.com/jeevanlakshya/plan733/internal/config"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneGoals
	SceneSelection
	SceneQuote
	SceneBenefit
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProductLoadedMsg signals the product edition has been loaded
type ProductLoadedMsg struct {
	Product *config.Product
}
