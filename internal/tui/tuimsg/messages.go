package tuimsg

import (
	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
)

// GoalSelectedMsg signals the visitor picked a life goal
type GoalSelectedMsg struct {
	Goal domain.Goal
}

// SelectionCompleteMsg signals an age and term have both been chosen
type SelectionCompleteMsg struct {
	Age  int
	Term int
}

// QuoteReadyMsg carries a freshly built quote and its headline figures
type QuoteReadyMsg struct {
	Quote   domain.Quote
	Display calculation.DisplayFigures
	Err     error
}

// ShowBenefitMsg asks for the benefit illustration of the current quote
type ShowBenefitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// DeathYearChangedMsg asks for the benefit illustration to be redrawn
// for a different policy year of death
type DeathYearChangedMsg struct {
	Year int
}
