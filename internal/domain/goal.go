package domain

import (
	"github.com/shopspring/decimal"
)

// Goal is a life goal a visitor can attach to a plan selection
type Goal struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	TitleGu string `yaml:"title_gu" json:"titleGu"`
}

// Goals lists the selectable goals in display order
var Goals = []Goal{
	{ID: "goals", Title: "Life Goals", TitleGu: "લક્ષ્યો"},
	{ID: "marriage", Title: "Marriage", TitleGu: "લગ્ન"},
	{ID: "study", Title: "Higher Studies", TitleGu: "અભ્યાસ"},
	{ID: "career", Title: "Career Goals", TitleGu: "કારકિર્દી"},
}

// FindGoal looks a goal up by id
func FindGoal(id string) (Goal, bool) {
	for _, g := range Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// DefaultBonusAssumptionNote accompanies payloads built from the local constants
const DefaultBonusAssumptionNote = "Based on local declared bonus constants (offline)"

// GoalPlanPayload is handed to the confirmation step after a visitor
// attaches a goal to a plan selection
type GoalPlanPayload struct {
	PlanID              string            `yaml:"plan_id" json:"planId"`
	GoalID              string            `yaml:"goal_id" json:"goalId"`
	Age                 int               `yaml:"age" json:"age"`
	Term                int               `yaml:"term" json:"term"`
	PPT                 int               `yaml:"ppt" json:"ppt"`
	SumAssured          decimal.Decimal   `yaml:"sum_assured" json:"sumAssured"`
	AnnualPremium       decimal.Decimal   `yaml:"annual_premium" json:"annualPremium"`
	TotalPaid           decimal.Decimal   `yaml:"total_paid" json:"totalPaid"`
	EstimatedMaturity   MaturityBreakdown `yaml:"estimated_maturity" json:"estimatedMaturity"`
	BonusAssumptionNote string            `yaml:"bonus_assumption_note" json:"bonusAssumptionNote"`
}
