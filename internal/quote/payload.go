package quote

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
)

// BuildPayload attaches a goal to a plan selection for the confirmation step
func (e *Engine) BuildPayload(goalID string, age, term int, cfg domain.BonusConfig) (domain.GoalPlanPayload, error) {
	goal, ok := domain.FindGoal(goalID)
	if !ok {
		return domain.GoalPlanPayload{}, domain.NewQuoteError(domain.UnknownGoal, "build_payload",
			fmt.Sprintf("goal %q is not offered", goalID), nil)
	}

	q, err := e.BuildQuote(age, term, cfg)
	if err != nil {
		return domain.GoalPlanPayload{}, err
	}

	e.logger().Infof("payload built for goal %s age=%d term=%d", goal.ID, age, term)
	return PayloadFromQuote(goal.ID, q), nil
}

// PayloadFromQuote copies the quote figures into a hand-off payload
func PayloadFromQuote(goalID string, q domain.Quote) domain.GoalPlanPayload {
	return domain.GoalPlanPayload{
		PlanID:              domain.PlanID,
		GoalID:              goalID,
		Age:                 q.Age,
		Term:                q.Term,
		PPT:                 q.PremiumPayingTerm,
		SumAssured:          q.SumAssured,
		AnnualPremium:       q.AnnualPremium,
		TotalPaid:           q.TotalPremiumPaid,
		EstimatedMaturity:   q.EstimatedMaturity,
		BonusAssumptionNote: domain.DefaultBonusAssumptionNote,
	}
}
