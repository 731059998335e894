package calculation

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	incomeBenefitRate   = decimal.RequireFromString("0.10")
	maturityOnDeathRate = decimal.RequireFromString("1.10")
)

// IncomeBenefitPayment is one annual income benefit instalment
type IncomeBenefitPayment struct {
	PolicyYear int             `json:"policyYear" yaml:"policy_year"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
}

// DeathBenefitIllustration shows what the family receives if the life
// assured dies during the term
type DeathBenefitIllustration struct {
	Age                 int                      `json:"age" yaml:"age"`
	Term                int                      `json:"term" yaml:"term"`
	DeathYear           int                      `json:"deathYear" yaml:"death_year"`
	PremiumsPaid        decimal.Decimal          `json:"premiumsPaid" yaml:"premiums_paid"`
	PremiumsWaived      decimal.Decimal          `json:"premiumsWaived" yaml:"premiums_waived"`
	AnnualIncomeBenefit decimal.Decimal          `json:"annualIncomeBenefit" yaml:"annual_income_benefit"`
	IncomeSchedule      []IncomeBenefitPayment   `json:"incomeSchedule" yaml:"income_schedule"`
	TotalIncomeBenefit  decimal.Decimal          `json:"totalIncomeBenefit" yaml:"total_income_benefit"`
	MaturityBenefit     domain.MaturityBreakdown `json:"maturityBenefit" yaml:"maturity_benefit"`
	TotalBenefit        decimal.Decimal          `json:"totalBenefit" yaml:"total_benefit"`
}

// WhatIfDeath illustrates a death in policy year deathYear (1-based).
// Premiums stop after that year. From the following year until one year
// before maturity the family receives 10% of sum assured annually, and on
// the maturity date 110% of sum assured plus the bonuses for the full term.
func WhatIfDeath(q domain.Quote, deathYear int, cfg domain.BonusConfig) (DeathBenefitIllustration, error) {
	if deathYear < 1 || deathYear > q.Term {
		return DeathBenefitIllustration{}, domain.NewQuoteError(domain.InvalidDeathYear, "what_if_death",
			fmt.Sprintf("death year %d outside policy years 1..%d", deathYear, q.Term), nil)
	}

	bonus, err := Estimate(q.SumAssured, q.Term, q.PremiumPayingTerm, cfg)
	if err != nil {
		return DeathBenefitIllustration{}, err
	}

	paidYears := deathYear
	if paidYears > q.PremiumPayingTerm {
		paidYears = q.PremiumPayingTerm
	}
	paid := q.AnnualPremium.Mul(decimal.NewFromInt(int64(paidYears)))

	annualIncome := q.SumAssured.Mul(incomeBenefitRate)
	var schedule []IncomeBenefitPayment
	for year := deathYear + 1; year <= q.Term-1; year++ {
		schedule = append(schedule, IncomeBenefitPayment{PolicyYear: year, Amount: annualIncome})
	}
	totalIncome := annualIncome.Mul(decimal.NewFromInt(int64(len(schedule))))

	maturity := domain.NewMaturityBreakdown(
		q.SumAssured.Mul(maturityOnDeathRate),
		bonus.SimpleReversionaryBonus,
		bonus.FinalAdditionalBonus,
	)

	return DeathBenefitIllustration{
		Age:                 q.Age,
		Term:                q.Term,
		DeathYear:           deathYear,
		PremiumsPaid:        paid,
		PremiumsWaived:      q.TotalPremiumPaid.Sub(paid),
		AnnualIncomeBenefit: annualIncome,
		IncomeSchedule:      schedule,
		TotalIncomeBenefit:  totalIncome,
		MaturityBenefit:     maturity,
		TotalBenefit:        totalIncome.Add(maturity.TotalMaturity),
	}, nil
}
