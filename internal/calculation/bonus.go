package calculation

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// Estimate computes the maturity benefit for a policy.
//
// The reversionary bonus accrues for every policy year of the full term,
// not only the premium paying years. FAB is a step: the full rate once the
// term reaches the configured minimum, otherwise exactly zero.
func Estimate(sumAssured decimal.Decimal, term, premiumPayingTerm int, cfg domain.BonusConfig) (domain.MaturityBreakdown, error) {
	if term < domain.MinimumTerm {
		return domain.MaturityBreakdown{}, domain.NewQuoteError(domain.InvalidTerm, "estimate",
			fmt.Sprintf("term %d is below the minimum term %d", term, domain.MinimumTerm), nil)
	}
	if premiumPayingTerm != domain.PremiumPayingTerm(term) {
		return domain.MaturityBreakdown{}, domain.NewQuoteError(domain.InvalidTerm, "estimate",
			fmt.Sprintf("premium paying term %d does not match term %d (expected %d)",
				premiumPayingTerm, term, domain.PremiumPayingTerm(term)), nil)
	}
	if !sumAssured.IsPositive() {
		return domain.MaturityBreakdown{}, domain.NewQuoteError(domain.InvalidSumAssured, "estimate",
			fmt.Sprintf("sum assured must be positive, got %s", sumAssured.String()), nil)
	}
	if err := cfg.Validate(); err != nil {
		return domain.MaturityBreakdown{}, err
	}

	return domain.NewMaturityBreakdown(
		sumAssured,
		ReversionaryBonus(sumAssured, term, cfg),
		FinalAdditionalBonus(sumAssured, term, cfg),
	), nil
}

// EstimateTotal is the single-number shortcut used by headline displays.
// It goes through Estimate so the two paths cannot disagree.
func EstimateTotal(sumAssured decimal.Decimal, term int, cfg domain.BonusConfig) (decimal.Decimal, error) {
	m, err := Estimate(sumAssured, term, domain.PremiumPayingTerm(term), cfg)
	if err != nil {
		return decimal.Zero, err
	}
	return m.TotalMaturity, nil
}

// ReversionaryBonus is sumAssured/1000 * rate * years
func ReversionaryBonus(sumAssured decimal.Decimal, years int, cfg domain.BonusConfig) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	return sumAssured.
		Mul(cfg.ReversionaryBonusRatePerThousandPerYear).
		Mul(decimal.NewFromInt(int64(years))).
		Div(thousand)
}

// FinalAdditionalBonus is sumAssured/1000 * FAB rate for qualifying terms
func FinalAdditionalBonus(sumAssured decimal.Decimal, term int, cfg domain.BonusConfig) decimal.Decimal {
	if term < cfg.FinalAdditionalBonusMinimumTerm {
		return decimal.Zero
	}
	return sumAssured.Mul(cfg.FinalAdditionalBonusRatePerThousand).Div(thousand)
}
