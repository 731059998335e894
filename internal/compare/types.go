package compare

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one term's quote reduced to the figures that matter
// when choosing between terms
type ComparisonResult struct {
	Term              int           `json:"term"`
	PremiumPayingTerm int           `json:"premiumPayingTerm"`
	MaturityAge       int           `json:"maturityAge"`
	Quote             *domain.Quote `json:"-"`

	// Key Metrics
	AnnualPremium    decimal.Decimal `json:"annualPremium"`
	TotalPremiumPaid decimal.Decimal `json:"totalPremiumPaid"`
	TotalBonus       decimal.Decimal `json:"totalBonus"`
	TotalMaturity    decimal.Decimal `json:"totalMaturity"`
	MaturityMultiple decimal.Decimal `json:"maturityMultiple"`

	// Comparison to Base
	PremiumDiffFromBase   decimal.Decimal `json:"premiumDiffFromBase"`
	TotalPaidDiffFromBase decimal.Decimal `json:"totalPaidDiffFromBase"`
	MaturityDiffFromBase  decimal.Decimal `json:"maturityDiffFromBase"`
	MaturityPctFromBase   decimal.Decimal `json:"maturityPctFromBase"`
	MultipleDiffFromBase  decimal.Decimal `json:"multipleDiffFromBase"`
}

// Label names the result for display
func (r ComparisonResult) Label() string {
	return fmt.Sprintf("%d years", r.Term)
}

// ComparisonSet is every term offered at one age compared against a base term
type ComparisonSet struct {
	Product            string             `json:"product"`
	Age                int                `json:"age"`
	BaseTerm           int                `json:"baseTerm"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts key metrics from quotes
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a quote
func (mc *MetricsCalculator) CalculateMetrics(q *domain.Quote) ComparisonResult {
	return ComparisonResult{
		Term:              q.Term,
		PremiumPayingTerm: q.PremiumPayingTerm,
		MaturityAge:       q.MaturityAge(),
		Quote:             q,
		AnnualPremium:     q.AnnualPremium,
		TotalPremiumPaid:  q.TotalPremiumPaid,
		TotalBonus:        q.EstimatedMaturity.TotalBonus(),
		TotalMaturity:     q.EstimatedMaturity.TotalMaturity,
		MaturityMultiple:  q.MaturityMultiple(),
	}
}

// CalculateComparison computes deltas between a term and the base term
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.PremiumDiffFromBase = alt.AnnualPremium.Sub(base.AnnualPremium)
	alt.TotalPaidDiffFromBase = alt.TotalPremiumPaid.Sub(base.TotalPremiumPaid)
	alt.MaturityDiffFromBase = alt.TotalMaturity.Sub(base.TotalMaturity)

	if !base.TotalMaturity.IsZero() {
		alt.MaturityPctFromBase = alt.MaturityDiffFromBase.
			Div(base.TotalMaturity).
			Mul(decimal.NewFromInt(100))
	}

	alt.MultipleDiffFromBase = alt.MaturityMultiple.Sub(base.MaturityMultiple)
	return alt
}

// GenerateRecommendations points out the terms that beat the base on
// premium, total outlay, maturity and maturity multiple
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	pick := func(better func(a, b *ComparisonResult) bool) *ComparisonResult {
		best := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if better(alt, best) {
				best = alt
			}
		}
		return best
	}

	if lowest := pick(func(a, b *ComparisonResult) bool { return a.AnnualPremium.LessThan(b.AnnualPremium) }); lowest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Premium: %s costs %s less each year than %s",
				lowest.Label(), base.AnnualPremium.Sub(lowest.AnnualPremium).StringFixed(0), base.Label()))
	}

	if cheapest := pick(func(a, b *ComparisonResult) bool { return a.TotalPremiumPaid.LessThan(b.TotalPremiumPaid) }); cheapest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Outlay: %s needs %s less in total premiums than %s",
				cheapest.Label(), base.TotalPremiumPaid.Sub(cheapest.TotalPremiumPaid).StringFixed(0), base.Label()))
	}

	if highest := pick(func(a, b *ComparisonResult) bool { return a.TotalMaturity.GreaterThan(b.TotalMaturity) }); highest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest Maturity: %s pays %s more at maturity than %s",
				highest.Label(), highest.TotalMaturity.Sub(base.TotalMaturity).StringFixed(0), base.Label()))
	}

	if best := pick(func(a, b *ComparisonResult) bool { return a.MaturityMultiple.GreaterThan(b.MaturityMultiple) }); best != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Value: %s returns %sx the premiums paid",
				best.Label(), best.MaturityMultiple.StringFixed(2)))
	}

	return recommendations
}
