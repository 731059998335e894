package compare

import (
	"testing"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

func testQuote(term int, annual, maturity int64) *domain.Quote {
	ppt := term - 3
	ap := decimal.NewFromInt(annual)
	return &domain.Quote{
		Age:               25,
		Term:              term,
		PremiumPayingTerm: ppt,
		SumAssured:        decimal.NewFromInt(200000),
		AnnualPremium:     ap,
		TotalPremiumPaid:  ap.Mul(decimal.NewFromInt(int64(ppt))),
		EstimatedMaturity: domain.NewMaturityBreakdown(
			decimal.NewFromInt(200000),
			decimal.NewFromInt(maturity-200000),
			decimal.Zero,
		),
	}
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	result := calc.CalculateMetrics(testQuote(20, 11428, 390000))

	if result.Term != 20 {
		t.Errorf("Expected term 20, got %d", result.Term)
	}
	if result.MaturityAge != 45 {
		t.Errorf("Expected maturity age 45, got %d", result.MaturityAge)
	}
	if !result.TotalPremiumPaid.Equal(decimal.NewFromInt(194276)) {
		t.Errorf("Expected total paid 194276, got %s", result.TotalPremiumPaid)
	}
	if !result.TotalBonus.Equal(decimal.NewFromInt(190000)) {
		t.Errorf("Expected total bonus 190000, got %s", result.TotalBonus)
	}
	if !result.MaturityMultiple.Equal(decimal.RequireFromString("2.01")) {
		t.Errorf("Expected multiple 2.01, got %s", result.MaturityMultiple)
	}
	if result.Quote == nil {
		t.Error("Expected quote to be kept")
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := calc.CalculateMetrics(testQuote(13, 21182, 317000))
	alt := calc.CalculateMetrics(testQuote(25, 8262, 435000))

	result := calc.CalculateComparison(alt, base)

	if !result.PremiumDiffFromBase.Equal(decimal.NewFromInt(-12920)) {
		t.Errorf("Expected premium diff -12920, got %s", result.PremiumDiffFromBase)
	}
	// 181764 - 211820
	if !result.TotalPaidDiffFromBase.Equal(decimal.NewFromInt(-30056)) {
		t.Errorf("Expected total paid diff -30056, got %s", result.TotalPaidDiffFromBase)
	}
	if !result.MaturityDiffFromBase.Equal(decimal.NewFromInt(118000)) {
		t.Errorf("Expected maturity diff 118000, got %s", result.MaturityDiffFromBase)
	}
	if result.MaturityPctFromBase.StringFixed(2) != "37.22" {
		t.Errorf("Expected maturity pct 37.22, got %s", result.MaturityPctFromBase.StringFixed(2))
	}
}

func TestMetricsCalculator_CalculateComparison_ZeroBase(t *testing.T) {
	calc := NewMetricsCalculator()

	result := calc.CalculateComparison(ComparisonResult{TotalMaturity: decimal.NewFromInt(100)}, ComparisonResult{})

	if !result.MaturityPctFromBase.IsZero() {
		t.Errorf("Expected zero pct for zero base, got %s", result.MaturityPctFromBase)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	calc := NewMetricsCalculator()
	base := calc.CalculateMetrics(testQuote(13, 21182, 317000))
	alt := calc.CalculateComparison(calc.CalculateMetrics(testQuote(25, 8262, 435000)), base)

	compSet := &ComparisonSet{
		BaseTerm:           13,
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{alt},
	}

	recs := GenerateRecommendations(compSet)
	if len(recs) != 4 {
		t.Fatalf("Expected 4 recommendations, got %d: %v", len(recs), recs)
	}
	if recs[0] != "Lowest Premium: 25 years costs 12920 less each year than 13 years" {
		t.Errorf("Unexpected premium recommendation: %s", recs[0])
	}
	if recs[2] != "Highest Maturity: 25 years pays 118000 more at maturity than 13 years" {
		t.Errorf("Unexpected maturity recommendation: %s", recs[2])
	}
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	calc := NewMetricsCalculator()
	base := calc.CalculateMetrics(testQuote(20, 11428, 390000))

	recs := GenerateRecommendations(&ComparisonSet{BaseResult: &base})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations, got %v", recs)
	}
}

func TestGenerateRecommendations_BaseIsBest(t *testing.T) {
	calc := NewMetricsCalculator()
	base := calc.CalculateMetrics(testQuote(25, 8262, 435000))
	alt := calc.CalculateComparison(calc.CalculateMetrics(testQuote(13, 21182, 317000)), base)

	recs := GenerateRecommendations(&ComparisonSet{BaseResult: &base, AlternativeResults: []ComparisonResult{alt}})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations when base wins everything, got %v", recs)
	}
}
