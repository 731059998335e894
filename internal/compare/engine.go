package compare

import (
	"fmt"
	"slices"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/quote"
)

// CompareEngine orchestrates term comparison
type CompareEngine struct {
	QuoteEngine       *quote.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(engine *quote.Engine) *CompareEngine {
	return &CompareEngine{
		QuoteEngine:       engine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Product  string // label carried into the result
	BaseTerm int    // zero means the shortest offered term
	Terms    []int  // restrict to these terms; empty means every offered term
}

// CompareTerms quotes every requested term at an age and compares each
// against the base term
func (ce *CompareEngine) CompareTerms(age int, cfg domain.BonusConfig, options CompareOptions) (*ComparisonSet, error) {
	offered := ce.QuoteEngine.Table.TermsForAge(age)
	if len(offered) == 0 {
		return nil, domain.NewQuoteError(domain.UnknownAge, "compare_terms",
			fmt.Sprintf("age %d is not offered", age), nil)
	}

	terms := offered
	if len(options.Terms) > 0 {
		terms = uniqueTerms(options.Terms)
	}

	baseTerm := options.BaseTerm
	if baseTerm == 0 {
		baseTerm = terms[0]
	}

	baseQuote, err := ce.QuoteEngine.BuildQuote(age, baseTerm, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to quote base term %d: %w", baseTerm, err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(&baseQuote)

	alternatives := []ComparisonResult{}
	for _, term := range terms {
		if term == baseTerm {
			continue
		}
		q, err := ce.QuoteEngine.BuildQuote(age, term, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to quote term %d: %w", term, err)
		}
		result := ce.MetricsCalculator.CalculateMetrics(&q)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(result, baseResult))
	}

	compSet := &ComparisonSet{
		Product:            options.Product,
		Age:                age,
		BaseTerm:           baseTerm,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// uniqueTerms returns a sorted copy of terms without repeats
func uniqueTerms(terms []int) []int {
	out := slices.Clone(terms)
	slices.Sort(out)
	return slices.Compact(out)
}
