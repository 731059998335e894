package compare

import (
	"testing"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/premium"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompareEngine() *CompareEngine {
	return NewCompareEngine(quote.NewEngine(premium.Brochure()))
}

func TestCompareTerms_AllTerms(t *testing.T) {
	ce := newCompareEngine()

	compSet, err := ce.CompareTerms(25, domain.DefaultBonusConfig(), CompareOptions{Product: "brochure"})
	require.NoError(t, err)

	assert.Equal(t, 25, compSet.Age)
	assert.Equal(t, 13, compSet.BaseTerm)
	assert.Equal(t, "brochure", compSet.Product)
	require.NotNil(t, compSet.BaseResult)
	assert.True(t, compSet.BaseResult.TotalMaturity.Equal(decimal.NewFromInt(317000)))

	require.Len(t, compSet.AlternativeResults, 6)
	var terms []int
	for _, alt := range compSet.AlternativeResults {
		terms = append(terms, alt.Term)
	}
	assert.Equal(t, []int{15, 16, 18, 20, 21, 25}, terms)

	last := compSet.AlternativeResults[5]
	assert.True(t, last.TotalMaturity.Equal(decimal.NewFromInt(435000)))
	assert.True(t, last.MaturityDiffFromBase.Equal(decimal.NewFromInt(118000)))
	assert.Len(t, compSet.Recommendations, 4)
}

func TestCompareTerms_Options(t *testing.T) {
	ce := newCompareEngine()

	compSet, err := ce.CompareTerms(30, domain.DefaultBonusConfig(), CompareOptions{BaseTerm: 20, Terms: []int{15, 20, 25}})
	require.NoError(t, err)

	assert.Equal(t, 20, compSet.BaseTerm)
	require.Len(t, compSet.AlternativeResults, 2)
	assert.Equal(t, 15, compSet.AlternativeResults[0].Term)
	assert.Equal(t, 25, compSet.AlternativeResults[1].Term)
}

func TestCompareTerms_RepeatedTermsCollapse(t *testing.T) {
	ce := newCompareEngine()
	requested := []int{20, 13, 20, 20}

	compSet, err := ce.CompareTerms(25, domain.DefaultBonusConfig(), CompareOptions{Terms: requested})
	require.NoError(t, err)

	assert.Equal(t, 13, compSet.BaseTerm)
	require.Len(t, compSet.AlternativeResults, 1)
	assert.Equal(t, 20, compSet.AlternativeResults[0].Term)
	assert.Equal(t, []int{20, 13, 20, 20}, requested, "caller's slice is left untouched")
}

func TestCompareTerms_UnsortedTermsAreOrdered(t *testing.T) {
	ce := newCompareEngine()

	compSet, err := ce.CompareTerms(25, domain.DefaultBonusConfig(), CompareOptions{Terms: []int{25, 15, 20}})
	require.NoError(t, err)

	assert.Equal(t, 15, compSet.BaseTerm)
	require.Len(t, compSet.AlternativeResults, 2)
	assert.Equal(t, 20, compSet.AlternativeResults[0].Term)
	assert.Equal(t, 25, compSet.AlternativeResults[1].Term)
}

func TestCompareTerms_Errors(t *testing.T) {
	ce := newCompareEngine()
	cfg := domain.DefaultBonusConfig()

	_, err := ce.CompareTerms(17, cfg, CompareOptions{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.UnknownAge))

	_, err = ce.CompareTerms(50, cfg, CompareOptions{Terms: []int{13, 25}})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.UnknownTerm))
	assert.Contains(t, err.Error(), "failed to quote term 25")
}
