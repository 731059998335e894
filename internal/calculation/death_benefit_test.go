package calculation

import (
	"testing"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() domain.Quote {
	ap := decimal.NewFromInt(11428)
	return domain.Quote{
		Age:               25,
		Term:              20,
		PremiumPayingTerm: 17,
		SumAssured:        brochureSA,
		AnnualPremium:     ap,
		TotalPremiumPaid:  ap.Mul(decimal.NewFromInt(17)),
	}
}

func TestWhatIfDeath_EarlyDeath(t *testing.T) {
	ill, err := WhatIfDeath(sampleQuote(), 5, domain.DefaultBonusConfig())
	require.NoError(t, err)

	assert.True(t, ill.PremiumsPaid.Equal(decimal.NewFromInt(57140)), "got %s", ill.PremiumsPaid)
	assert.True(t, ill.PremiumsWaived.Equal(decimal.NewFromInt(137136)), "got %s", ill.PremiumsWaived)
	assert.True(t, ill.AnnualIncomeBenefit.Equal(decimal.NewFromInt(20000)))

	require.Len(t, ill.IncomeSchedule, 14)
	assert.Equal(t, 6, ill.IncomeSchedule[0].PolicyYear)
	assert.Equal(t, 19, ill.IncomeSchedule[13].PolicyYear)
	assert.True(t, ill.TotalIncomeBenefit.Equal(decimal.NewFromInt(280000)))

	assert.True(t, ill.MaturityBenefit.BasicSumAssured.Equal(decimal.NewFromInt(220000)))
	assert.True(t, ill.MaturityBenefit.SimpleReversionaryBonus.Equal(decimal.NewFromInt(180000)))
	assert.True(t, ill.MaturityBenefit.FinalAdditionalBonus.Equal(decimal.NewFromInt(10000)))
	assert.True(t, ill.MaturityBenefit.TotalMaturity.Equal(decimal.NewFromInt(410000)))
	assert.True(t, ill.TotalBenefit.Equal(decimal.NewFromInt(690000)))
}

func TestWhatIfDeath_AfterPremiumPayingTerm(t *testing.T) {
	q := sampleQuote()
	ill, err := WhatIfDeath(q, 18, domain.DefaultBonusConfig())
	require.NoError(t, err)

	assert.True(t, ill.PremiumsPaid.Equal(q.TotalPremiumPaid))
	assert.True(t, ill.PremiumsWaived.IsZero())
	assert.Len(t, ill.IncomeSchedule, 1)
}

func TestWhatIfDeath_FinalYear(t *testing.T) {
	ill, err := WhatIfDeath(sampleQuote(), 20, domain.DefaultBonusConfig())
	require.NoError(t, err)

	assert.Empty(t, ill.IncomeSchedule)
	assert.True(t, ill.TotalIncomeBenefit.IsZero())
	assert.True(t, ill.TotalBenefit.Equal(ill.MaturityBenefit.TotalMaturity))
}

func TestWhatIfDeath_OutOfRange(t *testing.T) {
	for _, year := range []int{0, -1, 21} {
		_, err := WhatIfDeath(sampleQuote(), year, domain.DefaultBonusConfig())
		require.Error(t, err, "year %d", year)
		assert.True(t, domain.IsKind(err, domain.InvalidDeathYear))
	}
}
