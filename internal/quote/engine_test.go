package quote

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/premium"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrochureEngine() *Engine {
	return NewEngine(premium.Brochure())
}

func TestNewEngine(t *testing.T) {
	engine := newBrochureEngine()

	assert.NotNil(t, engine.Table)
	assert.NotNil(t, engine.Riders)
	assert.NotEmpty(t, engine.Illustrations)
	assert.IsType(t, NopLogger{}, engine.Logger)
	assert.False(t, engine.Multipliers.IsZero())
}

func TestEngine_SetLogger(t *testing.T) {
	engine := newBrochureEngine()

	custom := &recordingLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestBuildQuote_ConcreteScenario(t *testing.T) {
	engine := newBrochureEngine()

	q, err := engine.BuildQuote(25, 20, domain.DefaultBonusConfig())
	require.NoError(t, err)

	assert.Equal(t, 25, q.Age)
	assert.Equal(t, 20, q.Term)
	assert.Equal(t, 17, q.PremiumPayingTerm)
	assert.True(t, q.SumAssured.Equal(decimal.NewFromInt(200000)))
	assert.True(t, q.AnnualPremium.Equal(decimal.NewFromInt(11428)))
	// 11428 * 17
	assert.True(t, q.TotalPremiumPaid.Equal(decimal.NewFromInt(194276)), "got %s", q.TotalPremiumPaid)
	assert.True(t, q.EstimatedMaturity.TotalMaturity.Equal(decimal.NewFromInt(390000)))
	assert.Equal(t, 45, q.MaturityAge())
	assert.True(t, q.MaturityMultiple().Equal(decimal.RequireFromString("2.01")), "got %s", q.MaturityMultiple())

	require.Len(t, q.InstallmentOptions, 4)
	monthly, ok := q.Installment(domain.ModeMonthly)
	require.True(t, ok)
	assert.True(t, monthly.Amount.Equal(decimal.NewFromInt(971)))
}

func TestBuildQuote_EveryTablePair(t *testing.T) {
	table := premium.Brochure()
	engine := NewEngine(table)
	cfg := domain.DefaultBonusConfig()

	for _, entry := range table.Entries() {
		q, err := engine.BuildQuote(entry.Age, entry.Term, cfg)
		require.NoError(t, err, "age %d term %d", entry.Age, entry.Term)

		assert.True(t, q.AnnualPremium.Equal(entry.AnnualPremium), "brochure identity age %d term %d", entry.Age, entry.Term)
		assert.Equal(t, entry.Term-3, q.PremiumPayingTerm)
		assert.True(t, q.TotalPremiumPaid.Equal(entry.AnnualPremium.Mul(decimal.NewFromInt(int64(entry.Term-3)))))

		m := q.EstimatedMaturity
		assert.True(t, m.TotalMaturity.Equal(m.BasicSumAssured.Add(m.SimpleReversionaryBonus).Add(m.FinalAdditionalBonus)))

		annual, ok := q.Installment(domain.ModeAnnual)
		require.True(t, ok)
		assert.True(t, annual.Amount.Equal(q.AnnualPremium))
	}
}

func TestBuildQuote_Idempotent(t *testing.T) {
	engine := newBrochureEngine()
	cfg := domain.DefaultBonusConfig()

	a, err := engine.BuildQuote(40, 18, cfg)
	require.NoError(t, err)
	b, err := engine.BuildQuote(40, 18, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildQuote_Errors(t *testing.T) {
	engine := newBrochureEngine()
	cfg := domain.DefaultBonusConfig()

	tests := []struct {
		name string
		age  int
		term int
		cfg  domain.BonusConfig
		kind domain.ErrorKind
	}{
		{"age below youngest", 17, 20, cfg, domain.UnknownAge},
		{"age between listed ages", 26, 20, cfg, domain.UnknownAge},
		{"term not offered", 25, 19, cfg, domain.UnknownTerm},
		{"term past maturity cap", 50, 25, cfg, domain.UnknownTerm},
		{"negative bonus rate", 25, 20, domain.BonusConfig{
			ReversionaryBonusRatePerThousandPerYear: decimal.NewFromInt(-45),
		}, domain.InvalidBonusConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := engine.BuildQuote(tt.age, tt.term, tt.cfg)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tt.kind), "expected %s, got %v", tt.kind, err)
			assert.Equal(t, domain.Quote{}, q)
		})
	}
}

// brokenTable lists a term it cannot price
type brokenTable struct{}

func (brokenTable) AvailableAges() []int      { return []int{30} }
func (brokenTable) TermsForAge(age int) []int { return []int{20} }
func (brokenTable) PremiumFor(int, int) (decimal.Decimal, bool) {
	return decimal.Zero, false
}
func (brokenTable) SumAssured() decimal.Decimal { return decimal.NewFromInt(200000) }

func TestBuildQuote_TableInconsistency(t *testing.T) {
	engine := NewEngine(brokenTable{})
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.BuildQuote(30, 20, domain.DefaultBonusConfig())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.TableInconsistency))
	assert.NotEmpty(t, logger.errors)
}

func TestBuildQuote_CustomMultipliers(t *testing.T) {
	engine := newBrochureEngine()
	engine.Multipliers = domain.InstallmentMultipliers{
		HalfYearly: decimal.RequireFromString("0.5"),
		Quarterly:  decimal.RequireFromString("0.25"),
		Monthly:    decimal.RequireFromString("0.1"),
	}

	q, err := engine.BuildQuote(25, 20, domain.DefaultBonusConfig())
	require.NoError(t, err)
	half, _ := q.Installment(domain.ModeHalfYearly)
	assert.True(t, half.Amount.Equal(decimal.NewFromInt(5714)))
}

func TestBuildQuote_Concurrent(t *testing.T) {
	engine := newBrochureEngine()
	cfg := domain.DefaultBonusConfig()

	want, err := engine.BuildQuote(35, 21, cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.BuildQuote(35, 21, cfg)
			if err != nil {
				errs <- err
				return
			}
			if !got.TotalPremiumPaid.Equal(want.TotalPremiumPaid) {
				errs <- fmt.Errorf("total paid drifted: %s", got.TotalPremiumPaid)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestDisplay_UsesChain(t *testing.T) {
	table := premium.Brochure()
	pre, err := calculation.NewPrecomputedSource([]calculation.Illustration{
		{Age: 25, Term: 20, AnnualPremium: decimal.NewFromInt(11428), EstimatedMaturity: decimal.NewFromInt(401000)},
	})
	require.NoError(t, err)

	engine := NewEngine(table)
	engine.Illustrations = calculation.NewChain(pre, table)

	fig, err := engine.Display(25, 20, domain.DefaultBonusConfig())
	require.NoError(t, err)
	assert.Equal(t, calculation.SourcePrecomputed, fig.Source)
	assert.True(t, fig.EstimatedMaturity.Equal(decimal.NewFromInt(401000)))

	fig, err = engine.Display(25, 25, domain.DefaultBonusConfig())
	require.NoError(t, err)
	assert.Equal(t, calculation.SourceComputed, fig.Source)

	_, err = engine.Display(17, 20, domain.DefaultBonusConfig())
	assert.True(t, domain.IsKind(err, domain.UnknownAge))
}

func TestRiderPremium(t *testing.T) {
	engine := newBrochureEngine()

	p, err := engine.RiderPremium(25, 20)
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.NewFromInt(264)))

	_, err = engine.RiderPremium(25, 19)
	assert.True(t, domain.IsKind(err, domain.UnknownTerm))
}

func TestWhatIfDeath(t *testing.T) {
	engine := newBrochureEngine()

	ill, err := engine.WhatIfDeath(25, 20, 5, domain.DefaultBonusConfig())
	require.NoError(t, err)
	assert.True(t, ill.TotalBenefit.Equal(decimal.NewFromInt(690000)))

	_, err = engine.WhatIfDeath(25, 20, 0, domain.DefaultBonusConfig())
	assert.True(t, domain.IsKind(err, domain.InvalidDeathYear))
}

func TestPremiumGrid(t *testing.T) {
	table := premium.Brochure()
	grid := NewEngine(table).PremiumGrid()

	assert.Equal(t, table.AllTerms(), grid.Terms)
	require.Len(t, grid.Rows, len(table.AvailableAges()))

	last := grid.Rows[len(grid.Rows)-1]
	assert.Equal(t, 50, last.Age)
	for _, cell := range last.Cells {
		_, ok := table.PremiumFor(50, cell.Term)
		assert.Equal(t, ok, cell.Available, "term %d", cell.Term)
	}
}

// sparseTable only implements PremiumSource, so the grid derives its columns
type sparseTable struct{}

func (sparseTable) AvailableAges() []int { return []int{30, 40} }
func (sparseTable) TermsForAge(age int) []int {
	if age == 30 {
		return []int{25, 13}
	}
	return []int{13, 18}
}
func (sparseTable) PremiumFor(age, term int) (decimal.Decimal, bool) {
	if (age == 30 && (term == 13 || term == 25)) || (age == 40 && (term == 13 || term == 18)) {
		return decimal.NewFromInt(1000), true
	}
	return decimal.Zero, false
}
func (sparseTable) SumAssured() decimal.Decimal { return decimal.NewFromInt(100000) }

func TestPremiumGrid_DerivesTermsWithoutAllTerms(t *testing.T) {
	grid := NewEngine(sparseTable{}).PremiumGrid()

	assert.Equal(t, []int{13, 18, 25}, grid.Terms)
	require.Len(t, grid.Rows, 2)
	assert.False(t, grid.Rows[0].Cells[1].Available, "age 30 has no 18-year term")
	assert.True(t, grid.Rows[1].Cells[1].Available)
}

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
	infos  []string
}

func (l *recordingLogger) Debugf(string, ...interface{}) {}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(string, ...interface{}) {}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
