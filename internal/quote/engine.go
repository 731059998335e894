package quote

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// PremiumSource is the read side of a premium table. *premium.Table
// satisfies it.
type PremiumSource interface {
	AvailableAges() []int
	TermsForAge(age int) []int
	PremiumFor(age, term int) (decimal.Decimal, bool)
	SumAssured() decimal.Decimal
}

// Engine turns an (age, term) selection into a quote. It holds only
// read-only collaborators and is safe for concurrent use once built.
type Engine struct {
	Table         PremiumSource
	Multipliers   domain.InstallmentMultipliers
	Riders        *calculation.RiderRates
	Illustrations calculation.Chain
	Logger        Logger
}

// NewEngine creates an engine over a premium table with the brochure
// multipliers and rider rates
func NewEngine(table PremiumSource) *Engine {
	return &Engine{
		Table:         table,
		Multipliers:   domain.DefaultInstallmentMultipliers(),
		Riders:        calculation.DefaultRiderRates(),
		Illustrations: calculation.NewChain(nil, table),
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// ValidateSelection checks that the table offers the pair
func (e *Engine) ValidateSelection(age, term int) error {
	if !contains(e.Table.AvailableAges(), age) {
		return domain.NewQuoteError(domain.UnknownAge, "build_quote",
			fmt.Sprintf("age %d is not offered", age), nil)
	}
	if !contains(e.Table.TermsForAge(age), term) {
		return domain.NewQuoteError(domain.UnknownTerm, "build_quote",
			fmt.Sprintf("term %d is not offered at age %d", term, age), nil)
	}
	return nil
}

// BuildQuote validates the selection against the table and assembles the
// full quote. Nothing is cached; two calls with the same inputs return
// equal values.
func (e *Engine) BuildQuote(age, term int, cfg domain.BonusConfig) (domain.Quote, error) {
	if err := e.ValidateSelection(age, term); err != nil {
		e.logger().Debugf("quote rejected: %v", err)
		return domain.Quote{}, err
	}

	annual, ok := e.Table.PremiumFor(age, term)
	if !ok {
		err := domain.NewQuoteError(domain.TableInconsistency, "build_quote",
			fmt.Sprintf("term %d is listed for age %d but has no premium", term, age), nil)
		e.logger().Errorf("%v", err)
		return domain.Quote{}, err
	}

	ppt := domain.PremiumPayingTerm(term)
	maturity, err := calculation.Estimate(e.Table.SumAssured(), term, ppt, cfg)
	if err != nil {
		return domain.Quote{}, err
	}

	multipliers := e.Multipliers
	if multipliers.IsZero() {
		multipliers = domain.DefaultInstallmentMultipliers()
	}

	q := domain.Quote{
		Age:                age,
		Term:               term,
		PremiumPayingTerm:  ppt,
		SumAssured:         e.Table.SumAssured(),
		AnnualPremium:      annual,
		TotalPremiumPaid:   annual.Mul(decimal.NewFromInt(int64(ppt))),
		EstimatedMaturity:  maturity,
		InstallmentOptions: calculation.InstallmentOptions(annual, multipliers),
	}
	e.logger().Debugf("quote age=%d term=%d premium=%s maturity=%s",
		age, term, annual.String(), maturity.TotalMaturity.String())
	return q, nil
}

// Display returns the headline figures for a selection, preferring
// brochure illustrations where configured
func (e *Engine) Display(age, term int, cfg domain.BonusConfig) (calculation.DisplayFigures, error) {
	if err := e.ValidateSelection(age, term); err != nil {
		return calculation.DisplayFigures{}, err
	}
	chain := e.Illustrations
	if len(chain) == 0 {
		chain = calculation.NewChain(nil, e.Table)
	}
	return chain.Resolve(age, term, cfg)
}

// RiderPremium prices the optional term rider on the table's sum assured
func (e *Engine) RiderPremium(age, term int) (decimal.Decimal, error) {
	if err := e.ValidateSelection(age, term); err != nil {
		return decimal.Zero, err
	}
	riders := e.Riders
	if riders == nil {
		riders = calculation.DefaultRiderRates()
	}
	return riders.Premium(age, term, e.Table.SumAssured())
}

// WhatIfDeath builds the quote and illustrates a death in deathYear
func (e *Engine) WhatIfDeath(age, term, deathYear int, cfg domain.BonusConfig) (calculation.DeathBenefitIllustration, error) {
	q, err := e.BuildQuote(age, term, cfg)
	if err != nil {
		return calculation.DeathBenefitIllustration{}, err
	}
	return calculation.WhatIfDeath(q, deathYear, cfg)
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
