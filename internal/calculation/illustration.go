package calculation

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// Source names reported in DisplayFigures
const (
	SourcePrecomputed = "precomputed"
	SourceComputed    = "computed"
)

// Illustration is a brochure-printed headline for one (age, term)
type Illustration struct {
	Age               int             `yaml:"age" json:"age"`
	Term              int             `yaml:"term" json:"term"`
	AnnualPremium     decimal.Decimal `yaml:"annual_premium" json:"annualPremium"`
	EstimatedMaturity decimal.Decimal `yaml:"estimated_maturity" json:"estimatedMaturity"`
}

// DisplayFigures is the headline premium and maturity shown for a selection
type DisplayFigures struct {
	Age               int             `json:"age"`
	Term              int             `json:"term"`
	AnnualPremium     decimal.Decimal `json:"annualPremium"`
	EstimatedMaturity decimal.Decimal `json:"estimatedMaturity"`
	Source            string          `json:"source"`
}

// MaturitySource answers headline figures for a selection. ok is false
// when the source has nothing for the pair.
type MaturitySource interface {
	Name() string
	Lookup(age, term int, cfg domain.BonusConfig) (DisplayFigures, bool, error)
}

type pairKey struct {
	age, term int
}

// PrecomputedSource serves brochure illustrations verbatim
type PrecomputedSource struct {
	rows map[pairKey]Illustration
}

// NewPrecomputedSource validates and indexes illustration rows
func NewPrecomputedSource(rows []Illustration) (*PrecomputedSource, error) {
	s := &PrecomputedSource{rows: make(map[pairKey]Illustration, len(rows))}
	for i, r := range rows {
		if !r.AnnualPremium.IsPositive() || !r.EstimatedMaturity.IsPositive() {
			return nil, fmt.Errorf("illustration %d (age %d, term %d): amounts must be positive", i, r.Age, r.Term)
		}
		k := pairKey{r.Age, r.Term}
		if _, dup := s.rows[k]; dup {
			return nil, fmt.Errorf("illustration %d: duplicate age %d term %d", i, r.Age, r.Term)
		}
		s.rows[k] = r
	}
	return s, nil
}

func (s *PrecomputedSource) Name() string { return SourcePrecomputed }

func (s *PrecomputedSource) Lookup(age, term int, _ domain.BonusConfig) (DisplayFigures, bool, error) {
	r, ok := s.rows[pairKey{age, term}]
	if !ok {
		return DisplayFigures{}, false, nil
	}
	return DisplayFigures{
		Age:               age,
		Term:              term,
		AnnualPremium:     r.AnnualPremium,
		EstimatedMaturity: r.EstimatedMaturity,
		Source:            SourcePrecomputed,
	}, true, nil
}

// Len returns the number of illustrations held
func (s *PrecomputedSource) Len() int {
	return len(s.rows)
}

// PremiumLookup is the slice of the premium table the computed source needs
type PremiumLookup interface {
	PremiumFor(age, term int) (decimal.Decimal, bool)
	SumAssured() decimal.Decimal
}

// ComputedSource derives figures from the premium table and the calculator
type ComputedSource struct {
	Table PremiumLookup
}

func (s ComputedSource) Name() string { return SourceComputed }

func (s ComputedSource) Lookup(age, term int, cfg domain.BonusConfig) (DisplayFigures, bool, error) {
	p, ok := s.Table.PremiumFor(age, term)
	if !ok {
		return DisplayFigures{}, false, nil
	}
	total, err := EstimateTotal(s.Table.SumAssured(), term, cfg)
	if err != nil {
		return DisplayFigures{}, false, err
	}
	return DisplayFigures{
		Age:               age,
		Term:              term,
		AnnualPremium:     p,
		EstimatedMaturity: total,
		Source:            SourceComputed,
	}, true, nil
}

// Chain tries each source in order; the first one holding the pair wins
type Chain []MaturitySource

// NewChain builds the standard order: precomputed illustrations (if any),
// then live computation against the table
func NewChain(precomputed *PrecomputedSource, table PremiumLookup) Chain {
	var c Chain
	if precomputed != nil && precomputed.Len() > 0 {
		c = append(c, precomputed)
	}
	return append(c, ComputedSource{Table: table})
}

// Resolve returns headline figures for a selection
func (c Chain) Resolve(age, term int, cfg domain.BonusConfig) (DisplayFigures, error) {
	for _, src := range c {
		fig, ok, err := src.Lookup(age, term, cfg)
		if err != nil {
			return DisplayFigures{}, fmt.Errorf("%s source: %w", src.Name(), err)
		}
		if ok {
			return fig, nil
		}
	}
	return DisplayFigures{}, domain.NewQuoteError(domain.UnknownTerm, "resolve_illustration",
		fmt.Sprintf("no figures available for age %d term %d", age, term), nil)
}
