package quote

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GridCell is one (age, term) position in the premium grid
type GridCell struct {
	Term          int             `json:"term" yaml:"term"`
	AnnualPremium decimal.Decimal `json:"annualPremium" yaml:"annual_premium"`
	Available     bool            `json:"available" yaml:"available"`
}

// GridRow is the premiums for one age across every term column
type GridRow struct {
	Age   int        `json:"age" yaml:"age"`
	Cells []GridCell `json:"cells" yaml:"cells"`
}

// Grid is the full age × term premium listing
type Grid struct {
	SumAssured decimal.Decimal `json:"sumAssured" yaml:"sum_assured"`
	Terms      []int           `json:"terms" yaml:"terms"`
	Rows       []GridRow       `json:"rows" yaml:"rows"`
}

// termLister is implemented by tables that keep the union of their terms
type termLister interface {
	AllTerms() []int
}

// PremiumGrid lays out every age against the union of offered terms.
// Pairs the table does not offer are marked unavailable.
func (e *Engine) PremiumGrid() Grid {
	ages := e.Table.AvailableAges()

	var terms []int
	if tl, ok := e.Table.(termLister); ok {
		terms = tl.AllTerms()
	} else {
		terms = unionTerms(e.Table, ages)
	}

	g := Grid{SumAssured: e.Table.SumAssured(), Terms: terms}
	for _, age := range ages {
		row := GridRow{Age: age, Cells: make([]GridCell, 0, len(terms))}
		for _, term := range terms {
			p, ok := e.Table.PremiumFor(age, term)
			row.Cells = append(row.Cells, GridCell{Term: term, AnnualPremium: p, Available: ok})
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func unionTerms(table PremiumSource, ages []int) []int {
	seen := make(map[int]struct{})
	var terms []int
	for _, age := range ages {
		for _, term := range table.TermsForAge(age) {
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				terms = append(terms, term)
			}
		}
	}
	sort.Ints(terms)
	return terms
}
