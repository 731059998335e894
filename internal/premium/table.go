package premium

import (
	"fmt"
	"sort"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// Entry is one published (age, term) premium
type Entry struct {
	Age           int             `yaml:"age" json:"age"`
	Term          int             `yaml:"term" json:"term"`
	AnnualPremium decimal.Decimal `yaml:"annual_premium" json:"annualPremium"`
}

// Table is an immutable brochure premium table for a single sum assured.
// Accessors hand out copies so callers cannot mutate shared state.
type Table struct {
	sumAssured decimal.Decimal
	premiums   map[int]map[int]decimal.Decimal
	ages       []int
	terms      map[int][]int
	allTerms   []int
}

// NewTable validates entries and builds a table. Every premium must be
// positive, every term at least the minimum term, and no pair may repeat.
func NewTable(sumAssured decimal.Decimal, entries []Entry) (*Table, error) {
	if !sumAssured.IsPositive() {
		return nil, fmt.Errorf("sum assured must be positive, got %s", sumAssured.String())
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("premium table has no entries")
	}

	t := &Table{
		sumAssured: sumAssured,
		premiums:   make(map[int]map[int]decimal.Decimal),
		terms:      make(map[int][]int),
	}
	termSet := make(map[int]struct{})

	for i, e := range entries {
		if e.Age <= 0 {
			return nil, fmt.Errorf("entry %d: age must be positive, got %d", i, e.Age)
		}
		if e.Term < domain.MinimumTerm {
			return nil, fmt.Errorf("entry %d: term %d is below the minimum term %d", i, e.Term, domain.MinimumTerm)
		}
		if !e.AnnualPremium.IsPositive() {
			return nil, fmt.Errorf("entry %d: premium for age %d term %d must be positive", i, e.Age, e.Term)
		}
		row, ok := t.premiums[e.Age]
		if !ok {
			row = make(map[int]decimal.Decimal)
			t.premiums[e.Age] = row
		}
		if _, dup := row[e.Term]; dup {
			return nil, fmt.Errorf("entry %d: duplicate premium for age %d term %d", i, e.Age, e.Term)
		}
		row[e.Term] = e.AnnualPremium
		t.terms[e.Age] = append(t.terms[e.Age], e.Term)
		termSet[e.Term] = struct{}{}
	}

	for age, terms := range t.terms {
		sort.Ints(terms)
		t.terms[age] = terms
		t.ages = append(t.ages, age)
	}
	sort.Ints(t.ages)

	for term := range termSet {
		t.allTerms = append(t.allTerms, term)
	}
	sort.Ints(t.allTerms)

	return t, nil
}

// SumAssured returns the brochure sum assured every premium is quoted for
func (t *Table) SumAssured() decimal.Decimal {
	return t.sumAssured
}

// AvailableAges returns every age with at least one term, ascending
func (t *Table) AvailableAges() []int {
	return append([]int(nil), t.ages...)
}

// TermsForAge returns the terms offered at an age, ascending. Unknown ages
// yield an empty slice.
func (t *Table) TermsForAge(age int) []int {
	terms, ok := t.terms[age]
	if !ok {
		return []int{}
	}
	return append([]int(nil), terms...)
}

// AllTerms returns the union of terms across all ages, ascending
func (t *Table) AllTerms() []int {
	return append([]int(nil), t.allTerms...)
}

// PremiumFor is an exact lookup. The boolean is false when the pair is
// not offered; there is no interpolation between ages or terms.
func (t *Table) PremiumFor(age, term int) (decimal.Decimal, bool) {
	row, ok := t.premiums[age]
	if !ok {
		return decimal.Zero, false
	}
	p, ok := row[term]
	return p, ok
}

// HasAge reports whether the age is offered
func (t *Table) HasAge(age int) bool {
	_, ok := t.terms[age]
	return ok
}

// Entries returns every listed pair in age-then-term order
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, age := range t.ages {
		for _, term := range t.terms[age] {
			out = append(out, Entry{Age: age, Term: term, AnnualPremium: t.premiums[age][term]})
		}
	}
	return out
}

// Len returns the number of offered pairs
func (t *Table) Len() int {
	n := 0
	for _, terms := range t.terms {
		n += len(terms)
	}
	return n
}
