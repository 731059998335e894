package calculation

import (
	"fmt"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// RiderRate is the term rider premium per ₹1000 sum assured for one (age, term)
type RiderRate struct {
	Age  int             `yaml:"age" json:"age"`
	Term int             `yaml:"term" json:"term"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// RiderRates indexes term rider rates
type RiderRates struct {
	rates map[pairKey]decimal.Decimal
}

// NewRiderRates validates and indexes rider rate rows
func NewRiderRates(rows []RiderRate) (*RiderRates, error) {
	r := &RiderRates{rates: make(map[pairKey]decimal.Decimal, len(rows))}
	for i, row := range rows {
		if !row.Rate.IsPositive() {
			return nil, fmt.Errorf("rider rate %d (age %d, term %d) must be positive", i, row.Age, row.Term)
		}
		k := pairKey{row.Age, row.Term}
		if _, dup := r.rates[k]; dup {
			return nil, fmt.Errorf("rider rate %d: duplicate age %d term %d", i, row.Age, row.Term)
		}
		r.rates[k] = row.Rate
	}
	return r, nil
}

var defaultRiderRates = map[int]map[int]string{
	18: {13: "0.95", 15: "1.00", 16: "1.03", 18: "1.08", 20: "1.14", 21: "1.17", 25: "1.30"},
	20: {13: "0.98", 15: "1.03", 16: "1.06", 18: "1.11", 20: "1.17", 21: "1.20", 25: "1.34"},
	25: {13: "1.10", 15: "1.16", 16: "1.19", 18: "1.25", 20: "1.32", 21: "1.36", 25: "1.52"},
	30: {13: "1.32", 15: "1.40", 16: "1.44", 18: "1.52", 20: "1.61", 21: "1.66", 25: "1.88"},
	35: {13: "1.71", 15: "1.82", 16: "1.88", 18: "2.00", 20: "2.13", 21: "2.20", 25: "2.51"},
	40: {13: "2.38", 15: "2.55", 16: "2.64", 18: "2.83", 20: "3.03", 21: "3.14", 25: "3.61"},
	45: {13: "3.42", 15: "3.69", 16: "3.83", 18: "4.12", 20: "4.44"},
	50: {13: "5.01", 15: "5.44"},
}

// DefaultRiderRates returns the published term rider rate table
func DefaultRiderRates() *RiderRates {
	var rows []RiderRate
	for age, terms := range defaultRiderRates {
		for term, rate := range terms {
			rows = append(rows, RiderRate{Age: age, Term: term, Rate: decimal.RequireFromString(rate)})
		}
	}
	r, err := NewRiderRates(rows)
	if err != nil {
		panic("calculation: invalid default rider rates: " + err.Error())
	}
	return r
}

// Rate returns the rate per thousand for a pair
func (r *RiderRates) Rate(age, term int) (decimal.Decimal, bool) {
	rate, ok := r.rates[pairKey{age, term}]
	return rate, ok
}

// Premium is rate/1000 * sumAssured, rounded to whole rupees. A pair with
// no published rate is reported, not priced at zero.
func (r *RiderRates) Premium(age, term int, sumAssured decimal.Decimal) (decimal.Decimal, error) {
	if !sumAssured.IsPositive() {
		return decimal.Zero, domain.NewQuoteError(domain.InvalidSumAssured, "rider_premium",
			fmt.Sprintf("sum assured must be positive, got %s", sumAssured.String()), nil)
	}
	rate, ok := r.Rate(age, term)
	if !ok {
		return decimal.Zero, domain.NewQuoteError(domain.RiderNotAvailable, "rider_premium",
			fmt.Sprintf("no term rider rate for age %d term %d", age, term), nil)
	}
	return rate.Mul(sumAssured).Div(thousand).Round(0), nil
}
