package premium

import (
	"github.com/shopspring/decimal"
)

// BrochureSumAssured is the basic sum assured every brochure premium is quoted for
var BrochureSumAssured = decimal.NewFromInt(200000)

// brochurePremiums holds illustrative annual premiums (₹, excluding
// taxes) for a sum assured of 2,00,000, anchored on the 25/20 figure of
// ₹11,428. They are not an official rate sheet; load a product edition
// file for real rates. Maturity age is capped at 65, so older entry ages
// offer fewer terms.
var brochurePremiums = map[int]map[int]int64{
	18: {13: 20460, 15: 16647, 16: 15180, 18: 12833, 20: 11039, 21: 10291, 25: 7980},
	20: {13: 20642, 15: 16794, 16: 15315, 18: 12947, 20: 11137, 21: 10382, 25: 8051},
	25: {13: 21182, 15: 17234, 16: 15716, 18: 13286, 20: 11428, 21: 10654, 25: 8262},
	30: {13: 21845, 15: 17773, 16: 16207, 18: 13702, 20: 11786, 21: 10988, 25: 8520},
	35: {13: 22630, 15: 18413, 16: 16790, 18: 14195, 20: 12210, 21: 11383, 25: 8827},
	40: {13: 23539, 15: 19152, 16: 17464, 18: 14764, 20: 12700, 21: 11840, 25: 9181},
	45: {13: 24570, 15: 19991, 16: 18229, 18: 15411, 20: 13256},
	50: {13: 25724, 15: 20930},
}

// BrochureEntries returns the built-in premium rows
func BrochureEntries() []Entry {
	var entries []Entry
	for age, row := range brochurePremiums {
		for term, p := range row {
			entries = append(entries, Entry{Age: age, Term: term, AnnualPremium: decimal.NewFromInt(p)})
		}
	}
	return entries
}

// Brochure builds the built-in edition of the table. The static data is
// known-good, so a construction failure is a programming error.
func Brochure() *Table {
	t, err := NewTable(BrochureSumAssured, BrochureEntries())
	if err != nil {
		panic("premium: invalid brochure table: " + err.Error())
	}
	return t
}
