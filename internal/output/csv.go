package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVFormatter writes one Field,Value row per figure
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("nil report")
	}
	q := r.Quote
	rows := [][]string{
		{"Field", "Value"},
		{"Age", strconv.Itoa(q.Age)},
		{"Term", strconv.Itoa(q.Term)},
		{"PremiumPayingTerm", strconv.Itoa(q.PremiumPayingTerm)},
		{"SumAssured", q.SumAssured.StringFixed(2)},
		{"AnnualPremium", q.AnnualPremium.StringFixed(2)},
		{"TotalPremiumPaid", q.TotalPremiumPaid.StringFixed(2)},
		{"BasicSumAssured", q.EstimatedMaturity.BasicSumAssured.StringFixed(2)},
		{"SimpleReversionaryBonus", q.EstimatedMaturity.SimpleReversionaryBonus.StringFixed(2)},
		{"FinalAdditionalBonus", q.EstimatedMaturity.FinalAdditionalBonus.StringFixed(2)},
		{"TotalMaturity", q.EstimatedMaturity.TotalMaturity.StringFixed(2)},
	}
	for _, opt := range q.InstallmentOptions {
		rows = append(rows, []string{"Installment_" + string(opt.Mode), opt.Amount.StringFixed(0)})
	}
	if r.Goal != nil {
		rows = append(rows, []string{"Goal", r.Goal.ID})
	}
	if r.RiderPremium != nil {
		rows = append(rows, []string{"RiderPremium", r.RiderPremium.StringFixed(0)})
	}
	if d := r.DeathBenefit; d != nil {
		rows = append(rows,
			[]string{"DeathYear", strconv.Itoa(d.DeathYear)},
			[]string{"TotalIncomeBenefit", d.TotalIncomeBenefit.StringFixed(2)},
			[]string{"DeathMaturityBenefit", d.MaturityBenefit.TotalMaturity.StringFixed(2)},
			[]string{"TotalDeathBenefit", d.TotalBenefit.StringFixed(2)},
		)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
