package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jeevanlakshya/plan733/internal/domain"
)

// ConsoleFormatter renders a plain-text quote
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("nil report")
	}
	q := r.Quote
	buf := &bytes.Buffer{}

	title := "JEEVAN LAKSHYA 733 QUOTE"
	if r.Product != "" {
		title = strings.ToUpper(r.Product)
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	if r.Goal != nil {
		fmt.Fprintf(buf, "Goal:                  %s (%s)\n", r.Goal.Title, r.Goal.TitleGu)
	}
	fmt.Fprintf(buf, "Age at entry:          %d\n", q.Age)
	fmt.Fprintf(buf, "Policy term:           %d years (matures at age %d)\n", q.Term, q.MaturityAge())
	fmt.Fprintf(buf, "Premium paying term:   %d years\n", q.PremiumPayingTerm)
	fmt.Fprintf(buf, "Sum assured:           %s\n", FormatCurrency(q.SumAssured))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PREMIUM")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	for _, opt := range q.InstallmentOptions {
		marker := ""
		if opt.IsApproximate {
			marker = " (approx.)"
		}
		fmt.Fprintf(buf, "%-22s %12s%s  %s\n", opt.Mode.Label()+":", FormatCurrency(opt.Amount), marker, opt.Mode.LabelGu())
	}
	fmt.Fprintf(buf, "%-22s %12s\n", "Total premium paid:", FormatCurrency(q.TotalPremiumPaid))
	if r.RiderPremium != nil {
		fmt.Fprintf(buf, "%-22s %12s\n", "Term rider (annual):", FormatCurrency(*r.RiderPremium))
	}
	fmt.Fprintln(buf)

	writeMaturity(buf, "ESTIMATED MATURITY", q.EstimatedMaturity)
	fmt.Fprintf(buf, "%-22s %12sx\n", "Maturity multiple:", q.MaturityMultiple().StringFixed(2))

	if r.Display != nil && r.Display.Source != "computed" {
		fmt.Fprintf(buf, "%-22s %12s (%s)\n", "Illustrated maturity:",
			FormatCurrency(r.Display.EstimatedMaturity), r.Display.Source)
	}

	if d := r.DeathBenefit; d != nil {
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "IF DEATH OCCURS IN POLICY YEAR %d\n", d.DeathYear)
		fmt.Fprintln(buf, strings.Repeat("-", 60))
		fmt.Fprintf(buf, "%-22s %12s\n", "Premiums paid:", FormatCurrency(d.PremiumsPaid))
		fmt.Fprintf(buf, "%-22s %12s\n", "Premiums waived:", FormatCurrency(d.PremiumsWaived))
		if len(d.IncomeSchedule) > 0 {
			fmt.Fprintf(buf, "%-22s %12s per year, years %d-%d\n", "Income benefit:",
				FormatCurrency(d.AnnualIncomeBenefit),
				d.IncomeSchedule[0].PolicyYear, d.IncomeSchedule[len(d.IncomeSchedule)-1].PolicyYear)
		}
		fmt.Fprintf(buf, "%-22s %12s\n", "Total income benefit:", FormatCurrency(d.TotalIncomeBenefit))
		writeMaturity(buf, "", d.MaturityBenefit)
		fmt.Fprintf(buf, "%-22s %12s\n", "Total to family:", FormatCurrency(d.TotalBenefit))
	}

	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Bonus rates: %s per thousand per year, FAB %s per thousand from term %d.\n",
		r.Bonus.ReversionaryBonusRatePerThousandPerYear.String(),
		r.Bonus.FinalAdditionalBonusRatePerThousand.String(),
		r.Bonus.FinalAdditionalBonusMinimumTerm)
	fmt.Fprintln(buf, "Bonuses are not guaranteed; figures are illustrative.")
	return buf.Bytes(), nil
}

func writeMaturity(buf *bytes.Buffer, heading string, m domain.MaturityBreakdown) {
	if heading != "" {
		fmt.Fprintln(buf, heading)
		fmt.Fprintln(buf, strings.Repeat("-", 60))
	}
	fmt.Fprintf(buf, "%-22s %12s\n", "Basic sum assured:", FormatCurrency(m.BasicSumAssured))
	fmt.Fprintf(buf, "%-22s %12s\n", "Reversionary bonus:", FormatCurrency(m.SimpleReversionaryBonus))
	fmt.Fprintf(buf, "%-22s %12s\n", "Final addl. bonus:", FormatCurrency(m.FinalAdditionalBonus))
	fmt.Fprintf(buf, "%-22s %12s\n", "Total maturity:", FormatCurrency(m.TotalMaturity))
}
