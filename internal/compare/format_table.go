package compare

import (
	"fmt"
	"strings"

	"github.com/jeevanlakshya/plan733/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing terms
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TERM COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.Product != "" {
		sb.WriteString(fmt.Sprintf("Product: %s\n", compSet.Product))
	}
	sb.WriteString(fmt.Sprintf("Age at entry: %d\n", compSet.Age))
	sb.WriteString(fmt.Sprintf("Base term: %d years\n", compSet.BaseTerm))
	sb.WriteString("\n")

	nameWidth := 14
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Term",
		numWidth, "Annual Premium",
		numWidth, "Total Paid",
		numWidth, "Maturity",
		numWidth, "Multiple"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label()))
			sb.WriteString(fmt.Sprintf("  Annual Premium:   %s%s\n",
				tf.deltaSymbol(alt.PremiumDiffFromBase),
				output.FormatCurrency(alt.PremiumDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Total Paid:       %s%s\n",
				tf.deltaSymbol(alt.TotalPaidDiffFromBase),
				output.FormatCurrency(alt.TotalPaidDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Maturity:         %s%s (%s%%)\n",
				tf.deltaSymbol(alt.MaturityDiffFromBase),
				output.FormatCurrency(alt.MaturityDiffFromBase),
				alt.MaturityPctFromBase.StringFixed(1)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single term row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Label()
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, output.FormatCurrency(result.AnnualPremium),
		numWidth, output.FormatCurrency(result.TotalPremiumPaid),
		numWidth, output.FormatCurrency(result.TotalMaturity),
		numWidth, result.MaturityMultiple.StringFixed(2)+"x")
}

// deltaSymbol returns "+" for increases; FormatCurrency already carries the minus sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// FormatCompact creates a compact single-line summary for each term
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %d years | ", compSet.BaseTerm))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.MaturityDiffFromBase.IsPositive() {
			change = "+" + output.FormatINR(alt.MaturityDiffFromBase)
		} else if alt.MaturityDiffFromBase.IsNegative() {
			change = output.FormatINR(alt.MaturityDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%d: %s", alt.Term, change))
	}

	return sb.String()
}
