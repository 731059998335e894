package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Term",
		"Type",
		"Premium Paying Term",
		"Annual Premium",
		"Total Premium Paid",
		"Total Bonus",
		"Total Maturity",
		"Maturity Multiple",
		"Premium Diff from Base",
		"Maturity Diff from Base",
		"Maturity % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		formatInt(result.Term),
		rowType,
		formatInt(result.PremiumPayingTerm),
		result.AnnualPremium.StringFixed(0),
		result.TotalPremiumPaid.StringFixed(0),
		result.TotalBonus.StringFixed(0),
		result.TotalMaturity.StringFixed(0),
		result.MaturityMultiple.StringFixed(2),
		result.PremiumDiffFromBase.StringFixed(0),
		result.MaturityDiffFromBase.StringFixed(0),
		result.MaturityPctFromBase.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
