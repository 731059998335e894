package output

import (
	"strings"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// Report is everything a formatter may render for one selection. Only
// Quote is required; the optional sections are printed when present.
type Report struct {
	Product      string                                `json:"product" yaml:"product"`
	Bonus        domain.BonusConfig                    `json:"bonus" yaml:"bonus"`
	Quote        domain.Quote                          `json:"quote" yaml:"quote"`
	Display      *calculation.DisplayFigures           `json:"display,omitempty" yaml:"display,omitempty"`
	Goal         *domain.Goal                          `json:"goal,omitempty" yaml:"goal,omitempty"`
	RiderPremium *decimal.Decimal                      `json:"riderPremium,omitempty" yaml:"rider_premium,omitempty"`
	DeathBenefit *calculation.DeathBenefitIllustration `json:"deathBenefit,omitempty" yaml:"death_benefit,omitempty"`
}

// FormatINR renders whole rupees with Indian digit grouping: the last
// three digits, then groups of two (2,00,000 and 1,23,45,678).
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	if lead := len(head) % 2; lead > 0 {
		groups = append(groups, head[:lead])
		head = head[lead:]
	}
	for i := 0; i < len(head); i += 2 {
		groups = append(groups, head[i:i+2])
	}
	return sign + strings.Join(append(groups, tail), ",")
}

// FormatCurrency formats a decimal as rupees
func FormatCurrency(amount decimal.Decimal) string {
	if amount.Round(0).IsNegative() {
		return "-₹" + FormatINR(amount.Abs())
	}
	return "₹" + FormatINR(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
