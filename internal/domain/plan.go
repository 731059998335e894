package domain

import (
	"github.com/shopspring/decimal"
)

// PlanID identifies the product edition carried in hand-off payloads
const PlanID = "JeevanLakshya733"

// PremiumPayingTermOffset is the gap between the policy term and the
// premium paying term for this product (PPT = term - 3)
const PremiumPayingTermOffset = 3

// MinimumTerm is the shortest term the calculator accepts
const MinimumTerm = PremiumPayingTermOffset

// PremiumPayingTerm derives the premium paying term for a policy term
func PremiumPayingTerm(term int) int {
	return term - PremiumPayingTermOffset
}

// BonusConfig holds the declared bonus rates for a product edition.
// Values are supplied by the caller and never mutated by the calculator.
type BonusConfig struct {
	ReversionaryBonusRatePerThousandPerYear decimal.Decimal `yaml:"reversionary_bonus_rate_per_thousand_per_year" json:"reversionaryBonusRatePerThousandPerYear"`
	FinalAdditionalBonusRatePerThousand     decimal.Decimal `yaml:"final_additional_bonus_rate_per_thousand" json:"finalAdditionalBonusRatePerThousand"`
	// FinalAdditionalBonusMinimumTerm is the shortest term that earns FAB
	FinalAdditionalBonusMinimumTerm int `yaml:"final_additional_bonus_minimum_term" json:"finalAdditionalBonusMinimumTerm"`
}

// DefaultBonusConfig returns the locally declared bonus constants used
// when no product edition file overrides them
func DefaultBonusConfig() BonusConfig {
	return BonusConfig{
		ReversionaryBonusRatePerThousandPerYear: decimal.NewFromInt(45),
		FinalAdditionalBonusRatePerThousand:     decimal.NewFromInt(50),
		FinalAdditionalBonusMinimumTerm:         15,
	}
}

// Validate checks that no rate or threshold is negative
func (c BonusConfig) Validate() error {
	if c.ReversionaryBonusRatePerThousandPerYear.IsNegative() {
		return NewQuoteError(InvalidBonusConfig, "validate_bonus_config",
			"reversionary bonus rate cannot be negative", nil)
	}
	if c.FinalAdditionalBonusRatePerThousand.IsNegative() {
		return NewQuoteError(InvalidBonusConfig, "validate_bonus_config",
			"final additional bonus rate cannot be negative", nil)
	}
	if c.FinalAdditionalBonusMinimumTerm < 0 {
		return NewQuoteError(InvalidBonusConfig, "validate_bonus_config",
			"final additional bonus minimum term cannot be negative", nil)
	}
	return nil
}

// MaturityBreakdown is the benefit payable on the maturity date
type MaturityBreakdown struct {
	BasicSumAssured         decimal.Decimal `yaml:"basic_sum_assured" json:"basicSumAssured"`
	SimpleReversionaryBonus decimal.Decimal `yaml:"simple_reversionary_bonus" json:"simpleReversionaryBonus"`
	FinalAdditionalBonus    decimal.Decimal `yaml:"final_additional_bonus" json:"finalAdditionalBonus"`
	TotalMaturity           decimal.Decimal `yaml:"total_maturity" json:"totalMaturity"`
}

// NewMaturityBreakdown assembles a breakdown whose total is always the
// sum of its parts
func NewMaturityBreakdown(basic, reversionary, fab decimal.Decimal) MaturityBreakdown {
	return MaturityBreakdown{
		BasicSumAssured:         basic,
		SimpleReversionaryBonus: reversionary,
		FinalAdditionalBonus:    fab,
		TotalMaturity:           basic.Add(reversionary).Add(fab),
	}
}

// TotalBonus returns the reversionary bonus plus FAB
func (m MaturityBreakdown) TotalBonus() decimal.Decimal {
	return m.SimpleReversionaryBonus.Add(m.FinalAdditionalBonus)
}

// InstallmentMode is a premium payment frequency
type InstallmentMode string

const (
	ModeAnnual     InstallmentMode = "annual"
	ModeHalfYearly InstallmentMode = "halfYearly"
	ModeQuarterly  InstallmentMode = "quarterly"
	ModeMonthly    InstallmentMode = "monthly"
)

// InstallmentModes lists payment modes in display order
var InstallmentModes = []InstallmentMode{ModeAnnual, ModeHalfYearly, ModeQuarterly, ModeMonthly}

// Label returns the English label for the mode
func (m InstallmentMode) Label() string {
	switch m {
	case ModeAnnual:
		return "Annual"
	case ModeHalfYearly:
		return "Half-Yearly"
	case ModeQuarterly:
		return "Quarterly"
	case ModeMonthly:
		return "Monthly"
	default:
		return string(m)
	}
}

// LabelGu returns the Gujarati label for the mode
func (m InstallmentMode) LabelGu() string {
	switch m {
	case ModeAnnual:
		return "વાર્ષિક"
	case ModeHalfYearly:
		return "અર્ધવાર્ષિક"
	case ModeQuarterly:
		return "ત્રિમાસિક"
	case ModeMonthly:
		return "માસિક"
	default:
		return string(m)
	}
}

// InstallmentMultipliers are the brochure loadings applied to the annual
// premium for more frequent payment. They are product configuration, not
// derivable from first principles.
type InstallmentMultipliers struct {
	HalfYearly decimal.Decimal `yaml:"half_yearly" json:"halfYearly"`
	Quarterly  decimal.Decimal `yaml:"quarterly" json:"quarterly"`
	Monthly    decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// DefaultInstallmentMultipliers returns the published brochure multipliers
func DefaultInstallmentMultipliers() InstallmentMultipliers {
	return InstallmentMultipliers{
		HalfYearly: decimal.RequireFromString("0.51"),
		Quarterly:  decimal.RequireFromString("0.255"),
		Monthly:    decimal.RequireFromString("0.085"),
	}
}

// For returns the multiplier for a mode; annual is always exactly 1
func (im InstallmentMultipliers) For(mode InstallmentMode) decimal.Decimal {
	switch mode {
	case ModeHalfYearly:
		return im.HalfYearly
	case ModeQuarterly:
		return im.Quarterly
	case ModeMonthly:
		return im.Monthly
	default:
		return decimal.NewFromInt(1)
	}
}

// IsZero reports whether no multiplier has been set
func (im InstallmentMultipliers) IsZero() bool {
	return im.HalfYearly.IsZero() && im.Quarterly.IsZero() && im.Monthly.IsZero()
}

// Installments holds the premium due per installment for each mode
type Installments struct {
	Annual     decimal.Decimal `yaml:"annual" json:"annual"`
	HalfYearly decimal.Decimal `yaml:"half_yearly" json:"halfYearly"`
	Quarterly  decimal.Decimal `yaml:"quarterly" json:"quarterly"`
	Monthly    decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// Amount returns the installment amount for a mode
func (i Installments) Amount(mode InstallmentMode) decimal.Decimal {
	switch mode {
	case ModeHalfYearly:
		return i.HalfYearly
	case ModeQuarterly:
		return i.Quarterly
	case ModeMonthly:
		return i.Monthly
	default:
		return i.Annual
	}
}

// InstallmentOption is one payment choice shown alongside a quote
type InstallmentOption struct {
	Mode          InstallmentMode `yaml:"mode" json:"mode"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	Multiplier    decimal.Decimal `yaml:"multiplier" json:"multiplier"`
	IsApproximate bool            `yaml:"is_approximate" json:"isApproximate"`
}

// Quote is the complete result of evaluating one (age, term) selection.
// It carries no identity beyond its inputs; a new selection yields a new Quote.
type Quote struct {
	Age                int                 `yaml:"age" json:"age"`
	Term               int                 `yaml:"term" json:"term"`
	PremiumPayingTerm  int                 `yaml:"premium_paying_term" json:"premiumPayingTerm"`
	SumAssured         decimal.Decimal     `yaml:"sum_assured" json:"sumAssured"`
	AnnualPremium      decimal.Decimal     `yaml:"annual_premium" json:"annualPremium"`
	TotalPremiumPaid   decimal.Decimal     `yaml:"total_premium_paid" json:"totalPremiumPaid"`
	EstimatedMaturity  MaturityBreakdown   `yaml:"estimated_maturity" json:"estimatedMaturity"`
	InstallmentOptions []InstallmentOption `yaml:"installment_options" json:"installmentOptions"`
}

// Installment returns the option for a payment mode
func (q Quote) Installment(mode InstallmentMode) (InstallmentOption, bool) {
	for _, opt := range q.InstallmentOptions {
		if opt.Mode == mode {
			return opt, true
		}
	}
	return InstallmentOption{}, false
}

// MaturityAge is the policyholder's age on the maturity date
func (q Quote) MaturityAge() int {
	return q.Age + q.Term
}

// MaturityMultiple is total maturity divided by total premium paid,
// rounded to two places. Zero when nothing is paid.
func (q Quote) MaturityMultiple() decimal.Decimal {
	if q.TotalPremiumPaid.IsZero() {
		return decimal.Zero
	}
	return q.EstimatedMaturity.TotalMaturity.Div(q.TotalPremiumPaid).Round(2)
}
