package calculation

import (
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateInstallments applies the brochure multipliers to an annual premium
func CalculateInstallments(annualPremium decimal.Decimal) domain.Installments {
	return CalculateInstallmentsWith(annualPremium, domain.DefaultInstallmentMultipliers())
}

// CalculateInstallmentsWith applies the given multipliers. Annual is passed
// through untouched; other modes are rounded to whole rupees, half away
// from zero.
func CalculateInstallmentsWith(annualPremium decimal.Decimal, m domain.InstallmentMultipliers) domain.Installments {
	return domain.Installments{
		Annual:     annualPremium,
		HalfYearly: annualPremium.Mul(m.HalfYearly).Round(0),
		Quarterly:  annualPremium.Mul(m.Quarterly).Round(0),
		Monthly:    annualPremium.Mul(m.Monthly).Round(0),
	}
}

// InstallmentOptions lists every payment mode with its amount, in display order
func InstallmentOptions(annualPremium decimal.Decimal, m domain.InstallmentMultipliers) []domain.InstallmentOption {
	amounts := CalculateInstallmentsWith(annualPremium, m)

	options := make([]domain.InstallmentOption, 0, len(domain.InstallmentModes))
	for _, mode := range domain.InstallmentModes {
		options = append(options, domain.InstallmentOption{
			Mode:          mode,
			Amount:        amounts.Amount(mode),
			Multiplier:    m.For(mode),
			IsApproximate: mode != domain.ModeAnnual,
		})
	}
	return options
}
