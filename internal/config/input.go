package config

import (
	"fmt"
	"os"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/premium"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ProductEdition is a product edition file. Every section is optional;
// anything left out falls back to the published brochure edition.
type ProductEdition struct {
	Name          string                         `yaml:"name"`
	SumAssured    decimal.Decimal                `yaml:"sum_assured"`
	Bonus         *BonusSection              `yaml:"bonus"`
	Installments  *MultiplierSection         `yaml:"installment_multipliers"`
	Premiums      []premium.Entry            `yaml:"premiums"`
	Illustrations []calculation.Illustration `yaml:"illustrations"`
	RiderRates    []calculation.RiderRate    `yaml:"rider_rates"`
}

// BonusSection overrides individual bonus settings. A nil field keeps the
// brochure value, so an explicit zero is distinguishable from an omission.
type BonusSection struct {
	ReversionaryBonusRatePerThousandPerYear *decimal.Decimal `yaml:"reversionary_bonus_rate_per_thousand_per_year"`
	FinalAdditionalBonusRatePerThousand     *decimal.Decimal `yaml:"final_additional_bonus_rate_per_thousand"`
	FinalAdditionalBonusMinimumTerm         *int             `yaml:"final_additional_bonus_minimum_term"`
}

// Apply returns base with the fields present in the section replaced
func (s BonusSection) Apply(base domain.BonusConfig) domain.BonusConfig {
	if s.ReversionaryBonusRatePerThousandPerYear != nil {
		base.ReversionaryBonusRatePerThousandPerYear = *s.ReversionaryBonusRatePerThousandPerYear
	}
	if s.FinalAdditionalBonusRatePerThousand != nil {
		base.FinalAdditionalBonusRatePerThousand = *s.FinalAdditionalBonusRatePerThousand
	}
	if s.FinalAdditionalBonusMinimumTerm != nil {
		base.FinalAdditionalBonusMinimumTerm = *s.FinalAdditionalBonusMinimumTerm
	}
	return base
}

// MultiplierSection overrides individual installment multipliers
type MultiplierSection struct {
	HalfYearly *decimal.Decimal `yaml:"half_yearly"`
	Quarterly  *decimal.Decimal `yaml:"quarterly"`
	Monthly    *decimal.Decimal `yaml:"monthly"`
}

// Apply returns base with the multipliers present in the section replaced
func (s MultiplierSection) Apply(base domain.InstallmentMultipliers) domain.InstallmentMultipliers {
	if s.HalfYearly != nil {
		base.HalfYearly = *s.HalfYearly
	}
	if s.Quarterly != nil {
		base.Quarterly = *s.Quarterly
	}
	if s.Monthly != nil {
		base.Monthly = *s.Monthly
	}
	return base
}

// Product is a validated edition ready to serve quotes
type Product struct {
	Name          string
	Table         *premium.Table
	Bonus         domain.BonusConfig
	Multipliers   domain.InstallmentMultipliers
	Riders        *calculation.RiderRates
	Illustrations *calculation.PrecomputedSource
}

// DefaultProductName labels the built-in edition
const DefaultProductName = "Jeevan Lakshya 733 (brochure)"

// InputParser handles parsing of product edition files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a product edition from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Product, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates product edition YAML
func (ip *InputParser) Parse(data []byte) (*Product, error) {
	var edition ProductEdition
	if err := yaml.Unmarshal(data, &edition); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	product, err := ip.Build(&edition)
	if err != nil {
		return nil, fmt.Errorf("product validation failed: %w", err)
	}
	return product, nil
}

// LoadOrDefault loads the file when a path is given, otherwise the
// brochure edition
func (ip *InputParser) LoadOrDefault(filename string) (*Product, error) {
	if filename == "" {
		return DefaultProduct(), nil
	}
	return ip.LoadFromFile(filename)
}

// DefaultProduct returns the published brochure edition
func DefaultProduct() *Product {
	return &Product{
		Name:        DefaultProductName,
		Table:       premium.Brochure(),
		Bonus:       domain.DefaultBonusConfig(),
		Multipliers: domain.DefaultInstallmentMultipliers(),
		Riders:      calculation.DefaultRiderRates(),
	}
}

// Build validates an edition and fills in brochure defaults
func (ip *InputParser) Build(edition *ProductEdition) (*Product, error) {
	product := DefaultProduct()
	if edition.Name != "" {
		product.Name = edition.Name
	}

	if edition.Bonus != nil {
		bonus := edition.Bonus.Apply(product.Bonus)
		if err := bonus.Validate(); err != nil {
			return nil, fmt.Errorf("bonus validation failed: %w", err)
		}
		product.Bonus = bonus
	}

	if edition.Installments != nil {
		multipliers := edition.Installments.Apply(product.Multipliers)
		if err := ip.validateMultipliers(multipliers); err != nil {
			return nil, fmt.Errorf("installment multipliers validation failed: %w", err)
		}
		product.Multipliers = multipliers
	}

	if len(edition.Premiums) > 0 {
		sa := edition.SumAssured
		if sa.IsZero() {
			sa = premium.BrochureSumAssured
		}
		table, err := premium.NewTable(sa, edition.Premiums)
		if err != nil {
			return nil, fmt.Errorf("premium table validation failed: %w", err)
		}
		product.Table = table
	} else if !edition.SumAssured.IsZero() && !edition.SumAssured.Equal(premium.BrochureSumAssured) {
		return nil, fmt.Errorf("sum assured %s requires its own premium table", edition.SumAssured.String())
	}

	if len(edition.RiderRates) > 0 {
		riders, err := calculation.NewRiderRates(edition.RiderRates)
		if err != nil {
			return nil, fmt.Errorf("rider rates validation failed: %w", err)
		}
		product.Riders = riders
	}

	if len(edition.Illustrations) > 0 {
		if err := ip.validateIllustrations(edition.Illustrations, product.Table); err != nil {
			return nil, fmt.Errorf("illustrations validation failed: %w", err)
		}
		src, err := calculation.NewPrecomputedSource(edition.Illustrations)
		if err != nil {
			return nil, fmt.Errorf("illustrations validation failed: %w", err)
		}
		product.Illustrations = src
	}

	return product, nil
}

func (ip *InputParser) validateMultipliers(m domain.InstallmentMultipliers) error {
	one := decimal.NewFromInt(1)
	for _, mode := range []domain.InstallmentMode{domain.ModeHalfYearly, domain.ModeQuarterly, domain.ModeMonthly} {
		v := m.For(mode)
		if !v.IsPositive() {
			return fmt.Errorf("%s multiplier must be positive", mode)
		}
		if v.GreaterThan(one) {
			return fmt.Errorf("%s multiplier %s cannot exceed 1", mode, v.String())
		}
	}
	return nil
}

// Illustrations must point at pairs the table actually offers
func (ip *InputParser) validateIllustrations(rows []calculation.Illustration, table *premium.Table) error {
	for i, row := range rows {
		if _, ok := table.PremiumFor(row.Age, row.Term); !ok {
			return fmt.Errorf("illustration %d: age %d term %d is not in the premium table", i, row.Age, row.Term)
		}
	}
	return nil
}

// NewEngine wires the product into a quote engine
func (p *Product) NewEngine(logger quote.Logger) *quote.Engine {
	engine := quote.NewEngine(p.Table)
	engine.Multipliers = p.Multipliers
	engine.Riders = p.Riders
	engine.Illustrations = calculation.NewChain(p.Illustrations, p.Table)
	engine.SetLogger(logger)
	return engine
}
