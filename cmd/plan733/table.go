package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jeevanlakshya/plan733/internal/output"
	"github.com/jeevanlakshya/plan733/internal/premium"
	"github.com/jeevanlakshya/plan733/internal/quote"
)

// premiumSection is the premiums part of a product edition file
type premiumSection struct {
	SumAssured decimal.Decimal `yaml:"sum_assured"`
	Premiums   []premium.Entry `yaml:"premiums"`
}

func agesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ages",
		Short: "List the entry ages the premium table offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(a.engine.Table.AvailableAges(), " "))
			return nil
		},
	}
}

func termsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "List the policy terms offered at an entry age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, _ := cmd.Flags().GetInt("age")
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			table := a.product.Table
			if !table.HasAge(age) {
				return fmt.Errorf("age %d is not offered (available: %s)", age, joinInts(table.AvailableAges(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(table.TermsForAge(age), " "))
			return nil
		},
	}
	cmd.Flags().Int("age", 0, "Entry age (required)")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the full age by term premium table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			grid := a.engine.PremiumGrid()

			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(grid, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			case "yaml", "yml":
				data, err := yaml.Marshal(premiumSection{
					SumAssured: a.product.Table.SumAssured(),
					Premiums:   a.product.Table.Entries(),
				})
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			case "table", "console", "":
				writeGrid(cmd.OutOrStdout(), a.product.Name, grid)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json, yaml)", format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml as a product file premiums section)")
	return cmd
}

func writeGrid(w io.Writer, product string, grid quote.Grid) {
	fmt.Fprintf(w, "%s ANNUAL PREMIUMS (Sum assured %s)\n", strings.ToUpper(product), output.FormatCurrency(grid.SumAssured))

	fmt.Fprintf(w, "%-5s", "Age")
	for _, term := range grid.Terms {
		fmt.Fprintf(w, " %8d", term)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 5+9*len(grid.Terms)))

	for _, row := range grid.Rows {
		fmt.Fprintf(w, "%-5d", row.Age)
		for _, cell := range row.Cells {
			if !cell.Available {
				fmt.Fprintf(w, " %8s", "N/A")
				continue
			}
			fmt.Fprintf(w, " %8s", output.FormatINR(cell.AnnualPremium))
		}
		fmt.Fprintln(w)
	}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
