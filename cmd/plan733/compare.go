package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeevanlakshya/plan733/internal/compare"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every policy term offered at an entry age",
		Long: `Quote each term offered at an age and compare it against a base term.

Examples:
  plan733 compare --age 25
  plan733 compare --age 25 --base-term 20 --terms 15,20,25 --format csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, _ := cmd.Flags().GetInt("age")
			baseTerm, _ := cmd.Flags().GetInt("base-term")
			terms, _ := cmd.Flags().GetIntSlice("terms")
			format, _ := cmd.Flags().GetString("format")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			set, err := compare.NewCompareEngine(a.engine).CompareTerms(age, a.product.Bonus, compare.CompareOptions{
				Product:  a.product.Name,
				BaseTerm: baseTerm,
				Terms:    terms,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "csv":
				data, err := (&compare.CSVFormatter{}).Format(set)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, data)
			case "json":
				data, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, data)
			case "compact":
				fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(set))
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(set))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().Int("age", 0, "Entry age (required)")
	cmd.Flags().Int("base-term", 0, "Term to compare against (default: shortest offered)")
	cmd.Flags().IntSlice("terms", nil, "Restrict to these terms")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}
