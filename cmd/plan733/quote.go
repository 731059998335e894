package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/output"
)

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("age", 0, "Entry age (required)")
	cmd.Flags().Int("term", 0, "Policy term in years (required)")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("term")
}

func selection(cmd *cobra.Command) (age, term int) {
	age, _ = cmd.Flags().GetInt("age")
	term, _ = cmd.Flags().GetInt("term")
	return age, term
}

// buildReport quotes a selection and fills in the optional sections the
// flags ask for
func buildReport(a *app, age, term int, goalID string, rider bool, deathYear int) (*output.Report, error) {
	bonus := a.product.Bonus

	q, err := a.engine.BuildQuote(age, term, bonus)
	if err != nil {
		return nil, err
	}
	display, err := a.engine.Display(age, term, bonus)
	if err != nil {
		return nil, err
	}

	r := &output.Report{
		Product: a.product.Name,
		Bonus:   bonus,
		Quote:   q,
		Display: &display,
	}

	if goalID != "" {
		goal, ok := domain.FindGoal(goalID)
		if !ok {
			return nil, domain.NewQuoteError(domain.UnknownGoal, "build_report",
				fmt.Sprintf("goal %q is not offered", goalID), nil)
		}
		r.Goal = &goal
	}

	if rider {
		p, err := a.engine.RiderPremium(age, term)
		if err != nil {
			return nil, err
		}
		r.RiderPremium = &p
	}

	if deathYear != 0 {
		ill, err := a.engine.WhatIfDeath(age, term, deathYear, bonus)
		if err != nil {
			return nil, err
		}
		r.DeathBenefit = &ill
	}

	return r, nil
}

// emitReport writes a report to stdout, or to a file when --output is set.
// PDF always goes to a file.
func emitReport(cmd *cobra.Command, a *app, r *output.Report) error {
	format, _ := cmd.Flags().GetString("format")
	outFile, _ := cmd.Flags().GetString("output")

	f := output.GetFormatterByName(strings.ToLower(format))
	if f == nil {
		return fmt.Errorf("unknown output format: %s (valid: %s; aliases: %s)", format,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}

	if outFile == "" && f.Name() == "pdf" {
		outFile = output.DefaultFilename(r, "pdf")
	}

	if outFile != "" {
		if err := output.WriteFormatted(f, r, outFile); err != nil {
			return err
		}
		a.logger.Info("report written", zap.String("file", outFile), zap.String("format", f.Name()))
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outFile)
		return nil
	}

	data, err := f.Format(r)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, yaml, pdf)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
}

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote premium, installments and estimated maturity",
		Long: `Quote the annual premium for an entry age and policy term.

Examples:
  plan733 quote --age 25 --term 20
  plan733 quote --age 25 --term 20 --goal marriage --rider --death-year 5
  plan733 quote --age 30 --term 25 --format pdf --output quote.pdf
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, term := selection(cmd)
			goalID, _ := cmd.Flags().GetString("goal")
			rider, _ := cmd.Flags().GetBool("rider")
			deathYear, _ := cmd.Flags().GetInt("death-year")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			r, err := buildReport(a, age, term, goalID, rider, deathYear)
			if err != nil {
				return err
			}
			return emitReport(cmd, a, r)
		},
	}
	addSelectionFlags(cmd)
	addReportFlags(cmd)
	cmd.Flags().String("goal", "", "Attach a life goal (goals, marriage, study, career)")
	cmd.Flags().Bool("rider", false, "Include the term rider premium")
	cmd.Flags().Int("death-year", 0, "Illustrate the benefit if death occurs in this policy year")
	return cmd
}

func whatIfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "what-if",
		Short: "Illustrate the benefit paid if death occurs during the term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, term := selection(cmd)
			deathYear, _ := cmd.Flags().GetInt("death-year")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			r, err := buildReport(a, age, term, "", false, deathYear)
			if err != nil {
				return err
			}
			return emitReport(cmd, a, r)
		},
	}
	addSelectionFlags(cmd)
	addReportFlags(cmd)
	cmd.Flags().Int("death-year", 1, "Policy year in which death occurs")
	return cmd
}

func riderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rider",
		Short: "Quote the term rider premium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, term := selection(cmd)
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if err := a.engine.ValidateSelection(age, term); err != nil {
				return err
			}
			p, err := a.engine.RiderPremium(age, term)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Term rider premium (age %d, term %d): %s a year\n",
				age, term, output.FormatCurrency(p))
			return nil
		},
	}
	addSelectionFlags(cmd)
	return cmd
}

func payloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Build the goal hand-off payload for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, term := selection(cmd)
			goalID, _ := cmd.Flags().GetString("goal")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			payload, err := a.engine.BuildPayload(goalID, age, term, a.product.Bonus)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().String("goal", "goals", "Goal id (goals, marriage, study, career)")
	return cmd
}
