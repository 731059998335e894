package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/quote"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is what every command needs once flags are parsed
type app struct {
	settings *config.Settings
	product  *config.Product
	engine   *quote.Engine
	logger   *zap.Logger
}

// loadApp reads settings, builds the logger and loads the product edition.
// --product overrides the settings file, which overrides the brochure.
func loadApp(cmd *cobra.Command) (*app, error) {
	settingsPath, _ := cmd.Flags().GetString("config")
	productPath, _ := cmd.Flags().GetString("product")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(settings.Logging, logLevel, logFormat)
	if err != nil {
		return nil, err
	}

	if productPath == "" {
		productPath = settings.ProductFile
	}
	product, err := config.NewInputParser().LoadOrDefault(productPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("product loaded",
		zap.String("product", product.Name),
		zap.String("source", productSource(productPath)),
		zap.Int("ages", len(product.Table.AvailableAges())))

	return &app{
		settings: settings,
		product:  product,
		engine:   product.NewEngine(logger.Sugar()),
		logger:   logger,
	}, nil
}

func productSource(path string) string {
	if path == "" {
		return "brochure"
	}
	return path
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plan733 %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [product-file]",
		Short: "Validate a product edition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product file %s is valid (%s, %d ages, %d premium rows)\n",
				args[0], product.Name, len(product.Table.AvailableAges()), product.Table.Len())
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plan733",
		Short: "Jeevan Lakshya 733 premium and maturity calculator",
		Long: `Quote the Jeevan Lakshya 733 endowment plan from its premium table.

Look up the annual premium for an entry age and policy term, the
installment options, the estimated maturity with bonuses, the term rider
premium and the benefit paid if the life assured dies during the term.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Settings file (yaml); PLAN733_* environment variables also apply")
	root.PersistentFlags().String("product", "", "Product edition file (default: published brochure)")
	root.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "Log format override (console, json)")

	root.AddCommand(agesCmd())
	root.AddCommand(termsCmd())
	root.AddCommand(tableCmd())
	root.AddCommand(quoteCmd())
	root.AddCommand(payloadCmd())
	root.AddCommand(riderCmd())
	root.AddCommand(whatIfCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
