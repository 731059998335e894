package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/jeevanlakshya/plan733/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "plan733-tui [product-file]",
	Short: "Interactive Jeevan Lakshya 733 plan explorer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsPath, _ := cmd.Flags().GetString("config")
		settings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		productPath := settings.ProductFile
		if len(args) == 1 {
			productPath = args[0]
		}
		if productPath != "" {
			if _, err := os.Stat(productPath); os.IsNotExist(err) {
				return fmt.Errorf("product file not found: %s", productPath)
			}
		}

		// The alternate screen owns the terminal, so logs only go to a file
		var logger quote.Logger
		if settings.Logging.OutputFile != "" {
			zl, err := config.NewLogger(settings.Logging, "", "json")
			if err != nil {
				return err
			}
			defer func() { _ = zl.Sync() }()
			logger = zl.Sugar()
		}

		p := tea.NewProgram(
			tui.NewModel(productPath, logger),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("config", "", "Settings file (yaml); PLAN733_* environment variables also apply")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
