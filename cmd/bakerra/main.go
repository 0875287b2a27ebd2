package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bakerra/cmd/bakerra/shop"
	"bakerra/internal/catalog"
	"bakerra/internal/chatbot"
	"bakerra/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logDir     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bakerra",
	Short: "Bakerra - artisan bakery storefront",
	Long: `Bakerra is a terminal storefront for an artisan bakery.

Browse the product range, fill a cart, check out, book pre-orders,
custom orders and pick-ups, and ask the shop assistant questions.

Run without arguments to start the interactive storefront.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal, so logs always go to a file.
		dir := logDir
		if dir == "" {
			dir = logging.DefaultDir()
		}
		var err error
		logger, err = logging.New(dir, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shop.Run(configPath, logger)
	},
}

// askCmd answers a single question without entering the UI.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the shop assistant a one-off question",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(chatbot.Respond(strings.Join(args, " ")))
	},
}

// menuCmd prints the catalog, optionally filtered by category.
var menuCmd = &cobra.Command{
	Use:   "menu [category]",
	Short: "Print the product range",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := "All"
		if len(args) == 1 {
			category = args[0]
		}
		products := catalog.Filter(category)
		if len(products) == 0 {
			return fmt.Errorf("no products in category %q (categories: %s)",
				category, strings.Join(catalog.Categories(), ", "))
		}
		for _, p := range products {
			fmt.Printf("%-20s %8s  %s\n", p.Name, p.Price, p.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (hot-reloaded while running)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for log files (default ~/.bakerra/logs)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(menuCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
