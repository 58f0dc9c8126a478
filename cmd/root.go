package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rentprep",
	Short: "Rental listing feature engineering pipeline",
	Long:  "Converts raw Tokyo rental listing CSVs into numeric feature tables: parses the free-text columns, joins geocode and land-price reference data, reconciles targets and filters outliers.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
