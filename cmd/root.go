package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/csrd-engine/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "csrd-engine",
	Short: "CSRD/ESRS module calculation engine",
	Long:  "Calculates sustainability disclosure modules (Scope 1-3 emissions, E/S/G scores, double materiality) from structured input, with Danish data-quality warnings and a full calculation trace.",
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
