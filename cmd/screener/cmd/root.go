package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rnjstp9754-jpg/swing-screener/internal/pkg/config"
	"github.com/rnjstp9754-jpg/swing-screener/internal/pkg/logger"
)

var appCfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Swing trade screener for US and Korean equities",
	Long: `Screens a stock universe with rule-based swing strategies
(trend breakout, stage analysis, mean reversion) and reports
BUY / SELL / WATCH signals.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appCfg = cfg
		return logger.Init(logger.Config{
			Level:         cfg.Logging.Level,
			Format:        cfg.Logging.Format,
			FileEnabled:   cfg.Logging.FileEnabled,
			FilePath:      cfg.Logging.FilePath,
			RotationSize:  cfg.Logging.RotationSize,
			RetentionDays: cfg.Logging.RetentionDays,
		})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
