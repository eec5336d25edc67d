package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List registered strategy presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range strategy.PresetNames() {
			cfg, err := strategy.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-18s %-16s %-3s min_bars=%d\n",
				cfg.Name, cfg.Family, cfg.Market, cfg.MinBars())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
