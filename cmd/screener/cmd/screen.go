package cmd

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/universe"
	"github.com/rnjstp9754-jpg/swing-screener/internal/infra/export"
	"github.com/rnjstp9754-jpg/swing-screener/internal/infra/telegram"
	"github.com/rnjstp9754-jpg/swing-screener/internal/infra/yahoo"
	"github.com/rnjstp9754-jpg/swing-screener/internal/pkg/config"
	"github.com/rnjstp9754-jpg/swing-screener/internal/service/screener"
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy"
)

var screenFlags struct {
	market       string
	strategy     string
	symbols      []string
	workers      int
	lookbackDays int
	recentDays   int
	strategyFile string
	csvPath      string
	notify       bool
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a strategy across a stock universe",
	RunE:  runScreen,
}

func init() {
	f := screenCmd.Flags()
	f.StringVar(&screenFlags.market, "market", "", "market universe: US or KR (default from env)")
	f.StringVar(&screenFlags.strategy, "strategy", "", "strategy preset: "+strings.Join(strategy.PresetNames(), ", "))
	f.StringSliceVar(&screenFlags.symbols, "symbols", nil, "explicit symbols, overrides the market universe")
	f.IntVar(&screenFlags.workers, "workers", 0, "concurrent fetch workers (default from env)")
	f.IntVar(&screenFlags.lookbackDays, "lookback-days", 0, "calendar days of history to fetch (default from env)")
	f.IntVar(&screenFlags.recentDays, "recent-days", 7, "report only signals from the last N days (0 = all)")
	f.StringVar(&screenFlags.strategyFile, "strategy-file", "", "YAML file overriding preset thresholds")
	f.StringVar(&screenFlags.csvPath, "csv", "", "write reported signals to a CSV file")
	f.BoolVar(&screenFlags.notify, "notify", false, "send a Telegram digest of reported signals")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	market := strings.ToUpper(screenFlags.market)
	if market == "" {
		market = strings.ToUpper(appCfg.Screener.Market)
	}

	stratCfg, err := resolveStrategy(market)
	if err != nil {
		return err
	}
	if screenFlags.strategyFile != "" {
		if err := config.ApplyStrategyFile(screenFlags.strategyFile, &stratCfg); err != nil {
			return err
		}
	}
	strat := strategy.New(stratCfg)

	list := universe.ForMarket(market)
	if len(screenFlags.symbols) > 0 {
		list = universe.FromSymbols("CUSTOM", market, screenFlags.symbols)
	}

	workers := screenFlags.workers
	if workers <= 0 {
		workers = appCfg.Screener.Workers
	}
	lookback := screenFlags.lookbackDays
	if lookback <= 0 {
		lookback = appCfg.Screener.LookbackDays
	}

	svc := screener.New(yahoo.NewClient(), workers)
	sum, err := svc.Screen(ctx, strat, list.Symbols(), lookback)
	if err != nil {
		return err
	}

	reported := sum.Signals
	if screenFlags.recentDays > 0 {
		reported = sum.Recent(time.Now().AddDate(0, 0, -screenFlags.recentDays))
	}
	printSignals(cmd, sum, reported)

	if screenFlags.csvPath != "" && len(reported) > 0 {
		if err := export.SaveSignalsCSV(screenFlags.csvPath, reported); err != nil {
			return err
		}
		log.Info().Str("path", screenFlags.csvPath).Int("signals", len(reported)).Msg("csv written")
	}

	if screenFlags.notify {
		if !appCfg.Telegram.Enabled() {
			return fmt.Errorf("--notify requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
		}
		n := telegram.NewNotifier(appCfg.Telegram.BotToken, appCfg.Telegram.ChatID)
		if err := n.SendSignals(ctx, strat.Name(), reported); err != nil {
			return err
		}
		log.Info().Int("signals", len(reported)).Msg("telegram digest sent")
	}
	return nil
}

func resolveStrategy(market string) (strategy.Config, error) {
	name := screenFlags.strategy
	if name == "" {
		name = appCfg.Screener.Strategy
	}
	if name == "" {
		return strategy.DefaultForMarket(market), nil
	}
	return strategy.Preset(name)
}

func printSignals(cmd *cobra.Command, sum *screener.Summary, reported []signal.Signal) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s: scanned %d, skipped %d, %d signal(s) in %s\n\n",
		sum.Strategy, sum.Scanned, sum.Skipped, len(reported), sum.Elapsed.Round(time.Millisecond))
	for _, s := range reported {
		fmt.Fprintf(out, "%s  %-6s %-8s %10.2f  conf %.2f  %s\n",
			s.Date.Format("2006-01-02"), s.Type, s.Symbol, s.Price, s.Confidence, s.Reason)
	}
}
