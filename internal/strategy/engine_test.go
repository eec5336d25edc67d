package strategy

import (
	"math"
	"strings"
	"testing"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGenerateSignalsBreakout(t *testing.T) {
	strat := New(SEPAUS())

	t.Run("volume surge breakout emits one buy", func(t *testing.T) {
		sigs := strat.GenerateSignals(breakoutSeries())
		if len(sigs) != 1 {
			t.Fatalf("got %d signals, want 1: %+v", len(sigs), sigs)
		}
		buy := sigs[0]
		if buy.Type != signal.TypeBuy {
			t.Fatalf("type = %s, want BUY", buy.Type)
		}
		if buy.Price != 232 {
			t.Errorf("price = %v, want 232", buy.Price)
		}
		if buy.Symbol != "TEST" || buy.Strategy != PresetSEPAUS {
			t.Errorf("unexpected attribution: %s / %s", buy.Symbol, buy.Strategy)
		}
		if got := buy.Metrics["volume_ratio"]; !almost(got, 5.0) {
			t.Errorf("volume_ratio = %v, want 5.0", got)
		}
		if !almost(buy.Confidence, 0.84) {
			t.Errorf("confidence = %v, want 0.84", buy.Confidence)
		}
		if buy.StopLoss == nil || !almost(*buy.StopLoss, 232*0.93) {
			t.Errorf("stop loss = %v, want %v", buy.StopLoss, 232*0.93)
		}
		if buy.TakeProfit == nil || !almost(*buy.TakeProfit, 232*1.21) {
			t.Errorf("take profit = %v, want %v", buy.TakeProfit, 232*1.21)
		}
	})

	t.Run("sub-surge volume downgrades to watch", func(t *testing.T) {
		s := breakoutSeries()
		s.Bars[len(s.Bars)-1].Volume = 700_000 // ratio ~1.2, above average but no surge
		sigs := strat.GenerateSignals(s)
		if len(sigs) != 1 {
			t.Fatalf("got %d signals, want 1", len(sigs))
		}
		if sigs[0].Type != signal.TypeWatch {
			t.Errorf("type = %s, want WATCH", sigs[0].Type)
		}
		if sigs[0].Confidence <= 0 || sigs[0].Confidence > 1 {
			t.Errorf("confidence out of range: %v", sigs[0].Confidence)
		}
	})

	t.Run("stop loss closes the position", func(t *testing.T) {
		sigs := strat.GenerateSignals(breakoutSeries(213)) // -8.2% from entry
		if len(sigs) != 2 {
			t.Fatalf("got %d signals, want BUY then SELL", len(sigs))
		}
		if sigs[0].Type != signal.TypeBuy || sigs[1].Type != signal.TypeSell {
			t.Fatalf("types = %s, %s", sigs[0].Type, sigs[1].Type)
		}
		sell := sigs[1]
		if !strings.Contains(sell.Reason, ReasonStopLoss) {
			t.Errorf("reason = %q, want %s", sell.Reason, ReasonStopLoss)
		}
		if sell.Confidence != 1.0 {
			t.Errorf("stop confidence = %v, want 1.0", sell.Confidence)
		}
		if got := sell.Metrics["entry_price"]; got != 232 {
			t.Errorf("entry_price = %v, want 232", got)
		}
	})

	t.Run("degenerate input yields no signals and no error", func(t *testing.T) {
		if got := strat.GenerateSignals(nil); len(got) != 0 {
			t.Errorf("nil series: %d signals", len(got))
		}
		if got := strat.GenerateSignals(&market.Series{Symbol: "X"}); len(got) != 0 {
			t.Errorf("empty series: %d signals", len(got))
		}
		short := breakoutSeries()
		short.Bars = short.Bars[:10]
		if got := strat.GenerateSignals(short); len(got) != 0 {
			t.Errorf("short series: %d signals", len(got))
		}
	})
}

// Signals over a prefix must match the prefix of signals over the full
// series: decisions at bar i may read nothing beyond bar i.
func TestGenerateSignalsNoLookahead(t *testing.T) {
	strat := New(SEPAUS())

	full := strat.GenerateSignals(breakoutSeries(213))
	prefix := strat.GenerateSignals(breakoutSeries())

	if len(full) != 2 || len(prefix) != 1 {
		t.Fatalf("full=%d prefix=%d, want 2 and 1", len(full), len(prefix))
	}
	if full[0].Type != prefix[0].Type ||
		!full[0].Date.Equal(prefix[0].Date) ||
		full[0].Price != prefix[0].Price ||
		full[0].Confidence != prefix[0].Confidence {
		t.Errorf("prefix signal diverged: full=%+v prefix=%+v", full[0], prefix[0])
	}
}

func TestGenerateSignalsStageWeekly(t *testing.T) {
	strat := New(StageWeinstein())

	t.Run("volume burst near the high buys as stage 2A", func(t *testing.T) {
		// 58 weeks rising, final two weeks on 3x volume
		s := risingSeries(406, 0.25, 392, 3_000_000)
		sigs := strat.GenerateSignals(s)
		if len(sigs) != 1 {
			t.Fatalf("got %d signals, want 1: %+v", len(sigs), sigs)
		}
		buy := sigs[0]
		if buy.Type != signal.TypeBuy {
			t.Fatalf("type = %s, want BUY", buy.Type)
		}
		if !strings.Contains(buy.Reason, string(Stage2A)) {
			t.Errorf("reason = %q, want a stage 2A entry", buy.Reason)
		}
		if buy.Confidence <= 0 || buy.Confidence > 1 {
			t.Errorf("confidence out of range: %v", buy.Confidence)
		}
		// Weinstein stop sits on the long weekly MA, below the entry
		if buy.StopLoss == nil || *buy.StopLoss >= buy.Price {
			t.Errorf("stop loss = %v, want below price %v", buy.StopLoss, buy.Price)
		}
	})

	t.Run("steady rise without a burst or transition stays silent", func(t *testing.T) {
		s := risingSeries(406, 0.25, -1, 0)
		if sigs := strat.GenerateSignals(s); len(sigs) != 0 {
			t.Errorf("got %d signals, want none", len(sigs))
		}
	})
}

func TestGenerateSignalsMeanReversion(t *testing.T) {
	strat := New(BollingerRSI())
	sigs := strat.GenerateSignals(flatDropSeries())

	if len(sigs) != 2 {
		t.Fatalf("got %d signals, want BUY then SELL: %+v", len(sigs), sigs)
	}

	buy, sell := sigs[0], sigs[1]
	if buy.Type != signal.TypeBuy || buy.Price != 80 {
		t.Fatalf("buy = %s @ %v, want BUY @ 80", buy.Type, buy.Price)
	}
	if !almost(buy.Confidence, 0.9) {
		t.Errorf("buy confidence = %v, want 0.9 (RSI fully oversold)", buy.Confidence)
	}
	if buy.StopLoss == nil || !almost(*buy.StopLoss, 76) {
		t.Errorf("stop loss = %v, want 76", buy.StopLoss)
	}

	if sell.Type != signal.TypeSell || sell.Price != 95 {
		t.Fatalf("sell = %s @ %v, want SELL @ 95", sell.Type, sell.Price)
	}
	if !strings.Contains(sell.Reason, ReasonTakeProfit) {
		t.Errorf("reason = %q, want %s", sell.Reason, ReasonTakeProfit)
	}
}

// The flat/long alternation must hold for any input: a BUY only while
// flat, a SELL only while long, WATCH never opens a position.
func TestGenerateSignalsAlternation(t *testing.T) {
	series := []*market.Series{
		breakoutSeries(213, 230, 215),
		flatDropSeries(),
		risingSeries(406, 0.25, 392, 3_000_000),
	}
	strats := []*Strategy{New(SEPAUS()), New(BollingerRSI()), New(StageWeinstein())}

	for si, s := range series {
		for _, strat := range strats {
			long := false
			for _, sig := range strat.GenerateSignals(s) {
				switch sig.Type {
				case signal.TypeBuy:
					if long {
						t.Fatalf("series %d, %s: BUY while already long", si, strat.Name())
					}
					long = true
				case signal.TypeSell:
					if !long {
						t.Fatalf("series %d, %s: SELL while flat", si, strat.Name())
					}
					long = false
				}
				if sig.Confidence < 0 || sig.Confidence > 1 {
					t.Fatalf("series %d, %s: confidence %v out of [0,1]", si, strat.Name(), sig.Confidence)
				}
			}
		}
	}
}
