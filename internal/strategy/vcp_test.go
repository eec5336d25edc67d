package strategy

import (
	"testing"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

func TestDetectVCP(t *testing.T) {
	cfg := SEPAUS()
	s := breakoutSeries()
	f := indicator.Build(s, cfg.Indicator)
	last := s.Len() - 1

	t.Run("ready at the breakout bar", func(t *testing.T) {
		r := DetectVCP(f, last, cfg)
		if !r.Ready {
			t.Fatalf("expected ready, got %+v", r)
		}
		if !r.FinalTight {
			t.Error("final segment should be tight")
		}
		if !r.DryUp {
			t.Error("volume dry-up should hold, the surge window excludes the breakout bar")
		}
		if !r.NearPivot {
			t.Error("close should be near the pivot")
		}
		if r.Pivot != 226 {
			t.Errorf("pivot = %v, want 226 (max high of the prior 10 bars)", r.Pivot)
		}
	})

	t.Run("not ready mid-uptrend without a dry-up", func(t *testing.T) {
		r := DetectVCP(f, 200, cfg)
		if r.DryUp {
			t.Error("constant volume is not a dry-up")
		}
		if r.Ready {
			t.Error("should not be ready without a dry-up")
		}
	})

	t.Run("not ready during warmup", func(t *testing.T) {
		if r := DetectVCP(f, 10, cfg); r.Ready {
			t.Error("missing inputs must fail readiness")
		}
	})
}
