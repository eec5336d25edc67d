package strategy

import (
	"testing"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

func TestVolumeStrength(t *testing.T) {
	tests := []struct {
		ratio, k, want float64
	}{
		{1.0, 2, 0},   // no surge, no contribution
		{0.5, 2, 0},   // below average never contributes
		{2.0, 2, 0.5}, // halfway to the expected magnitude
		{5.0, 2, 1},   // saturates at 1
		{3.0, 0, 0},   // degenerate k disables the term
	}
	for _, tt := range tests {
		if got := volumeStrength(tt.ratio, tt.k); got != tt.want {
			t.Errorf("volumeStrength(%v, %v) = %v, want %v", tt.ratio, tt.k, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if got := clamp01(-0.5); got != 0 {
		t.Errorf("clamp01(-0.5) = %v", got)
	}
	if got := clamp01(1.5); got != 1 {
		t.Errorf("clamp01(1.5) = %v", got)
	}
	if got := clamp01(0.42); got != 0.42 {
		t.Errorf("clamp01(0.42) = %v", got)
	}
}

func TestScoreStageBuyBounds(t *testing.T) {
	cfg := StageWeinstein()
	f := stageFrame(110, 5000, indicator.Some(100), indicator.Some(2), indicator.Some(1000), indicator.Some(120))

	for _, st := range []Stage{Stage2, Stage2A} {
		got := scoreStageBuy(f, 0, cfg, st, 5)
		if got <= 0 || got > 1 {
			t.Errorf("scoreStageBuy(%s) = %v, want in (0, 1]", st, got)
		}
	}
	if s2, s2a := scoreStageBuy(f, 0, cfg, Stage2, 5), scoreStageBuy(f, 0, cfg, Stage2A, 5); s2a <= s2 {
		t.Errorf("2A score %v should exceed plain stage 2 score %v", s2a, s2)
	}
}
