package strategy

import (
	"math"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// scoreBreakoutBuy BUY 신뢰도 (돌파 패밀리)
//
// confidence = w1*패턴 품질 + w2*거래량 강도 + w3*극값 근접도
//
// Pattern quality is a step score: base 0.3, +0.4 when the segments
// are contracting, +0.3 when the final segment is tight. Volume
// strength scales the surge against the preset's expected magnitude.
// Always clamped to [0,1].
func scoreBreakoutBuy(f *indicator.Frame, i int, cfg Config, vcp VCPResult, volRatio float64) float64 {
	pattern := 0.3
	if vcp.Contracting {
		pattern += 0.4
	}
	if vcp.FinalTight {
		pattern += 0.3
	}

	volume := volumeStrength(volRatio, cfg.ConfVolK)

	proximity := 0.0
	if high, ok := f.ExtremeHigh[i].Get(); ok && high > 0 {
		proximity = clamp01(f.Bar(i).Close / high)
	}

	score := cfg.ConfPatternW*pattern + cfg.ConfVolumeW*volume + cfg.ConfProximityW*proximity
	return clamp01(score)
}

// scoreStageBuy BUY 신뢰도 (스테이지 패밀리)
//
// Stage 2A outranks plain Stage 2; the slope of the long average
// stands in for proximity as the secondary tiebreaker.
func scoreStageBuy(f *indicator.Frame, i int, cfg Config, stage Stage, volRatio float64) float64 {
	pattern := 0.7
	if stage == Stage2A {
		pattern = 1.0
	}

	volume := volumeStrength(volRatio, cfg.ConfVolK)

	proximity := 0.0
	long, longOK := f.SMALong[i].Get()
	slope, slopeOK := f.SMALongSlope[i].Get()
	if longOK && slopeOK && long > 0 {
		proximity = math.Min(1, math.Abs(slope/long)*50)
	}

	score := cfg.ConfPatternW*pattern + cfg.ConfVolumeW*volume + cfg.ConfProximityW*proximity
	return clamp01(score)
}

// volumeStrength min(1, (ratio-1)/k); 비정상 입력은 기여 0
func volumeStrength(ratio, k float64) float64 {
	if k <= 0 || ratio <= 1 {
		return 0
	}
	return math.Min(1, (ratio-1)/k)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
