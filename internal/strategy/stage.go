package strategy

import (
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// Stage 와인스타인 4단계 사이클
type Stage string

const (
	StageUnknown Stage = "UNKNOWN"
	Stage1       Stage = "STAGE_1" // 바닥권 횡보 (basing)
	Stage2       Stage = "STAGE_2" // 상승 추세 (advancing)
	Stage2A      Stage = "STAGE_2A" // 돌파 격발 (breakout)
	Stage3       Stage = "STAGE_3" // 천정권 횡보 (topping)
	Stage4       Stage = "STAGE_4" // 하락 추세 (declining)
)

// Advancing Stage 2 계열 여부 (2 또는 2A)
func (s Stage) Advancing() bool {
	return s == Stage2 || s == Stage2A
}

// ClassifyStage 현재 봉의 스테이지 판별
//
// Two booleans drive four mutually exclusive stages:
//
//	above & rising   -> Stage 2 (2A when volume bursts near the high)
//	above & flat     -> Stage 3
//	below & flat     -> Stage 4
//	below & rising   -> Stage 1
//
// Stage 2A shadows plain Stage 2 for reporting and confidence.
// Indicators still warming up classify as UNKNOWN.
func ClassifyStage(f *indicator.Frame, i int, cfg Config) Stage {
	long, longOK := f.SMALong[i].Get()
	slope, slopeOK := f.SMALongSlope[i].Get()
	if !longOK || !slopeOK {
		return StageUnknown
	}

	bar := f.Bar(i)
	above := bar.Close > long
	rising := slope > 0

	switch {
	case above && rising:
		if stageBreakoutBurst(f, i, cfg) {
			return Stage2A
		}
		return Stage2
	case above && !rising:
		return Stage3
	case !above && !rising:
		return Stage4
	default:
		return Stage1
	}
}

// stageBreakoutBurst Stage 2A 격발 조건: 거래량 폭증 + 고가 근접
func stageBreakoutBurst(f *indicator.Frame, i int, cfg Config) bool {
	ratio, ok := f.VolumeRatio(i)
	if !ok || ratio < cfg.StageVolumeMult {
		return false
	}
	high, ok := f.ExtremeHigh[i].Get()
	if !ok || high <= 0 {
		return false
	}
	return f.Bar(i).Close >= high*cfg.StageHighProximity
}
