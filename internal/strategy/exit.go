package strategy

import (
	"fmt"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// 청산 사유 코드
const (
	ReasonStopLoss       = "STOP_LOSS"
	ReasonTrailFastEMA   = "TRAIL_EMA_FAST"
	ReasonTrailSlowEMA   = "TRAIL_EMA_SLOW"
	ReasonTrailOffPeak   = "TRAIL_OFF_PEAK"
	ReasonBreakevenLock  = "BREAKEVEN_LOCK"
	ReasonTakeProfit     = "TAKE_PROFIT"
	ReasonPatternInvalid = "PATTERN_INVALID"
	ReasonMeanRevert     = "MEAN_REVERT"
)

// position 오픈 포지션 추적 상태 (평가 전용, 체결과 무관)
type position struct {
	entryPrice float64
	entryIndex int
	peak       float64 // 보유 중 최고 종가
}

func (p *position) profit(price float64) float64 {
	return price/p.entryPrice - 1
}

func (p *position) peakProfit() float64 {
	return p.peak/p.entryPrice - 1
}

// ExitTrigger 청산 판정 결과
type ExitTrigger struct {
	Reason     string
	Detail     string
	Confidence float64
}

// evaluateExit 고정 우선순위로 청산 규칙 평가
//
// Order is fixed and short-circuits on the first hit:
//
//	1. 고정 손절         (항상, 수익 구간과 무관)
//	2. 차등 트레일링     (상위 티어 EMA fast -> 하위 티어 EMA slow / 고점 이탈)
//	3. 본전 방어         (고점 수익 달성 후 본전 붕괴)
//	4. 고정 익절
//	5. 패턴 붕괴         (패밀리별, 엔진이 판정해서 전달)
//
// Hard risk triggers report confidence 1.0, discretionary ones 0.8~0.9.
// Rules with zero-valued thresholds are disabled for the preset.
func evaluateExit(f *indicator.Frame, i int, pos *position, cfg Config, invalid *ExitTrigger) *ExitTrigger {
	close := f.Bar(i).Close
	profit := pos.profit(close)
	peakProfit := pos.peakProfit()

	// 1. 고정 손절
	if cfg.StopLossPct > 0 && close <= pos.entryPrice*(1-cfg.StopLossPct) {
		return &ExitTrigger{
			Reason:     ReasonStopLoss,
			Detail:     fmt.Sprintf("%.1f%% stop hit (%.1f%%)", -cfg.StopLossPct*100, profit*100),
			Confidence: 1.0,
		}
	}

	// 2. 차등 트레일링: 수익 티어가 높을수록 빠른 선에 붙인다
	if cfg.TrailTier2Pct > 0 && profit >= cfg.TrailTier2Pct {
		if fast, ok := f.EMAFast[i].Get(); ok && close < fast {
			return &ExitTrigger{
				Reason:     ReasonTrailFastEMA,
				Detail:     fmt.Sprintf("tier2 trail: close below EMA%d at +%.1f%%", f.Config().EMAFast, profit*100),
				Confidence: 1.0,
			}
		}
	} else if cfg.TrailTier1Pct > 0 && profit >= cfg.TrailTier1Pct {
		if slow, ok := f.EMASlow[i].Get(); ok && close < slow {
			return &ExitTrigger{
				Reason:     ReasonTrailSlowEMA,
				Detail:     fmt.Sprintf("tier1 trail: close below EMA%d at +%.1f%%", f.Config().EMASlow, profit*100),
				Confidence: 0.9,
			}
		}
	}
	if cfg.TrailOffPeakPct > 0 && cfg.TrailActivationPct > 0 &&
		peakProfit >= cfg.TrailActivationPct &&
		close <= pos.peak*(1-cfg.TrailOffPeakPct) {
		return &ExitTrigger{
			Reason:     ReasonTrailOffPeak,
			Detail:     fmt.Sprintf("%.0f%% off peak (peak +%.1f%%)", cfg.TrailOffPeakPct*100, peakProfit*100),
			Confidence: 0.9,
		}
	}

	// 3. 본전 방어: 고점 수익을 찍고 본전 부근까지 되밀린 경우
	if cfg.BreakevenTrigger > 0 && peakProfit >= cfg.BreakevenTrigger {
		if cfg.SafeZonePct > 0 {
			// 한국형: 본전 + 안전마진 아래로 내려오면 바로 정리
			if close <= pos.entryPrice*(1+cfg.SafeZonePct) {
				return &ExitTrigger{
					Reason:     ReasonBreakevenLock,
					Detail:     fmt.Sprintf("safe zone breach after +%.1f%% peak", peakProfit*100),
					Confidence: 0.9,
				}
			}
		} else if cfg.BreakevenBandPct > 0 && profit <= cfg.BreakevenBandPct {
			return &ExitTrigger{
				Reason:     ReasonBreakevenLock,
				Detail:     fmt.Sprintf("profit decayed to %.2f%% after +%.1f%% peak", profit*100, peakProfit*100),
				Confidence: 0.9,
			}
		}
	}

	// 4. 고정 익절
	if cfg.TakeProfitPct > 0 && close >= pos.entryPrice*(1+cfg.TakeProfitPct) {
		return &ExitTrigger{
			Reason:     ReasonTakeProfit,
			Detail:     fmt.Sprintf("+%.0f%% target hit", cfg.TakeProfitPct*100),
			Confidence: 1.0,
		}
	}

	// 5. 패턴 붕괴 (최후순위)
	return invalid
}
