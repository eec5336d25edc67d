package strategy

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// Strategy 설정 기반 신호 생성 엔진
//
// One engine per family; presets only change the numbers. A Strategy
// is stateless across series and safe for concurrent use.
type Strategy struct {
	cfg Config
}

// New 설정으로 전략 생성
func New(cfg Config) *Strategy {
	return &Strategy{cfg: cfg}
}

// FromPreset 프리셋 이름으로 전략 생성
func FromPreset(name string) (*Strategy, error) {
	cfg, err := Preset(name)
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// Name 프리셋/설정 이름
func (s *Strategy) Name() string {
	return s.cfg.Name
}

// Config 전략 설정값 사본
func (s *Strategy) Config() Config {
	return s.cfg
}

// GenerateSignals 시계열 전체를 한 번 순회하며 신호 생성
//
// The walk is flat -> long -> flat: at most one open position at any
// index, no pyramiding, no re-entry on an exit bar. Every decision at
// index i reads only bars at index <= i. A position still open at the
// end of the series is not reported.
//
// Short, empty or unordered input yields an empty list, never an error.
func (s *Strategy) GenerateSignals(series *market.Series) []signal.Signal {
	if series == nil || series.IsEmpty() {
		return nil
	}
	if err := series.Validate(); err != nil {
		log.Warn().Err(err).Str("symbol", series.Symbol).Msg("series rejected")
		return nil
	}
	if s.cfg.Weekly {
		series = series.ToWeekly()
	}
	if series.Len() < s.cfg.MinBars() {
		log.Debug().
			Err(market.ErrInsufficientHistory).
			Str("symbol", series.Symbol).
			Str("strategy", s.cfg.Name).
			Int("bars", series.Len()).
			Int("required", s.cfg.MinBars()).
			Msg("skipping symbol")
		return nil
	}

	if s.cfg.Family == FamilyMeanReversion {
		return s.meanReversionSignals(series)
	}

	f := indicator.Build(series, s.cfg.Indicator)

	var out []signal.Signal
	var pos *position
	prevStage := StageUnknown

	for i := 0; i < f.Len(); i++ {
		bar := f.Bar(i)

		if pos != nil {
			if bar.Close > pos.peak {
				pos.peak = bar.Close
			}
			var invalid *ExitTrigger
			switch s.cfg.Family {
			case FamilyStage:
				invalid = s.stageInvalid(f, i)
			default:
				invalid = s.templateInvalid(f, i)
			}
			if trig := evaluateExit(f, i, pos, s.cfg, invalid); trig != nil {
				out = append(out, s.sellSignal(f, i, pos, trig))
				pos = nil
			}
			if s.cfg.Family == FamilyStage {
				prevStage = ClassifyStage(f, i, s.cfg)
			}
			continue
		}

		switch s.cfg.Family {
		case FamilyStage:
			cur := ClassifyStage(f, i, s.cfg)
			if sig := s.stageEntry(f, i, prevStage, cur); sig != nil {
				out = append(out, *sig)
				if sig.Type == signal.TypeBuy {
					pos = &position{entryPrice: bar.Close, entryIndex: i, peak: bar.Close}
				}
			}
			prevStage = cur
		default:
			if sig := s.breakoutEntry(f, i); sig != nil {
				out = append(out, *sig)
				if sig.Type == signal.TypeBuy {
					pos = &position{entryPrice: bar.Close, entryIndex: i, peak: bar.Close}
				}
			}
		}
	}

	if pos != nil {
		log.Debug().
			Str("symbol", series.Symbol).
			Str("strategy", s.cfg.Name).
			Float64("entry", pos.entryPrice).
			Msg("position still open at end of series")
	}
	return out
}

// breakoutEntry 돌파 패밀리 진입 판정
//
// Template pass + VCP ready + close above pivot are all required.
// Volume decides the grade: at or above the surge multiple it is a
// BUY, between 1x and the multiple it is a lower-conviction WATCH,
// below average volume nothing fires.
func (s *Strategy) breakoutEntry(f *indicator.Frame, i int) *signal.Signal {
	tt := CheckTrendTemplate(f, i, s.cfg)
	if !tt.Pass() {
		return nil
	}
	vcp := DetectVCP(f, i, s.cfg)
	if !vcp.Ready {
		return nil
	}
	bar := f.Bar(i)
	if bar.Close <= vcp.Pivot {
		return nil
	}
	ratio, ok := f.VolumeRatio(i)
	if !ok || ratio < 1.0 {
		return nil
	}

	conf := scoreBreakoutBuy(f, i, s.cfg, vcp, ratio)
	metrics := map[string]float64{
		"pivot_price":  vcp.Pivot,
		"volume_ratio": ratio,
		"vcp_final":    vcp.Segments[2],
	}
	if high, hok := f.ExtremeHigh[i].Get(); hok && high > 0 {
		metrics["pct_from_52w_high"] = (bar.Close/high - 1) * 100
	}

	if ratio >= s.cfg.VolSurgeMult {
		sig := s.newSignal(f, i, signal.TypeBuy)
		sig.Reason = fmt.Sprintf("[BREAKOUT] pivot cleared + %.1fx volume surge + VCP", ratio)
		sig.Confidence = conf
		sig.Metrics = metrics
		stop := bar.Close * (1 - s.cfg.StopLossPct)
		sig.StopLoss = &stop
		if s.cfg.TakeProfitPct > 0 {
			tp := bar.Close * (1 + s.cfg.TakeProfitPct)
			sig.TakeProfit = &tp
		}
		return &sig
	}

	sig := s.newSignal(f, i, signal.TypeWatch)
	sig.Reason = fmt.Sprintf("[SETUP] pivot cleared, volume %.1fx below %.1fx surge", ratio, s.cfg.VolSurgeMult)
	sig.Confidence = conf
	sig.Metrics = metrics
	return &sig
}

// stageEntry 스테이지 패밀리 진입 판정
//
// Two routes in: a Stage 2A burst fires on its own, a plain Stage 2
// only on the 1 -> 2 transition. Both require positive relative
// strength.
func (s *Strategy) stageEntry(f *indicator.Frame, i int, prev, cur Stage) *signal.Signal {
	if !cur.Advancing() {
		return nil
	}
	rs, ok := f.RS[i].Get()
	if !ok || rs <= s.cfg.MinRS {
		return nil
	}
	ratio, ratioOK := f.VolumeRatio(i)
	if !ratioOK {
		ratio = 0
	}

	var reason string
	switch {
	case cur == Stage2A:
		reason = fmt.Sprintf("[STAGE_2A] breakout burst (%.1fx volume)", ratio)
	case prev == Stage1 && cur == Stage2:
		reason = "[STAGE_2] advance begins (stage 1 to 2 transition)"
	default:
		return nil
	}

	sig := s.newSignal(f, i, signal.TypeBuy)
	sig.Reason = reason
	sig.Confidence = scoreStageBuy(f, i, s.cfg, cur, ratio)

	bar := f.Bar(i)
	long, longOK := f.SMALong[i].Get()
	slope, _ := f.SMALongSlope[i].Get()

	// 와인스타인 손절선은 장기 이평 자체
	stop := bar.Close * (1 - s.cfg.StopLossPct)
	if longOK {
		stop = long
	}
	sig.StopLoss = &stop
	if s.cfg.TakeProfitPct > 0 {
		tp := bar.Close * (1 + s.cfg.TakeProfitPct)
		sig.TakeProfit = &tp
	}
	sig.Metrics = map[string]float64{
		"ma_long":      long,
		"ma_slope":     slope,
		"volume_ratio": ratio,
		"rs":           rs,
	}
	return &sig
}

// templateInvalid 돌파 패밀리 패턴 붕괴: 템플릿 조건 중 하나라도 깨짐
func (s *Strategy) templateInvalid(f *indicator.Frame, i int) *ExitTrigger {
	tt := CheckTrendTemplate(f, i, s.cfg)
	if tt.Pass() {
		return nil
	}
	return &ExitTrigger{
		Reason:     ReasonPatternInvalid,
		Detail:     "trend template broken: " + tt.Failed(),
		Confidence: 0.8,
	}
}

// stageInvalid 스테이지 패밀리 패턴 붕괴: 장기 이평 이탈 또는 Stage 3/4
func (s *Strategy) stageInvalid(f *indicator.Frame, i int) *ExitTrigger {
	if long, ok := f.SMALong[i].Get(); ok && f.Bar(i).Close < long {
		return &ExitTrigger{
			Reason:     ReasonPatternInvalid,
			Detail:     "close below long MA",
			Confidence: 0.9,
		}
	}
	if st := ClassifyStage(f, i, s.cfg); st == Stage3 || st == Stage4 {
		return &ExitTrigger{
			Reason:     ReasonPatternInvalid,
			Detail:     "deteriorated to " + string(st),
			Confidence: 0.9,
		}
	}
	return nil
}

// meanReversionSignals 볼린저 하단 + RSI 과매도 진입, 상단/과매수 청산
func (s *Strategy) meanReversionSignals(series *market.Series) []signal.Signal {
	n := series.Len()
	closes := make([]float64, n)
	for i, b := range series.Bars {
		closes[i] = b.Close
	}
	mid, upper, lower := indicator.Bollinger(closes, s.cfg.BBPeriod, s.cfg.BBStd)
	rsi := indicator.RSI(closes, s.cfg.RSIPeriod)

	var out []signal.Signal
	var pos *position

	for i := 0; i < n; i++ {
		bar := series.Bars[i]
		r, rOK := rsi[i].Get()

		if pos == nil {
			lo, loOK := lower[i].Get()
			if !loOK || !rOK || bar.Close > lo || r > s.cfg.RSIOversold {
				continue
			}
			sig := signal.New(series.Symbol, bar.Date, signal.TypeBuy, bar.Close)
			sig.Market = series.Market
			sig.Strategy = s.cfg.Name
			sig.Reason = fmt.Sprintf("[OVERSOLD] close below lower band, RSI %.0f", r)
			sig.Confidence = clamp01(0.6 + (s.cfg.RSIOversold-r)/100)
			stop := bar.Close * (1 - s.cfg.StopLossPct)
			tp := bar.Close * (1 + s.cfg.TakeProfitPct)
			sig.StopLoss = &stop
			sig.TakeProfit = &tp
			m, _ := mid[i].Get()
			sig.Metrics = map[string]float64{
				"rsi":      r,
				"bb_lower": lo,
				"bb_mid":   m,
			}
			out = append(out, sig)
			pos = &position{entryPrice: bar.Close, entryIndex: i, peak: bar.Close}
			continue
		}

		if bar.Close > pos.peak {
			pos.peak = bar.Close
		}

		var trig *ExitTrigger
		profit := pos.profit(bar.Close)
		up, upOK := upper[i].Get()
		switch {
		case s.cfg.StopLossPct > 0 && bar.Close <= pos.entryPrice*(1-s.cfg.StopLossPct):
			trig = &ExitTrigger{
				Reason:     ReasonStopLoss,
				Detail:     fmt.Sprintf("%.1f%% stop hit (%.1f%%)", -s.cfg.StopLossPct*100, profit*100),
				Confidence: 1.0,
			}
		case s.cfg.TakeProfitPct > 0 && bar.Close >= pos.entryPrice*(1+s.cfg.TakeProfitPct):
			trig = &ExitTrigger{
				Reason:     ReasonTakeProfit,
				Detail:     fmt.Sprintf("+%.0f%% target hit", s.cfg.TakeProfitPct*100),
				Confidence: 1.0,
			}
		case upOK && bar.Close >= up:
			trig = &ExitTrigger{
				Reason:     ReasonMeanRevert,
				Detail:     "close above upper band",
				Confidence: 0.8,
			}
		case rOK && r >= s.cfg.RSIOverbought:
			trig = &ExitTrigger{
				Reason:     ReasonMeanRevert,
				Detail:     fmt.Sprintf("RSI overbought (%.0f)", r),
				Confidence: 0.8,
			}
		}
		if trig != nil {
			sig := signal.New(series.Symbol, bar.Date, signal.TypeSell, bar.Close)
			sig.Market = series.Market
			sig.Strategy = s.cfg.Name
			sig.Reason = fmt.Sprintf("[%s] %s", trig.Reason, trig.Detail)
			sig.Confidence = trig.Confidence
			sig.Metrics = map[string]float64{
				"entry_price": pos.entryPrice,
				"profit_pct":  profit * 100,
			}
			out = append(out, sig)
			pos = nil
		}
	}
	return out
}

func (s *Strategy) newSignal(f *indicator.Frame, i int, typ signal.Type) signal.Signal {
	bar := f.Bar(i)
	sig := signal.New(f.Series.Symbol, bar.Date, typ, bar.Close)
	sig.Market = f.Series.Market
	sig.Strategy = s.cfg.Name
	return sig
}

func (s *Strategy) sellSignal(f *indicator.Frame, i int, pos *position, trig *ExitTrigger) signal.Signal {
	bar := f.Bar(i)
	sig := s.newSignal(f, i, signal.TypeSell)
	sig.Reason = fmt.Sprintf("[%s] %s", trig.Reason, trig.Detail)
	sig.Confidence = trig.Confidence
	sig.Metrics = map[string]float64{
		"entry_price": pos.entryPrice,
		"profit_pct":  pos.profit(bar.Close) * 100,
		"peak_price":  pos.peak,
	}
	return sig
}
