package indicator

import (
	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
)

// Config 지표 윈도우 설정
type Config struct {
	SMAShort int // 단기 이평 (50)
	SMAMid   int // 중기 이평 (150 | 120)
	SMALong  int // 장기 이평 (200 | 240)

	EMAFast int // 트레일링용 EMA (10)
	EMASlow int // 트레일링용 EMA (20)

	SlopeLookback int // 장기 이평 기울기 비교 구간 (20)
	RSLookback    int // 상대강도 수익률 구간 (30)

	ExtremeLookback int // 52주 고가/저가 근사 윈도우 (252 일봉 | 52 주봉)
	PivotLookback   int // 피벗 (직전 N봉 고가, 현재봉 제외)

	VolSurgeWindow int // 거래량 단기 평균 (돌파 확인용)
	VolBaseWindow  int // 거래량 장기 베이스라인

	SegmentBars int // VCP 세그먼트당 봉 수 (윈도우 = 3 세그먼트)
}

// MinBars 지표가 모두 정의되는 최소 봉 수
func (c Config) MinBars() int {
	min := c.SMALong + c.SlopeLookback
	if n := c.ExtremeLookback; n > min {
		min = n
	}
	if n := 3 * c.SegmentBars; n > min {
		min = n
	}
	if n := c.VolBaseWindow + 1; n > min {
		min = n
	}
	return min
}

// Frame 지표가 계산된 시계열
//
// Every derived value at index i depends only on bars at index <= i.
// Warm-up indices hold None and must fail any rule that reads them.
type Frame struct {
	Series *market.Series

	SMAShort []Value
	SMAMid   []Value
	SMALong  []Value

	EMAFast []Value
	EMASlow []Value

	// SMALong[i] - SMALong[i-SlopeLookback], 양수면 우상향
	SMALongSlope []Value

	// close[i]/close[i-RSLookback] - 1
	RS []Value

	ExtremeHigh []Value // 종가 기준 rolling max (52주 신고가 근사)
	ExtremeLow  []Value // 저가 기준 rolling min

	// 직전 PivotLookback봉 고가의 최대값 (현재봉 제외)
	PivotHigh []Value

	// 직전 N봉 평균 거래량, 둘 다 현재봉 제외. The breakout bar's own
	// spike must not inflate the dry-up mean or its baseline.
	VolSurgeAvg []Value
	VolBaseAvg  []Value

	cfg Config
}

// Len 봉 개수
func (f *Frame) Len() int {
	return f.Series.Len()
}

// Bar i번째 봉
func (f *Frame) Bar(i int) market.Bar {
	return f.Series.Bars[i]
}

// Config 프레임을 만들 때 쓴 윈도우 설정
func (f *Frame) Config() Config {
	return f.cfg
}

// Build computes the full indicator frame for a series.
// The frame is immutable after creation.
func Build(s *market.Series, cfg Config) *Frame {
	n := s.Len()
	f := &Frame{Series: s, cfg: cfg}

	closes := make([]float64, n)
	for i, b := range s.Bars {
		closes[i] = b.Close
	}

	f.SMAShort = rollingMean(closes, cfg.SMAShort)
	f.SMAMid = rollingMean(closes, cfg.SMAMid)
	f.SMALong = rollingMean(closes, cfg.SMALong)

	f.EMAFast = ema(closes, cfg.EMAFast)
	f.EMASlow = ema(closes, cfg.EMASlow)

	f.SMALongSlope = diffLagged(f.SMALong, cfg.SlopeLookback)
	f.RS = returnOver(closes, cfg.RSLookback)

	f.ExtremeHigh = rollingMax(closes, cfg.ExtremeLookback)

	lows := make([]float64, n)
	highs := make([]float64, n)
	vols := make([]float64, n)
	for i, b := range s.Bars {
		lows[i] = b.Low
		highs[i] = b.High
		vols[i] = float64(b.Volume)
	}
	f.ExtremeLow = rollingMin(lows, cfg.ExtremeLookback)
	f.PivotHigh = rollingMaxExcl(highs, cfg.PivotLookback)
	f.VolSurgeAvg = rollingMeanExcl(vols, cfg.VolSurgeWindow)
	f.VolBaseAvg = rollingMeanExcl(vols, cfg.VolBaseWindow)

	return f
}

// SegmentVolatility VCP 3분할 변동성
//
// The window of 3*SegmentBars bars ending at i is split into three
// contiguous segments, oldest first. Each segment's volatility is
// (maxHigh - minLow) / minLow. Returns ok=false when the history is
// short or a segment's minLow is degenerate (zero).
func (f *Frame) SegmentVolatility(i int) (segs [3]float64, ok bool) {
	w := f.cfg.SegmentBars
	if w <= 0 || i+1 < 3*w {
		return segs, false
	}
	start := i + 1 - 3*w
	for s := 0; s < 3; s++ {
		lo, hi := 0.0, 0.0
		for j := start + s*w; j < start+(s+1)*w; j++ {
			b := f.Series.Bars[j]
			if lo == 0 || b.Low < lo {
				lo = b.Low
			}
			if b.High > hi {
				hi = b.High
			}
		}
		if lo <= 0 {
			return segs, false
		}
		segs[s] = (hi - lo) / lo
	}
	return segs, true
}

// VolumeRatio 현재봉 거래량 / 베이스라인 평균
//
// Degenerate baseline (missing or zero) reports ok=false; callers
// treat that as "condition fails", never as a division error.
func (f *Frame) VolumeRatio(i int) (float64, bool) {
	base, valid := f.VolBaseAvg[i].Get()
	if !valid || base <= 0 {
		return 0, false
	}
	return float64(f.Series.Bars[i].Volume) / base, true
}

// rollingMean 단순 이동평균 (현재봉 포함, 워밍업은 None)
func rollingMean(vals []float64, window int) []Value {
	out := make([]Value, len(vals))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i >= window-1 {
			out[i] = Some(sum / float64(window))
		}
	}
	return out
}

// rollingMeanExcl 직전 window봉 평균 (현재봉 제외)
//
// Keeps a one-bar spike from inflating its own baseline.
func rollingMeanExcl(vals []float64, window int) []Value {
	out := make([]Value, len(vals))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i := range vals {
		if i > 0 {
			sum += vals[i-1]
		}
		if i > window {
			sum -= vals[i-window-1]
		}
		if i >= window {
			out[i] = Some(sum / float64(window))
		}
	}
	return out
}

// ema 지수 이동평균 (pandas ewm adjust=False 방식, 첫 종가로 시드)
func ema(vals []float64, span int) []Value {
	out := make([]Value, len(vals))
	if span <= 0 || len(vals) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	cur := vals[0]
	out[0] = Some(cur)
	for i := 1; i < len(vals); i++ {
		cur = alpha*vals[i] + (1-alpha)*cur
		out[i] = Some(cur)
	}
	return out
}

func rollingMax(vals []float64, window int) []Value {
	out := make([]Value, len(vals))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		max := vals[i]
		for j := i - window + 1; j < i; j++ {
			if vals[j] > max {
				max = vals[j]
			}
		}
		out[i] = Some(max)
	}
	return out
}

func rollingMin(vals []float64, window int) []Value {
	out := make([]Value, len(vals))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		min := vals[i]
		for j := i - window + 1; j < i; j++ {
			if vals[j] < min {
				min = vals[j]
			}
		}
		out[i] = Some(min)
	}
	return out
}

// rollingMaxExcl 직전 window봉 최대값 (현재봉 제외)
//
// The pivot must not include the breakout bar itself; close > pivot
// would otherwise be unreachable since close <= high.
func rollingMaxExcl(vals []float64, window int) []Value {
	out := make([]Value, len(vals))
	if window <= 0 {
		return out
	}
	for i := window; i < len(vals); i++ {
		max := vals[i-window]
		for j := i - window + 1; j < i; j++ {
			if vals[j] > max {
				max = vals[j]
			}
		}
		out[i] = Some(max)
	}
	return out
}

func diffLagged(vals []Value, lag int) []Value {
	out := make([]Value, len(vals))
	if lag <= 0 {
		return out
	}
	for i := lag; i < len(vals); i++ {
		cur, ok1 := vals[i].Get()
		prev, ok2 := vals[i-lag].Get()
		if ok1 && ok2 {
			out[i] = Some(cur - prev)
		}
	}
	return out
}

func returnOver(closes []float64, lag int) []Value {
	out := make([]Value, len(closes))
	if lag <= 0 {
		return out
	}
	for i := lag; i < len(closes); i++ {
		if closes[i-lag] <= 0 {
			continue
		}
		out[i] = Some(closes[i]/closes[i-lag] - 1)
	}
	return out
}
