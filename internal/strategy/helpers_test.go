package strategy

import (
	"time"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// 2024-01-01 is a Monday, so ISO weeks line up with 7-bar blocks.
var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func daily(i int) time.Time {
	return day0.AddDate(0, 0, i)
}

// breakoutSeries builds 252 rising bars, a 30-bar three-step
// contraction around 225, then a breakout bar closing at 232 on 5x
// baseline volume. Extra bars continue the date sequence.
func breakoutSeries(extra ...float64) *market.Series {
	var bars []market.Bar
	for i := 0; i < 252; i++ {
		c := 100 + 0.5*float64(i)
		bars = append(bars, market.Bar{
			Date: daily(i), Open: c, High: c + 1, Low: c - 1, Close: c,
			Volume: 1_000_000,
		})
	}
	i := 252
	for _, seg := range [3][2]float64{{231, 219}, {228, 222}, {226, 224}} {
		for k := 0; k < 10; k++ {
			bars = append(bars, market.Bar{
				Date: daily(i), Open: 225, High: seg[0], Low: seg[1], Close: 225,
				Volume: 300_000,
			})
			i++
		}
	}
	bars = append(bars, market.Bar{
		Date: daily(i), Open: 226, High: 233, Low: 225, Close: 232,
		Volume: 2_900_000,
	})
	i++
	for _, c := range extra {
		bars = append(bars, market.Bar{
			Date: daily(i), Open: c, High: c + 1, Low: c - 1, Close: c,
			Volume: 1_000_000,
		})
		i++
	}
	return &market.Series{Symbol: "TEST", Market: market.MarketUS, Bars: bars}
}

// risingSeries builds n daily bars rising stepPerBar per bar. Bars at
// index >= spikeFrom carry spikeVolume instead of 1M.
func risingSeries(n int, stepPerBar float64, spikeFrom int, spikeVolume int64) *market.Series {
	var bars []market.Bar
	for i := 0; i < n; i++ {
		c := 100 + stepPerBar*float64(i)
		vol := int64(1_000_000)
		if spikeFrom >= 0 && i >= spikeFrom {
			vol = spikeVolume
		}
		bars = append(bars, market.Bar{
			Date: daily(i), Open: c, High: c + 0.5, Low: c - 0.5, Close: c,
			Volume: vol,
		})
	}
	return &market.Series{Symbol: "TEST", Market: market.MarketUS, Bars: bars}
}

// flatDropSeries: 40 flat bars at 100, one capitulation bar at 80,
// then a staircase recovery.
func flatDropSeries() *market.Series {
	var bars []market.Bar
	closes := make([]float64, 0, 46)
	for i := 0; i < 40; i++ {
		closes = append(closes, 100)
	}
	closes = append(closes, 80, 85, 90, 95, 100, 105)
	for i, c := range closes {
		bars = append(bars, market.Bar{
			Date: daily(i), Open: c, High: c + 0.5, Low: c - 0.5, Close: c,
			Volume: 500_000,
		})
	}
	return &market.Series{Symbol: "TEST", Market: market.MarketUS, Bars: bars}
}

// exitFrame builds a single-bar frame with fixed EMA levels for
// exercising exit rules in isolation.
func exitFrame(close, emaFast, emaSlow float64) *indicator.Frame {
	s := &market.Series{Symbol: "TEST", Bars: []market.Bar{
		{Date: day0, Open: close, High: close, Low: close, Close: close, Volume: 1000},
	}}
	return &indicator.Frame{
		Series:  s,
		EMAFast: []indicator.Value{indicator.Some(emaFast)},
		EMASlow: []indicator.Value{indicator.Some(emaSlow)},
	}
}

// stageFrame builds a single-bar frame with fixed long-MA state for
// exercising stage classification in isolation.
func stageFrame(close float64, volume int64, long, slope, volBase, exHigh indicator.Value) *indicator.Frame {
	s := &market.Series{Symbol: "TEST", Bars: []market.Bar{
		{Date: day0, Open: close, High: close, Low: close, Close: close, Volume: volume},
	}}
	return &indicator.Frame{
		Series:       s,
		SMALong:      []indicator.Value{long},
		SMALongSlope: []indicator.Value{slope},
		VolBaseAvg:   []indicator.Value{volBase},
		ExtremeHigh:  []indicator.Value{exHigh},
	}
}
