package market

import (
	"time"
)

// Bar 일봉/주봉 OHLCV
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series 단일 종목의 시계열 (타임스탬프 오름차순)
type Series struct {
	Symbol string `json:"symbol"`
	Market string `json:"market"` // US | KR
	Bars   []Bar  `json:"bars"`
}

// Markets
const (
	MarketUS = "US"
	MarketKR = "KR"
)

// Len 바 개수
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// IsEmpty 데이터 없음 여부
func (s *Series) IsEmpty() bool {
	return s.Len() == 0
}

// Validate checks the series invariant: strictly increasing timestamps.
// Gaps (holidays) are legal, duplicates and reversals are not.
func (s *Series) Validate() error {
	if s.IsEmpty() {
		return ErrEmptySeries
	}
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i].Date.After(s.Bars[i-1].Date) {
			return ErrUnorderedSeries
		}
	}
	return nil
}

// ToWeekly 일봉을 주봉으로 변환
//
// Resampling rule per ISO week: first open, max high, min low,
// last close, summed volume. The bar is stamped with the last
// trading day of the week.
func (s *Series) ToWeekly() *Series {
	weekly := &Series{Symbol: s.Symbol, Market: s.Market}
	if s.IsEmpty() {
		return weekly
	}

	var cur Bar
	curYear, curWeek := s.Bars[0].Date.ISOWeek()
	started := false

	for _, b := range s.Bars {
		y, w := b.Date.ISOWeek()
		if !started || y != curYear || w != curWeek {
			if started {
				weekly.Bars = append(weekly.Bars, cur)
			}
			cur = b
			curYear, curWeek = y, w
			started = true
			continue
		}
		if b.High > cur.High {
			cur.High = b.High
		}
		if b.Low < cur.Low {
			cur.Low = b.Low
		}
		cur.Close = b.Close
		cur.Date = b.Date
		cur.Volume += b.Volume
	}
	if started {
		weekly.Bars = append(weekly.Bars, cur)
	}
	return weekly
}
