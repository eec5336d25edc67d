package market

import (
	"errors"
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestSeriesValidate(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		s := &Series{Symbol: "AAPL"}
		if err := s.Validate(); !errors.Is(err, ErrEmptySeries) {
			t.Errorf("err = %v, want ErrEmptySeries", err)
		}
	})

	t.Run("duplicate timestamp", func(t *testing.T) {
		s := &Series{Symbol: "AAPL", Bars: []Bar{
			{Date: d(2024, 1, 2)},
			{Date: d(2024, 1, 2)},
		}}
		if err := s.Validate(); !errors.Is(err, ErrUnorderedSeries) {
			t.Errorf("err = %v, want ErrUnorderedSeries", err)
		}
	})

	t.Run("gaps are legal", func(t *testing.T) {
		s := &Series{Symbol: "AAPL", Bars: []Bar{
			{Date: d(2024, 1, 2)},
			{Date: d(2024, 1, 5)}, // holiday gap
			{Date: d(2024, 1, 8)},
		}}
		if err := s.Validate(); err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})
}

func TestToWeekly(t *testing.T) {
	// one full week (Mon 2024-01-01 .. Fri 2024-01-05) and a partial one
	s := &Series{Symbol: "AAPL", Market: MarketUS, Bars: []Bar{
		{Date: d(2024, 1, 1), Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
		{Date: d(2024, 1, 2), Open: 11, High: 15, Low: 10, Close: 14, Volume: 200},
		{Date: d(2024, 1, 5), Open: 14, High: 14, Low: 8, Close: 13, Volume: 300},
		{Date: d(2024, 1, 8), Open: 13, High: 16, Low: 12, Close: 15, Volume: 400},
		{Date: d(2024, 1, 10), Open: 15, High: 18, Low: 14, Close: 17, Volume: 500},
	}}

	w := s.ToWeekly()
	if w.Len() != 2 {
		t.Fatalf("got %d weekly bars, want 2", w.Len())
	}

	first := w.Bars[0]
	if first.Open != 10 || first.High != 15 || first.Low != 8 || first.Close != 13 {
		t.Errorf("week 1 OHLC = %v/%v/%v/%v, want 10/15/8/13",
			first.Open, first.High, first.Low, first.Close)
	}
	if first.Volume != 600 {
		t.Errorf("week 1 volume = %d, want 600", first.Volume)
	}
	if !first.Date.Equal(d(2024, 1, 5)) {
		t.Errorf("week 1 stamped %v, want the last trading day 2024-01-05", first.Date)
	}

	second := w.Bars[1]
	if second.Open != 13 || second.Close != 17 || second.Volume != 900 {
		t.Errorf("week 2 = %+v", second)
	}
	if w.Symbol != "AAPL" || w.Market != MarketUS {
		t.Errorf("weekly series lost attribution: %s/%s", w.Symbol, w.Market)
	}

	t.Run("empty input stays empty", func(t *testing.T) {
		e := (&Series{Symbol: "X"}).ToWeekly()
		if !e.IsEmpty() {
			t.Errorf("got %d bars, want 0", e.Len())
		}
	})
}
