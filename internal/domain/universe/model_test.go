package universe

import "testing"

func TestMerge(t *testing.T) {
	a := FromSymbols("A", MarketUS, []string{"AAPL", "MSFT"})
	b := FromSymbols("B", MarketUS, []string{"MSFT", "NVDA"})

	m := Merge("AB", MarketUS, a, b)
	got := m.Symbols()
	want := []string{"AAPL", "MSFT", "NVDA"}
	if len(got) != len(want) {
		t.Fatalf("symbols = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbols[%d] = %s, want %s (dedup must keep first-seen order)", i, got[i], want[i])
		}
	}
}

func TestForMarket(t *testing.T) {
	us := ForMarket(MarketUS)
	if len(us.Stocks) == 0 || us.Market != MarketUS {
		t.Fatalf("US universe = %+v", us)
	}
	kr := ForMarket(MarketKR)
	if len(kr.Stocks) == 0 || kr.Market != MarketKR {
		t.Fatalf("KR universe = %+v", kr)
	}
	for _, s := range kr.Stocks {
		if len(s.Symbol) < 3 {
			t.Errorf("suspicious KR symbol %q", s.Symbol)
		}
	}
}
