package universe

// Stock 유니버스 종목
type Stock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Market string `json:"market"` // US | KR
}

// List 스크리닝 대상 종목 리스트
type List struct {
	Name   string  `json:"name"`
	Market string  `json:"market"`
	Stocks []Stock `json:"stocks"`
}

// Symbols returns the symbols in order.
func (l *List) Symbols() []string {
	out := make([]string, 0, len(l.Stocks))
	for _, s := range l.Stocks {
		out = append(out, s.Symbol)
	}
	return out
}

// Merge 여러 리스트 병합 (중복 제거, 순서 보존)
func Merge(name, market string, lists ...*List) *List {
	merged := &List{Name: name, Market: market}
	seen := make(map[string]bool)
	for _, l := range lists {
		for _, s := range l.Stocks {
			if seen[s.Symbol] {
				continue
			}
			seen[s.Symbol] = true
			merged.Stocks = append(merged.Stocks, s)
		}
	}
	return merged
}
