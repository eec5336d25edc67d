package universe

// 정적 유니버스 리스트
//
// Index membership is external data. The lists here are maintained by
// hand and trimmed to liquid large/mid caps; a stale entry costs one
// skipped fetch, nothing more.

// Nasdaq100 나스닥 100 주요 종목
func Nasdaq100() *List {
	symbols := []string{
		// Mega cap tech
		"AAPL", "MSFT", "GOOGL", "GOOG", "AMZN", "META", "NVDA", "TSLA",
		"AVGO", "ADBE", "CSCO", "NFLX", "INTC", "AMD", "QCOM", "TXN",
		"INTU", "AMAT", "ADI", "LRCX", "KLAC", "SNPS", "CDNS", "MRVL",
		"ASML", "PANW", "CRWD", "WDAY", "TEAM", "NOW", "DDOG", "ZS",
		// Software / cloud
		"ORCL", "CRM", "ADSK", "FTNT", "ANSS", "CPRT", "MCHP",
		"ON", "GFS", "SMCI", "ARM", "MDB", "DASH",
		// Consumer / internet
		"COST", "SBUX", "BKNG", "MAR", "ABNB", "MELI", "PDD", "JD",
		"PYPL", "LULU", "ROST",
		// Healthcare / biotech
		"AMGN", "GILD", "REGN", "VRTX", "BIIB", "MRNA", "ILMN", "DXCM",
		"IDXX", "ALGN",
		// Industrial / other
		"PEP", "ADP", "ISRG", "MDLZ", "MNST", "CTAS", "PAYX", "PCAR",
		"ODFL", "FAST", "CSX", "HON", "GEHC", "VRSK",
		"CEG", "TTWO", "EA", "KHC", "KDP", "DLTR", "BKR", "FANG",
		// Communications
		"CMCSA", "TMUS", "CHTR",
	}
	return fromSymbols("NASDAQ100", MarketUS, symbols)
}

// SP500Top S&P 500 상위 시가총액 샘플 (나스닥 100과 중복 제외 목적의 보완 리스트)
func SP500Top() *List {
	symbols := []string{
		"BRK-B", "LLY", "V", "UNH", "XOM", "JPM", "JNJ", "PG", "MA",
		"HD", "MRK", "CVX", "ABBV", "KO", "WMT", "BAC", "CRM", "MCD",
		"ACN", "LIN", "ABT", "DIS", "WFC", "TMO", "PM", "CAT", "IBM",
		"GE", "AXP", "NKE", "DHR", "PFE", "AMT", "NEE", "UNP", "RTX",
		"SPGI", "LOW", "COP", "T", "GS", "ELV", "SYK", "BLK", "MS",
		"UBER", "BKNG", "PLD", "MDT", "TJX",
	}
	return fromSymbols("SP500TOP", MarketUS, symbols)
}

// KospiTop 코스피 주요 종목 (야후 .KS 접미사)
func KospiTop() *List {
	symbols := []string{
		"005930.KS", // 삼성전자
		"000660.KS", // SK하이닉스
		"373220.KS", // LG에너지솔루션
		"207940.KS", // 삼성바이오로직스
		"005380.KS", // 현대차
		"000270.KS", // 기아
		"068270.KS", // 셀트리온
		"005490.KS", // POSCO홀딩스
		"035420.KS", // NAVER
		"051910.KS", // LG화학
		"006400.KS", // 삼성SDI
		"028260.KS", // 삼성물산
		"105560.KS", // KB금융
		"055550.KS", // 신한지주
		"012330.KS", // 현대모비스
		"035720.KS", // 카카오
		"003670.KS", // 포스코퓨처엠
		"066570.KS", // LG전자
		"096770.KS", // SK이노베이션
		"034730.KS", // SK
		"015760.KS", // 한국전력
		"032830.KS", // 삼성생명
		"009150.KS", // 삼성전기
		"010130.KS", // 고려아연
		"086790.KS", // 하나금융지주
		"033780.KS", // KT&G
		"011200.KS", // HMM
		"042700.KS", // 한미반도체
		"009540.KS", // HD한국조선해양
		"329180.KS", // HD현대중공업
	}
	return fromSymbols("KOSPI", MarketKR, symbols)
}

// KosdaqTop 코스닥 주요 종목 (야후 .KQ 접미사)
func KosdaqTop() *List {
	symbols := []string{
		"247540.KQ", // 에코프로비엠
		"086520.KQ", // 에코프로
		"091990.KQ", // 셀트리온헬스케어
		"022100.KQ", // 포스코DX
		"066970.KQ", // 엘앤에프
		"028300.KQ", // HLB
		"277810.KQ", // 레인보우로보틱스
		"403870.KQ", // HPSP
		"058470.KQ", // 리노공업
		"035900.KQ", // JYP Ent.
		"112040.KQ", // 위메이드
		"293490.KQ", // 카카오게임즈
		"263750.KQ", // 펄어비스
		"041510.KQ", // 에스엠
		"036930.KQ", // 주성엔지니어링
		"095340.KQ", // ISC
		"039030.KQ", // 이오테크닉스
		"145020.KQ", // 휴젤
		"214150.KQ", // 클래시스
		"357780.KQ", // 솔브레인
	}
	return fromSymbols("KOSDAQ", MarketKR, symbols)
}

// Markets (re-exported for callers that only import universe)
const (
	MarketUS = "US"
	MarketKR = "KR"
)

// ForMarket 시장별 기본 유니버스
func ForMarket(market string) *List {
	switch market {
	case MarketKR:
		return Merge("KR", MarketKR, KospiTop(), KosdaqTop())
	default:
		return Merge("US", MarketUS, Nasdaq100(), SP500Top())
	}
}

// FromSymbols 심볼 목록으로 즉석 리스트 생성 (CLI --symbols 용)
func FromSymbols(name, market string, symbols []string) *List {
	return fromSymbols(name, market, symbols)
}

func fromSymbols(name, market string, symbols []string) *List {
	l := &List{Name: name, Market: market}
	seen := make(map[string]bool)
	for _, sym := range symbols {
		if seen[sym] {
			continue
		}
		seen[sym] = true
		l.Stocks = append(l.Stocks, Stock{Symbol: sym, Market: market})
	}
	return l
}
