package strategy

import (
	"strings"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// Trend template sub-condition names (Reason/진단용)
const (
	CheckCloseAboveMid   = "close>sma_mid"
	CheckCloseAboveLong  = "close>sma_long"
	CheckMidAboveLong    = "sma_mid>sma_long"
	CheckLongRising      = "sma_long_rising"
	CheckShortAboveBoth  = "sma_short>mid,long"
	CheckCloseAboveShort = "close>sma_short"
	CheckAboveLow        = "clear_of_52w_low"
	CheckNearHigh        = "near_52w_high"
	CheckRSPositive      = "rs_positive"
)

// TemplateCheck 트렌드 템플릿 개별 조건 결과
type TemplateCheck struct {
	Name string
	Pass bool
}

// TemplateResult 트렌드 템플릿 평가 결과 (진단 breakdown 포함)
type TemplateResult struct {
	Checks []TemplateCheck
}

// Pass 전체 통과 여부 (all-or-nothing: 하나라도 실패하면 탈락)
func (r TemplateResult) Pass() bool {
	if len(r.Checks) == 0 {
		return false
	}
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// Failed 실패한 조건 이름들
func (r TemplateResult) Failed() string {
	var names []string
	for _, c := range r.Checks {
		if !c.Pass {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ",")
}

// CheckTrendTemplate 트렌드 템플릿 검증 (미너비니 8조건)
//
//  1. 종가 > 중기/장기 이평
//  2. 중기 > 장기
//  3. 장기 이평 우상향 (N봉 전 대비)
//  4. 단기 > 중기, 단기 > 장기 (정배열)
//  5. 종가 > 단기 이평
//  6. 52주 저가 대비 +25~30% 이상
//  7. 52주 고가 대비 -25% 이내
//  8. 상대강도 양수
//
// Missing indicator inputs are a hard fail for the condition that
// reads them, never a skip.
func CheckTrendTemplate(f *indicator.Frame, i int, cfg Config) TemplateResult {
	bar := f.Bar(i)
	close := bar.Close

	smaS := f.SMAShort[i]
	smaM := f.SMAMid[i]
	smaL := f.SMALong[i]

	var r TemplateResult
	add := func(name string, pass bool) {
		r.Checks = append(r.Checks, TemplateCheck{Name: name, Pass: pass})
	}

	mid, midOK := smaM.Get()
	long, longOK := smaL.Get()
	short, shortOK := smaS.Get()

	add(CheckCloseAboveMid, midOK && close > mid)
	add(CheckCloseAboveLong, longOK && close > long)
	add(CheckMidAboveLong, smaM.GreaterThan(smaL))

	slope, slopeOK := f.SMALongSlope[i].Get()
	add(CheckLongRising, slopeOK && slope > 0)

	add(CheckShortAboveBoth, smaS.GreaterThan(smaM) && smaS.GreaterThan(smaL))
	add(CheckCloseAboveShort, shortOK && close > short)

	low52, lowOK := f.ExtremeLow[i].Get()
	add(CheckAboveLow, lowOK && low52 > 0 && close >= low52*(1+cfg.LowClearancePct))

	high52, highOK := f.ExtremeHigh[i].Get()
	add(CheckNearHigh, highOK && close >= high52*(1-cfg.HighProximityPct))

	rs, rsOK := f.RS[i].Get()
	add(CheckRSPositive, rsOK && rs > cfg.MinRS)

	return r
}
