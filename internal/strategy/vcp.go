package strategy

import (
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy/indicator"
)

// VCPResult 변동성 수축 패턴 평가 결과
type VCPResult struct {
	Ready bool // 진입 준비 완료

	Contracting bool       // 세그먼트 변동성 비증가
	FinalTight  bool       // 마지막 세그먼트 절대 수축
	DryUp       bool       // 거래량 절벽
	NearPivot   bool       // 피벗 근접
	Segments    [3]float64 // 세그먼트별 변동성 (oldest first)

	Pivot   float64 // 피벗 가격 (직전 N봉 고가)
	PivotOK bool
}

// DetectVCP 변동성 수축 패턴 및 피벗 탐지
//
// Readiness = (수축 진행 OR 마지막 세그먼트 타이트)
//
//	AND 거래량 절벽 (단기 평균 < 베이스라인 x dry-up 비율)
//	AND 피벗 대비 소폭 이격 이내
//
// The pivot is the rolling high over the pivot lookback, computed
// independently of the three-segment split. Missing inputs fail the
// dependent condition.
func DetectVCP(f *indicator.Frame, i int, cfg Config) VCPResult {
	var r VCPResult

	if segs, ok := f.SegmentVolatility(i); ok {
		r.Segments = segs
		r.Contracting = segs[0] >= segs[1] && segs[1] >= segs[2]
		r.FinalTight = segs[2] <= cfg.VCPTightPct
	}

	surge, surgeOK := f.VolSurgeAvg[i].Get()
	base, baseOK := f.VolBaseAvg[i].Get()
	if surgeOK && baseOK && base > 0 {
		r.DryUp = surge < base*cfg.VolDryUpFrac
	}

	if pivot, ok := f.PivotHigh[i].Get(); ok && pivot > 0 {
		r.Pivot = pivot
		r.PivotOK = true
		r.NearPivot = f.Bar(i).Close >= pivot*(1-cfg.PivotProximityPct)
	}

	r.Ready = (r.Contracting || r.FinalTight) && r.DryUp && r.NearPivot && r.PivotOK
	return r
}
