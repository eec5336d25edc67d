package indicator

import "math"

// Bollinger 볼린저밴드 (중심선 SMA + k표준편차 상/하단)
func Bollinger(closes []float64, period int, k float64) (mid, upper, lower []Value) {
	n := len(closes)
	mid = rollingMean(closes, period)
	upper = make([]Value, n)
	lower = make([]Value, n)
	if period <= 1 {
		return mid, upper, lower
	}
	for i := period - 1; i < n; i++ {
		m, _ := mid[i].Get()
		var ss float64
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - m
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(period))
		upper[i] = Some(m + k*sd)
		lower[i] = Some(m - k*sd)
	}
	return mid, upper, lower
}

// RSI 상대강도지수 (단순 이동평균 기반)
//
// Gains and losses are simple rolling means, not Wilder smoothing.
// All-flat windows (zero gain, zero loss) are undefined, zero-loss
// windows saturate at 100.
func RSI(closes []float64, period int) []Value {
	n := len(closes)
	out := make([]Value, n)
	if period <= 0 || n < period+1 {
		return out
	}
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gains[i] = d
		} else {
			losses[i] = -d
		}
	}
	for i := period; i < n; i++ {
		var g, l float64
		for j := i - period + 1; j <= i; j++ {
			g += gains[j]
			l += losses[j]
		}
		switch {
		case l == 0 && g == 0:
			// undefined (0/0)
		case l == 0:
			out[i] = Some(100)
		default:
			rs := g / l
			out[i] = Some(100 - 100/(1+rs))
		}
	}
	return out
}
