package market

import "errors"

var (
	// ErrEmptySeries 데이터 없음
	ErrEmptySeries = errors.New("market: empty series")

	// ErrUnorderedSeries 타임스탬프 역전/중복
	ErrUnorderedSeries = errors.New("market: series timestamps not strictly increasing")

	// ErrInsufficientHistory 지표 계산에 필요한 최소 기간 미달
	ErrInsufficientHistory = errors.New("market: insufficient history for indicator window")
)
