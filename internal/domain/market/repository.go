package market

import (
	"context"
	"time"
)

// BarReader 시세 데이터 Reader
//
// Fetch returns the OHLCV series for a symbol over [start, end].
// "No data" is not an error: implementations return an empty series
// and let the caller decide to skip the symbol.
type BarReader interface {
	Fetch(ctx context.Context, symbol string, start, end time.Time) (*Series, error)
}
