package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
)

// Client fetches daily bars from Yahoo Finance.
//
// Korean symbols carry the exchange suffix Yahoo expects (.KS for
// KOSPI, .KQ for KOSDAQ); the market is derived from that suffix.
type Client struct {
	maxRetries int
	retryWait  time.Duration
}

// NewClient 기본 재시도 설정으로 클라이언트 생성
func NewClient() *Client {
	return &Client{
		maxRetries: 3,
		retryWait:  2 * time.Second,
	}
}

var _ market.BarReader = (*Client)(nil)

// Fetch implements market.BarReader. A symbol Yahoo knows but has no
// bars for in the range yields an empty series, not an error.
func (c *Client) Fetch(ctx context.Context, symbol string, start, end time.Time) (*market.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bars []market.Bar
	err := c.withRetry(ctx, symbol, func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		bars = bars[:0]
		for iter.Next() {
			b := iter.Bar()
			bars = append(bars, market.Bar{
				Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
				Open:   toFloat(b.Open),
				High:   toFloat(b.High),
				Low:    toFloat(b.Low),
				Close:  toFloat(b.Close),
				Volume: int64(b.Volume),
			})
		}
		return iter.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("yahoo: fetch %s: %w", symbol, err)
	}

	return &market.Series{
		Symbol: symbol,
		Market: MarketOf(symbol),
		Bars:   bars,
	}, nil
}

// Yahoo quotes prices as decimals; indicators work in float64.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// MarketOf 심볼 접미사로 시장 판별
func MarketOf(symbol string) string {
	if strings.HasSuffix(symbol, ".KS") || strings.HasSuffix(symbol, ".KQ") {
		return market.MarketKR
	}
	return market.MarketUS
}

func (c *Client) withRetry(ctx context.Context, symbol string, fn func() error) error {
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			log.Debug().
				Str("symbol", symbol).
				Int("attempt", attempt).
				Err(err).
				Msg("retrying yahoo fetch")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryWait * time.Duration(attempt)):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
