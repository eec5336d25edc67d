package screener

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/market"
	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy"
)

// DefaultWorkers 동시 조회 심볼 수 기본값
const DefaultWorkers = 4

// Service runs one strategy across a symbol universe.
//
// Symbols are screened concurrently by a bounded worker pool; one
// symbol failing (bad data, fetch error) never aborts the run, it is
// counted and skipped.
type Service struct {
	reader  market.BarReader
	workers int
}

// New 스크리너 서비스 생성 (workers<=0 이면 기본값)
func New(reader market.BarReader, workers int) *Service {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{reader: reader, workers: workers}
}

// Summary 스크리닝 실행 결과 집계
type Summary struct {
	Strategy string
	Scanned  int
	Skipped  int
	Signals  []signal.Signal
	Elapsed  time.Duration
}

// Recent 기준일 이후 신호만 반환
func (s *Summary) Recent(since time.Time) []signal.Signal {
	var out []signal.Signal
	for _, sig := range s.Signals {
		if !sig.Date.Before(since) {
			out = append(out, sig)
		}
	}
	return out
}

type symbolResult struct {
	symbol  string
	signals []signal.Signal
	err     error
}

// Screen 유니버스 전체 스크리닝
//
// Cancelling the context stops feeding new symbols to the pool;
// in-flight symbols finish and their results are kept. The returned
// summary is valid even on cancellation, alongside ctx.Err().
func (s *Service) Screen(ctx context.Context, strat *strategy.Strategy, symbols []string, lookbackDays int) (*Summary, error) {
	started := time.Now()
	log.Info().
		Str("strategy", strat.Name()).
		Int("symbols", len(symbols)).
		Int("workers", s.workers).
		Msg("screening started")

	jobs := make(chan string)
	results := make(chan symbolResult)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sym := range jobs {
				results <- s.screenSymbol(ctx, strat, sym, lookbackDays)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, sym := range symbols {
			select {
			case <-ctx.Done():
				return
			case jobs <- sym:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	sum := &Summary{Strategy: strat.Name()}
	for r := range results {
		sum.Scanned++
		if r.err != nil {
			sum.Skipped++
			log.Warn().Err(r.err).Str("symbol", r.symbol).Msg("symbol skipped")
			continue
		}
		sum.Signals = append(sum.Signals, r.signals...)
	}

	sort.SliceStable(sum.Signals, func(i, j int) bool {
		if !sum.Signals[i].Date.Equal(sum.Signals[j].Date) {
			return sum.Signals[i].Date.Before(sum.Signals[j].Date)
		}
		return sum.Signals[i].Symbol < sum.Signals[j].Symbol
	})

	sum.Elapsed = time.Since(started)
	log.Info().
		Str("strategy", strat.Name()).
		Int("scanned", sum.Scanned).
		Int("skipped", sum.Skipped).
		Int("signals", len(sum.Signals)).
		Dur("elapsed", sum.Elapsed).
		Msg("screening finished")

	return sum, ctx.Err()
}

func (s *Service) screenSymbol(ctx context.Context, strat *strategy.Strategy, symbol string, lookbackDays int) symbolResult {
	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)

	series, err := s.reader.Fetch(ctx, symbol, start, end)
	if err != nil {
		return symbolResult{symbol: symbol, err: err}
	}
	return symbolResult{symbol: symbol, signals: strat.GenerateSignals(series)}
}
