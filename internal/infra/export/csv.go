package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
)

// WriteSignalsCSV writes signals as CSV rows with a header line.
// Optional risk levels render as empty cells.
func WriteSignalsCSV(w io.Writer, signals []signal.Signal) error {
	cw := csv.NewWriter(w)
	header := []string{
		"signal_id", "date", "symbol", "market", "strategy",
		"type", "price", "stop_loss", "take_profit", "confidence", "reason",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, s := range signals {
		row := []string{
			s.SignalID.String(),
			s.Date.Format("2006-01-02"),
			s.Symbol,
			s.Market,
			s.Strategy,
			string(s.Type),
			strconv.FormatFloat(s.Price, 'f', 4, 64),
			optFloat(s.StopLoss),
			optFloat(s.TakeProfit),
			strconv.FormatFloat(s.Confidence, 'f', 2, 64),
			s.Reason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveSignalsCSV 신호 목록을 CSV 파일로 저장
func SaveSignalsCSV(path string, signals []signal.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WriteSignalsCSV(f, signals); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
