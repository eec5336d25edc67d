package signal

import (
	"time"

	"github.com/google/uuid"
)

// Signal 매매 신호
type Signal struct {
	SignalID uuid.UUID `json:"signal_id"`
	Symbol   string    `json:"symbol"`
	Market   string    `json:"market"` // US | KR
	Strategy string    `json:"strategy"`

	Date  time.Time `json:"date"`
	Type  Type      `json:"type"` // BUY, SELL, WATCH
	Price float64   `json:"price"`

	// 리스크 레벨 (BUY 신호에만 설정)
	StopLoss   *float64 `json:"stop_loss,omitempty"`
	TakeProfit *float64 `json:"take_profit,omitempty"`

	// 근거
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"` // 0~1

	// 진단 지표 (전략 패밀리마다 키가 다름 - open mapping)
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// Type 신호 타입
type Type string

const (
	TypeBuy   Type = "BUY"
	TypeSell  Type = "SELL"
	TypeWatch Type = "WATCH"
)

// New creates a signal with a fresh ID.
func New(symbol string, date time.Time, typ Type, price float64) Signal {
	return Signal{
		SignalID: uuid.New(),
		Symbol:   symbol,
		Date:     date,
		Type:     typ,
		Price:    price,
	}
}
