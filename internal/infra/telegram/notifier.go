package telegram

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rnjstp9754-jpg/swing-screener/internal/domain/signal"
)

const defaultTopN = 10

// Notifier sends screening digests through the Telegram Bot API.
//
// The bot token and chat ID are injected by the caller; the notifier
// holds no global state and is safe for concurrent use.
type Notifier struct {
	client *resty.Client
	chatID string
	topN   int
}

// NewNotifier 봇 토큰/채팅 ID로 알림기 생성
func NewNotifier(botToken, chatID string) *Notifier {
	client := resty.New().
		SetBaseURL("https://api.telegram.org/bot" + botToken).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	return &Notifier{
		client: client,
		chatID: chatID,
		topN:   defaultTopN,
	}
}

// SendSignals 스크리닝 결과 요약 전송 (신뢰도 상위 N개)
//
// An empty slice is a no-op, not an error. Signals are ranked by
// confidence, ties broken by symbol for a stable digest.
func (n *Notifier) SendSignals(ctx context.Context, strategy string, signals []signal.Signal) error {
	if len(signals) == 0 {
		return nil
	}
	return n.send(ctx, formatDigest(strategy, signals, n.topN))
}

func (n *Notifier) send(ctx context.Context, text string) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":    n.chatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram: send: %s: %s", resp.Status(), resp.String())
	}
	return nil
}

func formatDigest(strategy string, signals []signal.Signal, topN int) string {
	ranked := make([]signal.Signal, len(signals))
	copy(ranked, signals)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>%s</b> — %d signal(s)\n\n", strategy, len(signals))
	for _, s := range ranked {
		fmt.Fprintf(&b, "%s <b>%s</b> %s @ %.2f (conf %.2f)\n",
			typeIcon(s.Type), s.Symbol, s.Type, s.Price, s.Confidence)
		if s.StopLoss != nil {
			fmt.Fprintf(&b, "   SL %.2f", *s.StopLoss)
			if s.TakeProfit != nil {
				fmt.Fprintf(&b, " / TP %.2f", *s.TakeProfit)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "   %s\n", s.Reason)
	}
	return b.String()
}

func typeIcon(t signal.Type) string {
	switch t {
	case signal.TypeBuy:
		return "🟢"
	case signal.TypeSell:
		return "🔴"
	default:
		return "👀"
	}
}
