package notify

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/urbanlaundrydahej/laundry-app/internal/kafka"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

type Deduper interface {
	FirstSeen(ctx context.Context, id string) (bool, error)
}

// Handler consumes OrderPlaced events and sends them through Sender.
// Delivery is best-effort: a failed send is logged and the event committed.
type Handler struct {
	Sender orders.Notifier
	Dedup  Deduper // optional
	Log    *zap.Logger
}

func (h *Handler) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	log := logx.OrNop(h.Log)

	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}

	// a payload that does not decode must not be marked seen
	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	if h.Dedup != nil {
		first, err := h.Dedup.FirstSeen(ctx, env.EventID)
		if err != nil {
			log.Warn("dedup lookup failed, sending anyway", zap.String("event_id", env.EventID), zap.Error(err))
		} else if !first {
			log.Debug("duplicate event skipped", zap.String("event_id", env.EventID))
			return nil
		}
	}

	if err := h.Sender.OrderPlaced(ctx, p.Order); err != nil {
		log.Warn("order notification failed",
			zap.Int64("order_id", p.Order.ID), zap.String("event_id", env.EventID), zap.Error(err))
	}
	return nil
}
