package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/urbanlaundrydahej/laundry-app/internal/kafka"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

type producer interface {
	TryPublish(key, value []byte, headers ...kafkago.Header) error
}

// Publisher announces placed orders on Kafka; cmd/notifier does the sending.
type Publisher struct {
	producer producer
	service  string
}

func NewPublisher(p producer, service string) *Publisher {
	return &Publisher{producer: p, service: service}
}

func (p *Publisher) OrderPlaced(ctx context.Context, o orders.Order) error {
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.service,
		TraceID:       middleware.GetReqID(ctx),
		CorrelationID: strconv.FormatInt(o.ID, 10),
		Payload:       kafkax.MustMarshal(orders.OrderPlacedPayload{Order: o}),
	}
	return p.producer.TryPublish(orders.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
