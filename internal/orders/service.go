package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

type Service struct {
	repo     Repository
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

// NewService wires the order service. notifier may be nil, in which case
// placed orders are not announced anywhere.
func NewService(repo Repository, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      logx.OrNop(log).Named("orders"),
		now:      time.Now,
	}
}

// PlaceOrder validates and stores a new order, then hands it to the notifier.
// Once the insert succeeds the order is returned regardless of the notifier.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (Order, error) {
	if err := ValidateInput(in); err != nil {
		return Order{}, err
	}

	ref := strings.TrimSpace(in.PaymentID)
	if ref == "" {
		ref = CashOnDelivery
	}

	o := Order{
		Phone:            in.Phone,
		Address:          in.Address,
		Items:            in.Items,
		PickupDate:       in.PickupDate,
		PickupSlot:       in.PickupSlot,
		Status:           StatusPlaced,
		CreatedAt:        s.now().UTC(),
		PaymentReference: ref,
	}

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	o.ID = id
	s.log.Info("order placed", zap.Int64("order_id", id), zap.Int("items", len(o.Items)), zap.Bool("cod", o.IsCashOnDelivery()))

	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, o); err != nil {
			s.log.Warn("order notification failed", zap.Int64("order_id", id), zap.Error(err))
		}
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// UpdateStatus overwrites the status of an order. Any non-blank status is
// accepted from any current status.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	st, ok := ParseStatus(status)
	if !ok {
		return apperr.Invalid("status", "required")
	}
	if id <= 0 {
		return apperr.Invalid("id", "must be > 0")
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return fmt.Errorf("update status of order %d: %w", id, err)
	}
	s.log.Info("order status updated", zap.Int64("order_id", id), zap.String("status", string(st)))
	return nil
}
