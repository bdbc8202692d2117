package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// OrdersAPI is the Razorpay orders resource.
type OrdersAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Config struct {
	KeyID     string
	KeySecret string
	Currency  string
}

// Service creates payment intents (Razorpay orders). The resulting id is what
// the storefront later sends back as payment_id; nothing here checks that it
// was actually paid.
type Service struct {
	api      OrdersAPI
	currency string
	log      *zap.Logger
}

func NewService(cfg Config, log *zap.Logger) *Service {
	s := &Service{currency: cfg.Currency, log: logx.OrNop(log).Named("payment")}
	if cfg.KeyID != "" && cfg.KeySecret != "" {
		s.api = razorpay.NewClient(cfg.KeyID, cfg.KeySecret).Order
	}
	if s.currency == "" {
		s.currency = "INR"
	}
	return s
}

func NewServiceWithAPI(api OrdersAPI, currency string, log *zap.Logger) *Service {
	return &Service{api: api, currency: currency, log: logx.OrNop(log).Named("payment")}
}

func (s *Service) Configured() bool { return s.api != nil }

// ToMinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounding half away from zero. ok is false when the result does not fit in
// an int64.
func ToMinorUnits(amount decimal.Decimal) (minor int64, ok bool) {
	m := amount.Mul(hundred).Round(0)
	if m.GreaterThan(maxMinor) || m.LessThan(minMinor) {
		return 0, false
	}
	return m.IntPart(), true
}

// CreateIntent asks the processor for a new order of amount major units and
// returns its response unchanged.
func (s *Service) CreateIntent(ctx context.Context, amount decimal.Decimal) (map[string]interface{}, error) {
	if !amount.IsPositive() {
		return nil, apperr.Invalid("amount", "must be > 0")
	}
	minor, ok := ToMinorUnits(amount)
	if !ok {
		return nil, apperr.Invalid("amount", "too large")
	}
	if minor <= 0 {
		return nil, apperr.Invalid("amount", "must be at least 0.01")
	}
	if s.api == nil {
		return nil, fmt.Errorf("razorpay: %w", apperr.ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receipt := uuid.NewString()
	resp, err := s.api.Create(map[string]interface{}{
		"amount":          minor,
		"currency":        s.currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, apperr.Integration("razorpay", err)
	}
	s.log.Info("payment intent created",
		zap.Int64("amount_minor", minor), zap.String("receipt", receipt), zap.Any("id", resp["id"]))
	return resp, nil
}
