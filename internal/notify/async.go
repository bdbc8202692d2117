package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

// Async runs the wrapped notifier in a detached goroutine per order. The
// caller never waits for it and only the log sees the outcome.
type Async struct {
	next    orders.Notifier
	timeout time.Duration
	log     *zap.Logger
	wg      sync.WaitGroup
}

func NewAsync(next orders.Notifier, timeout time.Duration, log *zap.Logger) *Async {
	return &Async{next: next, timeout: timeout, log: logx.OrNop(log).Named("notify")}
}

func (a *Async) OrderPlaced(ctx context.Context, o orders.Order) error {
	// the request context ends with the response; keep its values only
	base := context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(base, a.timeout)
		defer cancel()
		if err := a.next.OrderPlaced(ctx, o); err != nil {
			a.log.Warn("order notification failed", zap.Int64("order_id", o.ID), zap.Error(err))
			return
		}
		a.log.Debug("order notification sent", zap.Int64("order_id", o.ID))
	}()
	return nil
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (a *Async) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
