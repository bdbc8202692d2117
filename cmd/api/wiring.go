package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
	"github.com/urbanlaundrydahej/laundry-app/internal/config"
	kafkax "github.com/urbanlaundrydahej/laundry-app/internal/kafka"
	"github.com/urbanlaundrydahej/laundry-app/internal/notify"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
	"github.com/urbanlaundrydahej/laundry-app/internal/postgres"
	"github.com/urbanlaundrydahej/laundry-app/internal/settings"
	"github.com/urbanlaundrydahej/laundry-app/internal/sqlite"
)

type stores struct {
	orders   orders.Repository
	catalog  catalog.Repository
	settings settings.Repository
	close    func()
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return stores{}, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return stores{}, err
		}
		return stores{
			orders:   &postgres.OrdersRepo{DB: pool},
			catalog:  &postgres.CatalogRepo{DB: pool},
			settings: &postgres.SettingsRepo{DB: pool},
			close:    pool.Close,
		}, nil
	default:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:   &sqlite.OrdersRepo{DB: db},
			catalog:  &sqlite.CatalogRepo{DB: db},
			settings: &sqlite.SettingsRepo{DB: db},
			close:    func() { _ = db.Close() },
		}, nil
	}
}

// buildNotifier picks how placed orders reach the shop: through Kafka to
// cmd/notifier when brokers are configured, else straight to WhatsApp from a
// background goroutine. drain flushes whatever is still in flight.
func buildNotifier(cfg config.Config, log *zap.Logger) (orders.Notifier, func(context.Context)) {
	if len(cfg.KafkaBrokers) > 0 {
		prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024, log)
		prod.Start()
		log.Info("order notifications via kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", orders.TopicOrderPlaced))
		return notify.NewPublisher(prod, cfg.ServiceName), func(ctx context.Context) {
			prod.Close()
			select {
			case <-waitChan(prod.WaitClosed):
			case <-ctx.Done():
				log.Warn("kafka producer did not flush in time")
			}
		}
	}

	wa := notify.NewWhatsApp(notify.WhatsAppConfig{
		AccountSID: cfg.TwilioSID,
		AuthToken:  cfg.TwilioToken,
		From:       cfg.WhatsAppFrom,
		To:         cfg.WhatsAppTo,
	}, log)
	if !wa.Configured() {
		log.Warn("WhatsApp not configured properly; orders will be stored without notification")
	}
	async := notify.NewAsync(wa, cfg.NotifyTimeout, log)
	return async, func(ctx context.Context) {
		if err := async.Wait(ctx); err != nil {
			log.Warn("notifications still in flight at shutdown", zap.Error(err))
		}
	}
}

func waitChan(wait func()) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		wait()
		close(ch)
	}()
	return ch
}
