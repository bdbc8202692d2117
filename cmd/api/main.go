package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
	"github.com/urbanlaundrydahej/laundry-app/internal/config"
	"github.com/urbanlaundrydahej/laundry-app/internal/httpx"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
	"github.com/urbanlaundrydahej/laundry-app/internal/payment"
	"github.com/urbanlaundrydahej/laundry-app/internal/settings"
	"github.com/urbanlaundrydahej/laundry-app/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logx.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store
	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.close()

	settingsSvc := settings.NewService(st.settings, cfg.LaundryName, log)
	if err := settingsSvc.Seed(ctx); err != nil {
		log.Fatal("seed settings", zap.Error(err))
	}

	// Notifications
	notifier, drain := buildNotifier(cfg, log)

	// Services & handlers
	router := httpx.NewRouter(log)
	(&httpx.OrdersHandler{
		Orders: orders.NewService(st.orders, notifier, log),
		Log:    log,
	}).Register(router)
	(&httpx.SettingsHandler{
		Settings: settingsSvc,
		Catalog:  catalog.NewService(st.catalog, log),
		Log:      log,
	}).Register(router)

	payments := payment.NewService(payment.Config{
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
		Currency:  cfg.PaymentCurrency,
	}, log)
	if !payments.Configured() {
		log.Warn("razorpay not configured; /create_payment will answer 503")
	}
	(&httpx.PaymentHandler{Payments: payments, Log: log}).Register(router)
	httpx.RegisterStatic(router, web.Site)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	drain(drainCtx)
}
