package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/config"
	kafkax "github.com/urbanlaundrydahej/laundry-app/internal/kafka"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/notify"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
	"github.com/urbanlaundrydahej/laundry-app/internal/redisx"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logx.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}

	wa := notify.NewWhatsApp(notify.WhatsAppConfig{
		AccountSID: cfg.TwilioSID,
		AuthToken:  cfg.TwilioToken,
		From:       cfg.WhatsAppFrom,
		To:         cfg.WhatsAppTo,
	}, log)
	if !wa.Configured() {
		log.Fatal("WhatsApp not configured: TWILIO_SID, TWILIO_TOKEN and WHATSAPP_TO are required")
	}

	h := &notify.Handler{Sender: wa, Log: log}

	// Redis dedup is optional: without it a redelivered event is sent twice.
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		h.Dedup = &redisx.Deduper{Client: rdb, Service: "notifier"}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers := mustAtoi(os.Getenv("NOTIFY_WORKERS"), "2")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifyGroup, orders.TopicOrderPlaced, workers, log)

	log.Info("notifier consumer started",
		zap.String("group", cfg.NotifyGroup), zap.String("topic", orders.TopicOrderPlaced), zap.Int("workers", workers),
		zap.Bool("dedup", h.Dedup != nil))
	if err := cons.Start(ctx, h.HandleOrderPlaced); err != nil {
		log.Error("consumer exit", zap.Error(err))
	}
	log.Info("notifier stopped")
}
