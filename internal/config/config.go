package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPAddr     string
	StoreDriver  string
	PostgresDSN  string
	SQLitePath   string
	RedisAddr    string
	KafkaBrokers []string
	NotifyGroup  string
	ServiceName  string
	LaundryName  string

	TwilioSID    string
	TwilioToken  string
	WhatsAppFrom string
	WhatsAppTo   string

	RazorpayKeyID     string
	RazorpayKeySecret string
	PaymentCurrency   string

	NotifyTimeout time.Duration
	LogLevel      string
	LogFormat     string

	// values present in the environment that could not be parsed
	parseErr error
}

func Load() Config {
	notifyTimeout, err := getduration("NOTIFY_TIMEOUT", 10*time.Second)
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		StoreDriver:  strings.ToLower(getenv("STORE_DRIVER", DriverSQLite)),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		SQLitePath:   getenv("SQLITE_PATH", "database.db"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		NotifyGroup:  getenv("NOTIFY_GROUP", "laundry-notifier"),
		ServiceName:  getenv("SERVICE_NAME", "laundry-api"),
		LaundryName:  getenv("LAUNDRY_NAME", "Urban Laundry"),

		TwilioSID:    os.Getenv("TWILIO_SID"),
		TwilioToken:  os.Getenv("TWILIO_TOKEN"),
		WhatsAppFrom: getenv("WHATSAPP_FROM", "whatsapp:+15707125048"),
		WhatsAppTo:   os.Getenv("WHATSAPP_TO"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		PaymentCurrency:   getenv("PAYMENT_CURRENCY", "INR"),

		NotifyTimeout: notifyTimeout,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "json"),

		parseErr: err,
	}
}

// Validate checks the settings the process cannot start without.
// Missing integration credentials are not errors: those integrations degrade.
func (c Config) Validate() error {
	if c.parseErr != nil {
		return c.parseErr
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be positive")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
