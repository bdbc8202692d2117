package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

// MessagesAPI is the part of the Twilio REST client used to send messages.
type MessagesAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsApp sends the order alert to the shop's WhatsApp number through Twilio.
type WhatsApp struct {
	api      MessagesAPI
	from, to string
	log      *zap.Logger
}

type WhatsAppConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// NewWhatsApp returns a sender. With incomplete credentials the sender is
// still usable but every send fails with apperr.ErrUnavailable.
func NewWhatsApp(cfg WhatsAppConfig, log *zap.Logger) *WhatsApp {
	w := &WhatsApp{from: cfg.From, to: cfg.To, log: logx.OrNop(log).Named("whatsapp")}
	if cfg.AccountSID != "" && cfg.AuthToken != "" && cfg.To != "" && cfg.From != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
		w.api = client.Api
	}
	return w
}

// NewWhatsAppWithAPI is used when the Twilio client is built elsewhere.
func NewWhatsAppWithAPI(api MessagesAPI, from, to string, log *zap.Logger) *WhatsApp {
	return &WhatsApp{api: api, from: from, to: to, log: logx.OrNop(log).Named("whatsapp")}
}

func (w *WhatsApp) Configured() bool { return w.api != nil }

func (w *WhatsApp) OrderPlaced(ctx context.Context, o orders.Order) error {
	if w.api == nil {
		return fmt.Errorf("whatsapp: %w", apperr.ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(w.from)
	params.SetTo(w.to)
	params.SetBody(FormatMessage(o))

	resp, err := w.api.CreateMessage(params)
	if err != nil {
		return apperr.Integration("twilio", err)
	}
	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	w.log.Info("whatsapp sent", zap.Int64("order_id", o.ID), zap.String("sid", sid))
	return nil
}
