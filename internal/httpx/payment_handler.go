package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal) (map[string]interface{}, error)
}

type PaymentHandler struct {
	Payments PaymentService
	Log      *zap.Logger
}

// CreatePaymentReq.Amount is in major units and accepts a JSON number or string.
type CreatePaymentReq struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *PaymentHandler) Register(r chi.Router) {
	r.Post("/create_payment", h.createPayment)
}

func (h *PaymentHandler) createPayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentReq
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.Payments.CreateIntent(ctx, req.Amount)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
