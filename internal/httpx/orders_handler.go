package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, in orders.PlaceOrderInput) (orders.Order, error)
	ListOrders(ctx context.Context) ([]orders.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type OrdersHandler struct {
	Orders OrderService
	Log    *zap.Logger
}

type UpdateStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/place_order", h.placeOrder)
	r.Get("/orders", h.listOrders)
	r.Post("/update_status", h.updateStatus)
}

func (h *OrdersHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.PlaceOrderInput
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Orders.PlaceOrder(ctx, req)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResp{Message: "Order placed", ID: o.ID})
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Orders.ListOrders(ctx)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusReq
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Orders.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, messageResp{Message: "Status updated"})
}
