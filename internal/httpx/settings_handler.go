package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

type CatalogService interface {
	AddItem(ctx context.Context, name string, price int64) (catalog.Item, error)
	RemoveItem(ctx context.Context, id int64) error
	ListActiveItems(ctx context.Context) ([]catalog.Item, error)
}

type SettingsService interface {
	GetLaundryName(ctx context.Context) (string, error)
	SetLaundryName(ctx context.Context, name string) error
}

// SettingsHandler serves the dashboard's settings page: the laundry name and
// the priced catalog.
type SettingsHandler struct {
	Settings SettingsService
	Catalog  CatalogService
	Log      *zap.Logger
}

type SettingsResp struct {
	LaundryName string         `json:"laundry_name"`
	Items       []catalog.Item `json:"items"`
}

type LaundryNameReq struct {
	LaundryName string `json:"laundry_name"`
}

type AddItemReq struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type DeleteItemReq struct {
	ID int64 `json:"id"`
}

func (h *SettingsHandler) Register(r chi.Router) {
	r.Get("/settings", h.getSettings)
	r.Post("/settings/laundry_name", h.setLaundryName)
	r.Post("/items/add", h.addItem)
	r.Post("/items/delete", h.deleteItem)
}

func (h *SettingsHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	name, err := h.Settings.GetLaundryName(ctx)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	items, err := h.Catalog.ListActiveItems(ctx)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsResp{LaundryName: name, Items: items})
}

func (h *SettingsHandler) setLaundryName(w http.ResponseWriter, r *http.Request) {
	var req LaundryNameReq
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Settings.SetLaundryName(ctx, req.LaundryName); err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, messageResp{Message: "Laundry name updated"})
}

func (h *SettingsHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemReq
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	it, err := h.Catalog.AddItem(ctx, req.Name, req.Price)
	if err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResp{Message: "Item added", ID: it.ID})
}

func (h *SettingsHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemReq
	if err := decode(w, r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Catalog.RemoveItem(ctx, req.ID); err != nil {
		writeError(w, logx.OrNop(h.Log), err)
		return
	}
	writeJSON(w, http.StatusOK, messageResp{Message: "Item removed"})
}
