package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
	"github.com/urbanlaundrydahej/laundry-app/internal/httpx"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
	"github.com/urbanlaundrydahej/laundry-app/internal/payment"
	"github.com/urbanlaundrydahej/laundry-app/internal/settings"
	"github.com/urbanlaundrydahej/laundry-app/internal/sqlite"
	"github.com/urbanlaundrydahej/laundry-app/web"
)

type notifierFunc func(context.Context, orders.Order) error

func (f notifierFunc) OrderPlaced(ctx context.Context, o orders.Order) error { return f(ctx, o) }

type fakeRazorpay struct{ err error }

func (f fakeRazorpay) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"id": "order_N5xyz", "amount": data["amount"], "currency": data["currency"]}, nil
}

type testApp struct {
	router *chi.Mux
	close  func()
}

func newTestApp(t *testing.T, notifier orders.Notifier, payments *payment.Service) testApp {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	settingsSvc := settings.NewService(&sqlite.SettingsRepo{DB: db}, "", nil)
	require.NoError(t, settingsSvc.Seed(ctx))
	if payments == nil {
		payments = payment.NewService(payment.Config{}, nil)
	}

	r := httpx.NewRouter(nil)
	(&httpx.OrdersHandler{Orders: orders.NewService(&sqlite.OrdersRepo{DB: db}, notifier, nil)}).Register(r)
	(&httpx.SettingsHandler{
		Settings: settingsSvc,
		Catalog:  catalog.NewService(&sqlite.CatalogRepo{DB: db}, nil),
	}).Register(r)
	(&httpx.PaymentHandler{Payments: payments}).Register(r)
	httpx.RegisterStatic(r, web.Site)

	return testApp{router: r, close: func() { _ = db.Close() }}
}

func (a testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const exampleOrder = `{"phone":"555","address":"1 Main St","items":{"a":{"name":"Shirt","qty":2}},"pickup_date":"2024-01-01","pickup_slot":"10-12"}`

func TestPlaceOrder_EndToEnd(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodPost, "/place_order", exampleOrder)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Order placed", placed["message"])
	assert.EqualValues(t, 1, placed["id"])

	rec = app.do(t, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]orders.Order](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, orders.StatusPlaced, list[0].Status)
	assert.Equal(t, orders.CashOnDelivery, list[0].PaymentReference)
	assert.Equal(t, map[string]orders.Item{"a": {Name: "Shirt", Qty: 2}}, list[0].Items)
	assert.Equal(t, "1 Main St", list[0].Address)
}

func TestPlaceOrder_NotifierFailureStillStored(t *testing.T) {
	app := newTestApp(t, notifierFunc(func(context.Context, orders.Order) error {
		return errors.New("twilio down")
	}), nil)

	rec := app.do(t, http.MethodPost, "/place_order", exampleOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	list := decodeBody[[]orders.Order](t, app.do(t, http.MethodGet, "/orders", ""))
	assert.Len(t, list, 1)
}

func TestPlaceOrder_NewestFirstAndPaymentID(t *testing.T) {
	app := newTestApp(t, nil, nil)

	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/place_order", exampleOrder).Code)
	withPayment := `{"phone":"556","address":"2 Main St","items":{"b":{"name":"Saree","qty":1}},"pickup_date":"2024-01-02","pickup_slot":"12-14","payment_id":"order_N5xyz"}`
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/place_order", withPayment).Code)

	list := decodeBody[[]orders.Order](t, app.do(t, http.MethodGet, "/orders", ""))
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "order_N5xyz", list[0].PaymentReference)
	assert.Equal(t, int64(1), list[1].ID)
}

func TestPlaceOrder_IgnoresUnknownFields(t *testing.T) {
	app := newTestApp(t, nil, nil)

	body := `{"bogus":1,` + strings.TrimPrefix(exampleOrder, "{")
	rec := app.do(t, http.MethodPost, "/place_order", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decodeBody[map[string]any](t, rec)["id"])
}

func TestPlaceOrder_Validation(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodPost, "/place_order", `{"phone":"555","items":{}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}](t, rec)
	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"address", "pickup_date", "pickup_slot", "items"}, fields)

	rec = app.do(t, http.MethodPost, "/place_order", `{"phone":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/place_order", `{"phone":"555","items":"shirt"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/place_order", exampleOrder+exampleOrder)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	list := decodeBody[[]orders.Order](t, app.do(t, http.MethodGet, "/orders", ""))
	assert.Empty(t, list)
}

func TestUpdateStatus(t *testing.T) {
	app := newTestApp(t, nil, nil)
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/place_order", exampleOrder).Code)

	rec := app.do(t, http.MethodPost, "/update_status", `{"id":1,"status":"DONE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Status updated", decodeBody[map[string]any](t, rec)["message"])

	list := decodeBody[[]orders.Order](t, app.do(t, http.MethodGet, "/orders", ""))
	require.Len(t, list, 1)
	assert.Equal(t, orders.Status("DONE"), list[0].Status)
	assert.Equal(t, "555", list[0].Phone)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/update_status", `{"id":7,"status":"DONE"}`).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/update_status", `{"id":1}`).Code)
}

func TestSettingsAndCatalog(t *testing.T) {
	app := newTestApp(t, nil, nil)

	s := decodeBody[httpx.SettingsResp](t, app.do(t, http.MethodGet, "/settings", ""))
	assert.Equal(t, "Urban Laundry", s.LaundryName)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/settings/laundry_name", `{"laundry_name":"X"}`).Code)
	rec := app.do(t, http.MethodPost, "/items/add", `{"name":"Shirt","price":50}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody[map[string]any](t, rec)["id"]
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/items/add", `{"name":"Blanket","price":200}`).Code)

	rec = app.do(t, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"laundry_name":"X","items":[{"id":1,"name":"Shirt","price":50},{"id":2,"name":"Blanket","price":200}]}`, rec.Body.String())

	rec = app.do(t, http.MethodPost, "/items/delete", `{"id":`+jsonNumber(id)+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Item removed", decodeBody[map[string]any](t, rec)["message"])

	s = decodeBody[httpx.SettingsResp](t, app.do(t, http.MethodGet, "/settings", ""))
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Blanket", s.Items[0].Name)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/items/delete", `{"id":99}`).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/items/add", `{"name":"Shirt","price":-5}`).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/settings/laundry_name", `{"laundry_name":""}`).Code)
}

func jsonNumber(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestCreatePayment(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := app.do(t, http.MethodPost, "/create_payment", `{"amount":499}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, decodeBody[map[string]any](t, rec)["error"], "not configured")

	app = newTestApp(t, nil, payment.NewServiceWithAPI(fakeRazorpay{}, "INR", nil))
	rec = app.do(t, http.MethodPost, "/create_payment", `{"amount":"499.50"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"order_N5xyz","amount":49950,"currency":"INR"}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/create_payment", `{"amount":0}`).Code)

	app = newTestApp(t, nil, payment.NewServiceWithAPI(fakeRazorpay{err: errors.New("BAD_REQUEST_ERROR")}, "INR", nil))
	rec = app.do(t, http.MethodPost, "/create_payment", `{"amount":10}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeBody[map[string]any](t, rec)["error"], "razorpay")
}

func TestStoreFailureIs500(t *testing.T) {
	app := newTestApp(t, nil, nil)
	app.close()

	rec := app.do(t, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeBody[map[string]any](t, rec)["error"])
}

func TestStaticAndHealth(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form id=\"order-form\">")

	rec = app.do(t, http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, "ok", rec.Body.String())
}
