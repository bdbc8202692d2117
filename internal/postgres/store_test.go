package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
	"github.com/urbanlaundrydahej/laundry-app/internal/postgres"
)

// Runs only against a disposable database: POSTGRES_TEST_DSN=postgres://... go test ./internal/postgres
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	ctx := context.Background()

	pool, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE orders, items, settings RESTART IDENTITY`)
	require.NoError(t, err)

	ordersRepo := &postgres.OrdersRepo{DB: pool}
	o := orders.Order{
		Phone:            "555",
		Address:          "1 Main St",
		Items:            map[string]orders.Item{"a": {Name: "Shirt", Qty: 2}},
		PickupDate:       "2024-01-01",
		PickupSlot:       "10-12",
		Status:           orders.StatusPlaced,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
		PaymentReference: orders.CashOnDelivery,
	}
	id1, err := ordersRepo.Insert(ctx, o)
	require.NoError(t, err)
	id2, err := ordersRepo.Insert(ctx, o)
	require.NoError(t, err)

	require.NoError(t, ordersRepo.UpdateStatus(ctx, id1, "DONE"))
	assert.ErrorIs(t, ordersRepo.UpdateStatus(ctx, 9999, "DONE"), apperr.ErrNotFound)

	list, err := ordersRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id2, list[0].ID)
	assert.Equal(t, orders.Status("DONE"), list[1].Status)
	assert.Equal(t, o.Items, list[1].Items)
	assert.True(t, o.CreatedAt.Equal(list[1].CreatedAt))

	catalogRepo := &postgres.CatalogRepo{DB: pool}
	itemID, err := catalogRepo.Add(ctx, "Shirt", 50)
	require.NoError(t, err)
	require.NoError(t, catalogRepo.Deactivate(ctx, itemID))
	active, err := catalogRepo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	row, err := catalogRepo.Get(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, row.Active)

	settingsRepo := &postgres.SettingsRepo{DB: pool}
	require.NoError(t, settingsRepo.Seed(ctx, "laundry_name", "Urban Laundry"))
	require.NoError(t, settingsRepo.Seed(ctx, "laundry_name", "ignored"))
	v, err := settingsRepo.Get(ctx, "laundry_name")
	require.NoError(t, err)
	assert.Equal(t, "Urban Laundry", v)
	require.NoError(t, settingsRepo.Set(ctx, "laundry_name", "X"))
	v, err = settingsRepo.Get(ctx, "laundry_name")
	require.NoError(t, err)
	assert.Equal(t, "X", v)
}
