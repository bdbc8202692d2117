package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

type OrdersRepo struct{ DB *sql.DB }

func (r *OrdersRepo) Insert(ctx context.Context, o orders.Order) (int64, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, fmt.Errorf("encode items: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO orders (phone, address, items, pickup_date, pickup_slot, status, created_at, payment_reference)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Phone, o.Address, string(items), o.PickupDate, o.PickupSlot, string(o.Status),
		o.CreatedAt.UTC().Format(timeLayout), o.PaymentReference,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *OrdersRepo) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, phone, address, items, pickup_date, pickup_slot, status, created_at, payment_reference
		FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orders.Order{}
	for rows.Next() {
		var (
			o                         orders.Order
			items, status, createdAt string
		)
		if err := rows.Scan(&o.ID, &o.Phone, &o.Address, &items, &o.PickupDate, &o.PickupSlot, &status, &createdAt, &o.PaymentReference); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("decode items of order %d: %w", o.ID, err)
		}
		if o.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("decode created_at of order %d: %w", o.ID, err)
		}
		o.Status = orders.Status(status)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrdersRepo) UpdateStatus(ctx context.Context, id int64, status orders.Status) error {
	return notFoundIfNone(r.DB.ExecContext(ctx, `UPDATE orders SET status=? WHERE id=?`, string(status), id))
}
