package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

type OrdersRepo struct{ DB DB }

func (r *OrdersRepo) Insert(ctx context.Context, o orders.Order) (int64, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, fmt.Errorf("encode items: %w", err)
	}
	var id int64
	err = r.DB.QueryRow(ctx, `
		INSERT INTO orders (phone, address, items, pickup_date, pickup_slot, status, created_at, payment_reference)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		o.Phone, o.Address, items, o.PickupDate, o.PickupSlot, string(o.Status), o.CreatedAt, o.PaymentReference,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *OrdersRepo) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, phone, address, items, pickup_date, pickup_slot, status, created_at, payment_reference
		FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orders.Order{}
	for rows.Next() {
		var (
			o      orders.Order
			items  []byte
			status string
		)
		if err := rows.Scan(&o.ID, &o.Phone, &o.Address, &items, &o.PickupDate, &o.PickupSlot, &status, &o.CreatedAt, &o.PaymentReference); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items of order %d: %w", o.ID, err)
		}
		o.Status = orders.Status(status)
		o.CreatedAt = o.CreatedAt.UTC()
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrdersRepo) UpdateStatus(ctx context.Context, id int64, status orders.Status) error {
	ct, err := r.DB.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, string(status))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
