package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
)

type CatalogRepo struct{ DB DB }

func (r *CatalogRepo) Add(ctx context.Context, name string, price int64) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO items (name, price, active) VALUES ($1,$2,TRUE) RETURNING id`, name, price).Scan(&id)
	return id, err
}

func (r *CatalogRepo) Deactivate(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `UPDATE items SET active=FALSE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) Get(ctx context.Context, id int64) (catalog.Item, error) {
	var it catalog.Item
	err := r.DB.QueryRow(ctx, `SELECT id, name, price, active FROM items WHERE id=$1`, id).
		Scan(&it.ID, &it.Name, &it.Price, &it.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Item{}, apperr.ErrNotFound
	}
	return it, err
}

func (r *CatalogRepo) ListActive(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, price FROM items WHERE active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalog.Item{}
	for rows.Next() {
		it := catalog.Item{Active: true}
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
