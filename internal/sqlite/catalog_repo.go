package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/urbanlaundrydahej/laundry-app/internal/catalog"
)

type CatalogRepo struct{ DB *sql.DB }

func (r *CatalogRepo) Add(ctx context.Context, name string, price int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO items (name, price, active) VALUES (?, ?, 1)`, name, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *CatalogRepo) Deactivate(ctx context.Context, id int64) error {
	// rows matched, not changed: removing an already inactive item is fine
	return notFoundIfNone(r.DB.ExecContext(ctx, `UPDATE items SET active=0 WHERE id=?`, id))
}

func (r *CatalogRepo) Get(ctx context.Context, id int64) (catalog.Item, error) {
	var it catalog.Item
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, price, active FROM items WHERE id=?`, id).
		Scan(&it.ID, &it.Name, &it.Price, &it.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Item{}, errNotFound
	}
	return it, err
}

func (r *CatalogRepo) ListActive(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, price FROM items WHERE active=1 ORDER BY id`)
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
