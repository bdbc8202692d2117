package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
)

type SettingsRepo struct{ DB DB }

func (r *SettingsRepo) Seed(ctx context.Context, key, value string) error {
	_, err := r.DB.Exec(ctx, `INSERT INTO settings (key, value) VALUES ($1,$2) ON CONFLICT (key) DO NOTHING`, key, value)
	return err
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.DB.QueryRow(ctx, `SELECT value FROM settings WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.ErrNotFound
	}
	return v, err
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1,$2)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value`, key, value)
	return err
}
