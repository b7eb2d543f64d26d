package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Se ejecuta en el arranque; no
// migra esquemas ya existentes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			sku            TEXT NOT NULL,
			name           TEXT NOT NULL DEFAULT '',
			lead_time_days INTEGER NOT NULL CHECK (lead_time_days > 0),
			z_value        NUMERIC(6,2) NOT NULL CHECK (z_value >= 0),
			fba_stock      INTEGER NOT NULL DEFAULT 0 CHECK (fba_stock >= 0),
			inbound_stock  INTEGER NOT NULL DEFAULT 0 CHECK (inbound_stock >= 0),
			updated_at     TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, sku)
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_sales (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			sku        TEXT NOT NULL,
			year       INTEGER NOT NULL,
			month      INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			units_sold INTEGER NOT NULL CHECK (units_sold >= 0),
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, sku, year, month)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_monthly_sales_user_sku
			ON monthly_sales (user_id, sku)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
