package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migraciones idempotentes: cada sentencia puede ejecutarse en cada
// arranque sin efecto sobre un esquema ya creado.
//
// item_history usa BIGSERIAL como clave: el orden de inserción queda
// materializado en el id, que es el orden de almacenamiento del historial
// (independiente de occurred_at). ON DELETE CASCADE implementa la
// composición: el historial no existe fuera de su Item.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          UUID PRIMARY KEY,
		description TEXT NOT NULL,
		unit        TEXT NOT NULL,
		category    TEXT NOT NULL CHECK (category IN ('accessory', 'tool')),
		stock_in    NUMERIC NOT NULL DEFAULT 0 CHECK (stock_in >= 0),
		stock_out   NUMERIC NOT NULL DEFAULT 0 CHECK (stock_out >= 0),
		total_stock NUMERIC NOT NULL DEFAULT 0 CHECK (total_stock >= 0),
		min_stock   NUMERIC NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS items_category_description_key
		ON items (category, LOWER(TRIM(description)))`,
	`CREATE TABLE IF NOT EXISTS item_history (
		id            BIGSERIAL PRIMARY KEY,
		item_id       UUID NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		quantity      NUMERIC NOT NULL CHECK (quantity > 0),
		movement_type TEXT NOT NULL CHECK (movement_type IN ('in', 'out')),
		notes         TEXT NOT NULL DEFAULT '',
		occurred_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS item_history_item_idx ON item_history (item_id, id)`,
	`CREATE INDEX IF NOT EXISTS item_history_occurred_at_idx ON item_history (occurred_at)`,
}

// Migrate aplica el esquema en orden.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	return nil
}
