package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema crea las tablas si no existen. Idempotente: se ejecuta en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'User' CHECK (role IN ('Admin', 'User')),
		status        TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
		created_by    UUID,
		updated_by    UUID,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id         UUID PRIMARY KEY,
		name       VARCHAR(50) NOT NULL UNIQUE,
		status     TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
		created_by UUID,
		updated_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id         UUID PRIMARY KEY,
		name       VARCHAR(50) NOT NULL UNIQUE,
		status     TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
		created_by UUID,
		updated_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stocks (
		id                 UUID PRIMARY KEY,
		code               VARCHAR(10) NOT NULL,
		name               TEXT NOT NULL,
		status             TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
		category_id        TEXT NOT NULL,
		location_id        TEXT NOT NULL,
		criticality_level  BIGINT NOT NULL CHECK (criticality_level >= 0),
		criticality_status TEXT NOT NULL,
		stock_count        BIGINT NOT NULL CHECK (stock_count >= 0),
		buying_price       BIGINT NOT NULL CHECK (buying_price > 0),
		selling_price      BIGINT NOT NULL CHECK (selling_price > 0),
		qr_code            TEXT NOT NULL,
		created_by         UUID NOT NULL,
		updated_by         UUID NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stocks_status_code ON stocks (status, code)`,
	`CREATE INDEX IF NOT EXISTS idx_stocks_criticality ON stocks (criticality_status) WHERE status = 'Active'`,
	`CREATE TABLE IF NOT EXISTS movements (
		seq                      BIGSERIAL UNIQUE,
		id                       UUID PRIMARY KEY,
		type                     TEXT NOT NULL CHECK (type IN ('Create', 'Update', 'Increase', 'Decrease', 'Delete')),
		stock_change             BIGINT NOT NULL,
		stock_count_after        BIGINT NOT NULL CHECK (stock_count_after >= 0),
		criticality_status_after TEXT NOT NULL,
		stock_id                 UUID NOT NULL REFERENCES stocks(id),
		created_by               UUID NOT NULL,
		created_at               TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_stock ON movements (stock_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_created ON movements (created_at DESC)`,
	// El libro es de solo inserción.
	`CREATE OR REPLACE RULE movements_no_update AS ON UPDATE TO movements DO INSTEAD NOTHING`,
	`CREATE OR REPLACE RULE movements_no_delete AS ON DELETE TO movements DO INSTEAD NOTHING`,
}

// Migrate aplica el esquema en una transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar migración: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	return tx.Commit(ctx)
}
