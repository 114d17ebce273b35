package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS pricing_rates (
		id INTEGER PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		category VARCHAR(64) NOT NULL,
		value NUMERIC(18,4) NOT NULL DEFAULT 0,
		unit VARCHAR(32) NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_pricing_rates_value') THEN
			ALTER TABLE pricing_rates ADD CONSTRAINT chk_pricing_rates_value CHECK (value >= 0);
		END IF;
	END
	$$;`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_pricing_rates_name ON pricing_rates (LOWER(name));`,
	`CREATE INDEX IF NOT EXISTS idx_pricing_rates_category ON pricing_rates (category);`,
	`CREATE TABLE IF NOT EXISTS estimates (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_name VARCHAR(255) NOT NULL DEFAULT '',
		project_name VARCHAR(255) NOT NULL DEFAULT '',
		input JSONB NOT NULL,
		result JSONB NOT NULL,
		base_total NUMERIC(18,2) NOT NULL DEFAULT 0,
		grand_total NUMERIC(18,2) NOT NULL DEFAULT 0,
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_estimates_created_by ON estimates (created_by);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
