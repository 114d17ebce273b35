package db

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/courtcraft/estimates/internal/model"
	"github.com/courtcraft/estimates/internal/pricing"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Exec(`CREATE TABLE pricing_rates (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		value REAL NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL
	)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return database
}

func TestSeedRates_Idempotent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	rates := pricing.DefaultRates()

	inserted, err := SeedRates(ctx, database, rates)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if inserted != int64(len(rates)) {
		t.Errorf("first seed inserted %d, want %d", inserted, len(rates))
	}

	inserted, err = SeedRates(ctx, database, rates)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("second seed inserted %d, want 0", inserted)
	}

	var count int64
	database.Raw(`SELECT COUNT(*) FROM pricing_rates`).Scan(&count)
	if count != int64(len(rates)) {
		t.Errorf("row count = %d, want %d", count, len(rates))
	}
}

func TestSeedRates_KeepsEditedValues(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if _, err := SeedRates(ctx, database, []model.Rate{{ID: 50, Name: pricing.RateLabor, Category: model.RateCategoryLabor, Value: 65, Unit: "hour"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	database.Exec(`UPDATE pricing_rates SET value = 80 WHERE id = 50`)

	if _, err := SeedRates(ctx, database, []model.Rate{{ID: 50, Name: pricing.RateLabor, Category: model.RateCategoryLabor, Value: 65, Unit: "hour"}}); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var value float64
	database.Raw(`SELECT value FROM pricing_rates WHERE id = 50`).Scan(&value)
	if value != 80 {
		t.Errorf("value = %v, want edited value 80", value)
	}
}

func TestSeedRates_SkipsNameCollision(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	if err := database.Exec(`CREATE UNIQUE INDEX uq_pricing_rates_name ON pricing_rates (LOWER(name))`).Error; err != nil {
		t.Fatalf("create index: %v", err)
	}

	if _, err := SeedRates(ctx, database, []model.Rate{{ID: 50, Name: pricing.RateLabor, Category: model.RateCategoryLabor, Value: 65, Unit: "hour"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	renamed := strings.ToLower(pricing.RateLabor)
	inserted, err := SeedRates(ctx, database, []model.Rate{{ID: 99, Name: renamed, Category: model.RateCategoryLabor, Value: 70, Unit: "hour"}})
	if err != nil {
		t.Fatalf("seed colliding name: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted %d, want 0", inserted)
	}

	var count int64
	database.Raw(`SELECT COUNT(*) FROM pricing_rates`).Scan(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}
