package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/courtcraft/estimates/internal/model"
)

// SeedRates inserts rates whose id and name are both unused. Existing rows
// keep their values, so edits made through the API survive restarts.
func SeedRates(ctx context.Context, db *gorm.DB, rates []model.Rate) (int64, error) {
	now := time.Now().UTC()
	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rate := range rates {
			res := tx.Exec(`
				INSERT INTO pricing_rates (id, name, category, value, unit, updated_at)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT DO NOTHING
			`, rate.ID, rate.Name, string(rate.Category), rate.Value, rate.Unit, now)
			if res.Error != nil {
				return fmt.Errorf("seed rate %d (%s): %w", rate.ID, rate.Name, res.Error)
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
