package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/courtcraft/estimates/internal/model"
)

type RateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) ListRates(ctx context.Context) ([]model.Rate, error) {
	var rows []model.Rate
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, category, value, unit, updated_at
		FROM pricing_rates
		ORDER BY id ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RateRepository) GetRate(ctx context.Context, id int) (*model.Rate, error) {
	var rate model.Rate
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, category, value, unit, updated_at
		FROM pricing_rates
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&rate).Error; err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rate, nil
}

func (r *RateRepository) UpdateRateValue(ctx context.Context, id int, value float64) (*model.Rate, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE pricing_rates
		SET value = ?, updated_at = ?
		WHERE id = ?
	`, value, time.Now().UTC(), id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetRate(ctx, id)
}
