package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/courtcraft/estimates/internal/model"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type EstimateRepository struct {
	db *gorm.DB
}

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

type estimateRow struct {
	ID          uuid.UUID
	ClientName  string
	ProjectName string
	Input       string
	Result      string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (row estimateRow) toModel() (*model.Estimate, error) {
	estimate := &model.Estimate{
		ID:          row.ID,
		ClientName:  row.ClientName,
		ProjectName: row.ProjectName,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.Input), &estimate.Input); err != nil {
		return nil, fmt.Errorf("decode estimate %s input: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Result), &estimate.Result); err != nil {
		return nil, fmt.Errorf("decode estimate %s result: %w", row.ID, err)
	}
	return estimate, nil
}

func (r *EstimateRepository) CreateEstimate(ctx context.Context, estimate model.Estimate) (*model.Estimate, error) {
	input, err := json.Marshal(estimate.Input)
	if err != nil {
		return nil, err
	}
	result, err := json.Marshal(estimate.Result)
	if err != nil {
		return nil, err
	}

	if estimate.ID == uuid.Nil {
		estimate.ID = uuid.New()
	}
	now := time.Now().UTC()
	estimate.CreatedAt = now
	estimate.UpdatedAt = now

	if err := r.db.WithContext(ctx).Exec(`
		INSERT INTO estimates (
			id, client_name, project_name, input, result,
			base_total, grand_total, created_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		estimate.ID,
		estimate.ClientName,
		estimate.ProjectName,
		string(input),
		string(result),
		estimate.Result.BaseTotal,
		estimate.Result.Total,
		estimate.CreatedBy,
		estimate.CreatedAt,
		estimate.UpdatedAt,
	).Error; err != nil {
		return nil, err
	}
	return &estimate, nil
}

func (r *EstimateRepository) GetEstimate(ctx context.Context, id uuid.UUID) (*model.Estimate, error) {
	var row estimateRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_name, project_name, input, result, created_by, created_at, updated_at
		FROM estimates
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toModel()
}

// ListEstimates returns the newest estimates first. A non-positive limit
// falls back to DefaultListLimit.
func (r *EstimateRepository) ListEstimates(ctx context.Context, limit int) ([]model.EstimateSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var rows []model.EstimateSummary
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_name, project_name, base_total, grand_total, created_at
		FROM estimates
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EstimateRepository) UpdateEstimateResult(ctx context.Context, id uuid.UUID, result model.CostBreakdown) (*model.Estimate, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Exec(`
		UPDATE estimates
		SET result = ?, base_total = ?, grand_total = ?, updated_at = ?
		WHERE id = ?
	`, string(payload), result.BaseTotal, result.Total, time.Now().UTC(), id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetEstimate(ctx, id)
}
