package model

import (
	"time"

	"github.com/google/uuid"
)

// Estimate is a saved quote: the inputs and the breakdown computed from them
// at save time.
type Estimate struct {
	ID          uuid.UUID     `json:"id"`
	ClientName  string        `json:"client_name"`
	ProjectName string        `json:"project_name"`
	Input       ProjectInput  `json:"input"`
	Result      CostBreakdown `json:"result"`
	CreatedBy   uuid.UUID     `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type EstimateSummary struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	ProjectName string    `json:"project_name"`
	BaseTotal   float64   `json:"base_total"`
	GrandTotal  float64   `json:"grand_total"`
	CreatedAt   time.Time `json:"created_at"`
}
