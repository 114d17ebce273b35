package model

import "time"

type RateCategory string

const (
	RateCategorySurfacePrep  RateCategory = "surface_prep"
	RateCategoryResurfacing  RateCategory = "resurfacing"
	RateCategoryColorCoat    RateCategory = "color_coat"
	RateCategoryInstallation RateCategory = "installation"
	RateCategoryLinePainting RateCategory = "line_painting"
	RateCategoryEquipment    RateCategory = "equipment"
	RateCategoryEquipInstall RateCategory = "equipment_installation"
	RateCategoryLabor        RateCategory = "labor"
)

// Rate is one row of the pricing table. Value is the price per Unit.
type Rate struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Category  RateCategory `json:"category"`
	Value     float64      `json:"value"`
	Unit      string       `json:"unit"`
	UpdatedAt time.Time    `json:"updated_at"`
}
