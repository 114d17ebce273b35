package pricing

import (
	"math"

	"github.com/courtcraft/estimates/internal/model"
)

const (
	GallonsPerDrum        = 30
	Coats                 = 2
	FreightPerDrum        = 100.0
	ResurfacerWasteFactor = 1.25
	ColorCoatWasteFactor  = 1.15

	// ceilTolerance absorbs float error so 23.000000000000004 orders 23, not 24.
	ceilTolerance = 1e-9

	// MaxCount caps whole-unit counts; float to int conversion is undefined
	// beyond the int range.
	MaxCount = math.MaxInt32
)

// GallonsNeeded is ceil(area/100 * wasteFactor * coats): one gallon covers
// 100 sq ft per coat before waste.
func GallonsNeeded(area, wasteFactor float64, coats int) int {
	if area <= 0 || wasteFactor <= 0 || coats <= 0 {
		return 0
	}
	return ceilCount(((area / 100) * wasteFactor) * float64(coats))
}

func DrumsNeeded(gallons int) int {
	if gallons <= 0 {
		return 0
	}
	gallons = min(gallons, MaxCount)
	return (gallons + GallonsPerDrum - 1) / GallonsPerDrum
}

// ceilCount rounds a quantity up to whole units; materials are never
// under-ordered.
func ceilCount(value float64) int {
	if value <= 0 || math.IsNaN(value) {
		return 0
	}
	if value >= MaxCount {
		return MaxCount
	}
	return int(math.Ceil(value - ceilTolerance))
}

// qty substitutes 0 for negative or non-finite operands.
func qty(value float64) float64 {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func line(label, rateRef string, quantity float64, unit string, unitCost float64) model.LineItem {
	quantity = qty(quantity)
	unitCost = qty(unitCost)
	return model.LineItem{
		Label:    label,
		RateRef:  rateRef,
		Quantity: quantity,
		Unit:     unit,
		UnitCost: unitCost,
		Subtotal: quantity * unitCost,
	}
}

func sumItems(items []model.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}
