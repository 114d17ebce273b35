package pricing

import (
	"sort"

	"github.com/courtcraft/estimates/internal/model"
)

const (
	DefaultTaxRate    = 0.06
	DefaultMarginRate = 0.30
)

type Options struct {
	TaxRate          float64
	MarginRate       float64
	DefaultHotelRate float64
}

func DefaultOptions() Options {
	return Options{
		TaxRate:          DefaultTaxRate,
		MarginRate:       DefaultMarginRate,
		DefaultHotelRate: model.DefaultHotelRate,
	}
}

// Estimate runs every calculator and rolls the results up. Tax and margin
// both apply to the same base (materials, color coat and labor); equipment is
// quoted as separate packages outside that base, installation labor included.
func Estimate(input model.ProjectInput, rates RateTable, opts Options) model.CostBreakdown {
	logistics := input.Logistics.WithDefaults(opts.DefaultHotelRate)

	equipment := Equipment(input.Equipment, rates)
	result := model.CostBreakdown{
		Materials:  Materials(input.Surface, input.Dimensions, rates),
		ColorCoat:  ColorCoat(input.Courts, input.Dimensions, rates),
		Labor:      Labor(&logistics, 0, rates),
		Equipment:  equipment,
		TaxRate:    qty(opts.TaxRate),
		MarginRate: qty(opts.MarginRate),
		Packages:   Packages(equipment),
	}

	result.BaseTotal = result.Materials.Total + result.ColorCoat.Total + result.Labor.Total
	result.Tax = result.BaseTotal * result.TaxRate
	result.Margin = result.BaseTotal * result.MarginRate
	result.Total = result.BaseTotal + result.Tax + result.Margin

	for _, pkg := range result.Packages {
		result.PackagesTotal += pkg.Subtotal
	}

	result.MissingRates = MissingRates(result)
	result.Degraded = len(result.MissingRates) > 0
	return result
}

// MissingRates lists the rate refs of line items that have a quantity but
// priced at zero, which is how an incomplete rate table shows up.
func MissingRates(b model.CostBreakdown) []string {
	missing := make(map[string]struct{})
	check := func(items []model.LineItem) {
		for _, item := range items {
			if item.RateRef != "" && item.Quantity > 0 && item.UnitCost == 0 {
				missing[item.RateRef] = struct{}{}
			}
		}
	}

	check(b.Materials.Items)
	check(b.ColorCoat.Installation)
	check(b.ColorCoat.LinePainting)
	check(b.Labor.Items)
	for _, equipmentLine := range b.Equipment.Lines {
		check(equipmentLine.Items)
	}
	for _, colorLine := range b.ColorCoat.Colors {
		if colorLine.Drums > 0 && colorLine.DrumPrice == 0 {
			missing[idRef(colorLine.MaterialID)] = struct{}{}
		}
	}

	if len(missing) == 0 {
		return nil
	}
	refs := make([]string, 0, len(missing))
	for ref := range missing {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
