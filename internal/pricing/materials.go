package pricing

import "github.com/courtcraft/estimates/internal/model"

const (
	binderUnitGallons = 5.0
	cementCaseQuarts  = 48.0
)

// Materials prices surface preparation and resurfacer for the project area.
// A zero area yields an empty, all-zero breakdown.
func Materials(surface model.SurfaceSystemSpec, dims model.ProjectDimensions, rates RateTable) model.MaterialsBreakdown {
	area := qty(dims.Area())
	result := model.MaterialsBreakdown{Area: area, Items: []model.LineItem{}}
	if area == 0 {
		return result
	}

	if surface.PressureWash {
		result.Items = append(result.Items, line("Pressure wash", RatePressureWash, area, "sq ft", rates.PriceByName(RatePressureWash)))
	}
	if surface.AcidWash {
		result.Items = append(result.Items, line("Acid wash", RateAcidWash, area, "sq ft", rates.PriceByName(RateAcidWash)))
	}

	if surface.PatchWork {
		result.Items = append(result.Items, patchWork(surface, rates)...)
	}

	if surface.FiberglassMesh {
		result.Items = append(result.Items, line("Fiberglass mesh", RateFiberglassMesh, surface.FiberglassArea, "sq ft", rates.PriceByName(RateFiberglassMesh)))
	}
	if surface.CushionSystem {
		result.Items = append(result.Items, line("Cushion system", RateCushionSystem, surface.CushionArea, "sq ft", rates.PriceByName(RateCushionSystem)))
	}

	if surface.Resurface {
		gallons := GallonsNeeded(area, ResurfacerWasteFactor, Coats)
		drums := DrumsNeeded(gallons)
		result.ResurfacerGallons = gallons
		result.ResurfacerDrums = drums
		// Resurfacer is quoted per gallon and billed per drum.
		drumPrice := rates.PriceByName(RateResurfacer) * GallonsPerDrum
		result.Items = append(result.Items,
			line("Resurfacer", RateResurfacer, float64(drums), "drum", drumPrice),
			line("Resurfacer freight", "", float64(drums), "drum", FreightPerDrum),
		)
	}

	result.Total = sumItems(result.Items)
	return result
}

func patchWork(surface model.SurfaceSystemSpec, rates RateTable) []model.LineItem {
	gallons := qty(surface.PatchGallons)
	items := make([]model.LineItem, 0, 5)
	if gallons > 0 {
		sandBags := ceilCount(gallons / 3 * 2)
		cementQuarts := ceilCount(gallons)
		items = append(items,
			line("Patch binder", RatePatchBinder, gallons, "gallon", rates.PriceByName(RatePatchBinder)/binderUnitGallons),
			line("Patch sand", RateSand, float64(sandBags), "bag", rates.PriceByName(RateSand)),
			line("Patch cement", RateCement, float64(cementQuarts), "quart", rates.PriceByName(RateCement)/cementCaseQuarts),
		)
	}
	if minor := qty(surface.MinorCrackGallons); minor > 0 {
		items = append(items, line("Minor crack filler", RateMinorCrackFiller, minor, "gallon", rates.PriceByName(RateMinorCrackFiller)))
	}
	if major := qty(surface.MajorCrackGallons); major > 0 {
		items = append(items, line("Major crack filler", RateMajorCrackFiller, major, "gallon", rates.PriceByName(RateMajorCrackFiller)))
	}
	return items
}
