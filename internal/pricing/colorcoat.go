package pricing

import (
	"strings"

	"github.com/courtcraft/estimates/internal/model"
)

// Standard court footprints in square feet, per court.
const (
	TennisCourtArea       = 36.0 * 78.0
	PickleballCourtArea   = 30.0 * 60.0
	PickleballKitchenArea = 14.0 * 20.0
	BasketballHalfArea    = 50.0 * 50.0
	BasketballFullArea    = 50.0 * 94.0
	BasketballLaneArea    = 16.0 * 19.0
)

// colorAreas accumulates area per color, remembering first-seen order so the
// output is stable.
type colorAreas struct {
	order []string
	areas map[string]float64
	total float64
}

func newColorAreas() *colorAreas {
	return &colorAreas{areas: make(map[string]float64)}
}

func (c *colorAreas) add(color string, area float64) {
	if area <= 0 {
		return
	}
	if _, ok := c.areas[color]; !ok {
		c.order = append(c.order, color)
	}
	c.areas[color] += area
	c.total += area
}

// ColorCoat partitions squareFootage among court colors and an apron color,
// then prices coating material, installation and line painting. Court areas
// are standard footprints; the apron gets whatever is left, never less than 0.
func ColorCoat(courts model.CourtConfiguration, dims model.ProjectDimensions, rates RateTable) model.ColorCoatBreakdown {
	squareFootage := qty(dims.Area())
	apron := normalizeColor(courts.ApronColor)
	result := model.ColorCoatBreakdown{
		SquareFootage: squareFootage,
		CourtAreas:    map[string]float64{},
		ApronColor:    apron,
		Colors:        []model.ColorLine{},
		Installation:  []model.LineItem{},
		LinePainting:  []model.LineItem{},
	}
	if squareFootage == 0 {
		return result
	}

	court := courtAreas(courts)
	for _, color := range court.order {
		result.CourtAreas[color] = court.areas[color]
	}
	result.TotalColoredArea = court.total

	remaining := squareFootage - court.total
	if remaining < 0 {
		result.OverAllocatedArea = -remaining
		remaining = 0
	}
	result.RemainingArea = remaining

	coated := newColorAreas()
	for _, color := range court.order {
		coated.add(color, court.areas[color])
	}
	coated.add(apron, remaining)

	for _, color := range coated.order {
		colorLine := priceColor(color, coated.areas[color], rates)
		result.Colors = append(result.Colors, colorLine)
		result.MaterialsTotal += colorLine.Subtotal
	}
	result.DistinctColors = len(coated.order)

	result.Installation = installation(coated.total, result.DistinctColors, rates)
	result.InstallationTotal = sumItems(result.Installation)

	result.LinePainting = linePainting(courts, rates)
	result.LinePaintingTotal = sumItems(result.LinePainting)

	result.Total = result.MaterialsTotal + result.InstallationTotal + result.LinePaintingTotal
	return result
}

func courtAreas(courts model.CourtConfiguration) *colorAreas {
	areas := newColorAreas()

	if n := float64(max(courts.TennisCourts, 0)); n > 0 {
		areas.add(normalizeColor(courts.TennisCourtColor), TennisCourtArea*n)
	}

	if n := float64(max(courts.PickleballCourts, 0)); n > 0 {
		areas.add(normalizeColor(courts.PickleballCourtColor), (PickleballCourtArea-PickleballKitchenArea)*n)
		areas.add(normalizeColor(courts.PickleballKitchenColor), PickleballKitchenArea*n)
	}

	if n := float64(max(courts.BasketballCourts, 0)); n > 0 {
		courtArea, lanes := BasketballHalfArea, 1.0
		if courts.BasketballCourtType == model.BasketballFullCourt {
			courtArea, lanes = BasketballFullArea, 2.0
		}
		laneArea := BasketballLaneArea * lanes
		areas.add(normalizeColor(courts.BasketballCourtColor), (courtArea-laneArea)*n)
		areas.add(normalizeColor(courts.BasketballLaneColor), laneArea*n)
	}

	return areas
}

func priceColor(color string, area float64, rates RateTable) model.ColorLine {
	materialID := ColorMaterialID(color)
	gallons := GallonsNeeded(area, ColorCoatWasteFactor, Coats)
	drums := DrumsNeeded(gallons)
	drumPrice := qty(rates.PriceByID(materialID))
	materialCost := float64(drums) * drumPrice
	freight := float64(drums) * FreightPerDrum
	return model.ColorLine{
		Color:        color,
		MaterialID:   materialID,
		Area:         area,
		Gallons:      gallons,
		Drums:        drums,
		DrumPrice:    drumPrice,
		MaterialCost: materialCost,
		Freight:      freight,
		Subtotal:     materialCost + freight,
	}
}

// installation charges the base rate over the coated area plus one flat
// upcharge chosen by how many colors have to be masked.
func installation(area float64, distinctColors int, rates RateTable) []model.LineItem {
	items := []model.LineItem{}
	if area <= 0 {
		return items
	}
	items = append(items, line("Color coat installation", idRef(RateIDColorCoatInstall), area, "sq ft", rates.PriceByID(RateIDColorCoatInstall)))

	if upchargeID, ok := upchargeRateID(distinctColors); ok {
		items = append(items, line(upchargeLabel(distinctColors), idRef(upchargeID), 1, "fixed", rates.PriceByID(upchargeID)))
	}
	return items
}

func upchargeRateID(distinctColors int) (int, bool) {
	switch {
	case distinctColors >= 5:
		return RateIDFiveColors, true
	case distinctColors == 4:
		return RateIDFourColors, true
	case distinctColors == 3:
		return RateIDThreeColors, true
	case distinctColors == 2:
		return RateIDTwoColorUpcharge, true
	default:
		return 0, false
	}
}

func upchargeLabel(distinctColors int) string {
	switch {
	case distinctColors >= 5:
		return "Multi-color upcharge (5+ colors)"
	case distinctColors == 4:
		return "Multi-color upcharge (4 colors)"
	case distinctColors == 3:
		return "Multi-color upcharge (3 colors)"
	default:
		return "Multi-color upcharge (2 colors)"
	}
}

func linePainting(courts model.CourtConfiguration, rates RateTable) []model.LineItem {
	items := []model.LineItem{}

	if n := float64(max(courts.TennisCourts, 0)); n > 0 {
		items = append(items, line("Tennis lines", idRef(RateIDTennisLines), n, "court", rates.PriceByID(RateIDTennisLines)))
	}
	if n := float64(max(courts.PickleballCourts, 0)); n > 0 {
		items = append(items, line("Pickleball lines", idRef(RateIDPickleballLines), n, "court", rates.PriceByID(RateIDPickleballLines)))
	}

	n := float64(max(courts.BasketballCourts, 0))
	if n == 0 {
		return items
	}
	full := courts.BasketballCourtType == model.BasketballFullCourt
	if full {
		items = append(items, line("Basketball full court lines", idRef(RateIDBasketballFullLines), n, "court", rates.PriceByID(RateIDBasketballFullLines)))
	} else {
		items = append(items, line("Basketball half court lines", idRef(RateIDBasketballHalfLines), n, "court", rates.PriceByID(RateIDBasketballHalfLines)))
	}

	// A full court has a three-point arc at each end.
	arcs := n
	if full {
		arcs = n * 2
	}
	seen := make(map[model.ThreePointLine]bool, len(courts.ThreePointLines))
	for _, style := range courts.ThreePointLines {
		if seen[style] {
			continue
		}
		seen[style] = true
		id, label, ok := arcRate(style)
		if !ok {
			continue
		}
		items = append(items, line(label, idRef(id), arcs, "arc", rates.PriceByID(id)))
	}
	return items
}

func arcRate(style model.ThreePointLine) (int, string, bool) {
	switch style {
	case model.ThreePointHighSchool:
		return RateIDHighSchoolArc, "High school three-point arc", true
	case model.ThreePointCollege:
		return RateIDCollegeArc, "College three-point arc", true
	case model.ThreePointNBA:
		return RateIDNBAArc, "NBA three-point arc", true
	default:
		return 0, "", false
	}
}

func normalizeColor(color string) string {
	color = strings.ToLower(strings.TrimSpace(color))
	color = strings.Join(strings.Fields(strings.ReplaceAll(color, "_", " ")), "-")
	if color == "" {
		return FallbackColor
	}
	return color
}
