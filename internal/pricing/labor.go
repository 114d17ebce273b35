package pricing

import "github.com/courtcraft/estimates/internal/model"

const (
	HoursPerDay   = 8
	CrewSize      = 2
	PerDiemRate   = 50.0
	RoundTripLegs = 2
)

// Labor prices crew time and travel. A nil logistics spec uses the defaults
// (2 travel days, 1 trip, $150/night); installationHours comes from the
// equipment calculator.
func Labor(logistics *model.LogisticsSpec, installationHours float64, rates RateTable) model.LaborBreakdown {
	l := logistics.WithDefaults(0)
	laborRate := qty(rates.PriceByName(RateLabor))
	mileageRate := qty(rates.PriceByName(RateMileage))

	days := max(l.TravelDays, 0)
	trips := max(l.Trips, 0)
	hotelNights := max(days-1, 0) * trips

	result := model.LaborBreakdown{
		TravelDays:        days,
		Trips:             trips,
		DistanceMiles:     qty(l.DistanceMiles),
		LaborRate:         laborRate,
		StandardHours:     float64(days * HoursPerDay),
		AdditionalHours:   qty(l.AdditionalHours),
		InstallationHours: qty(installationHours),
		MileageRate:       mileageRate,
		HotelNights:       hotelNights,
		HotelRate:         qty(l.HotelRate),
		CrewSize:          CrewSize,
		PerDiemRate:       PerDiemRate,
		Notes:             l.Notes,
	}
	result.Miles = result.DistanceMiles * RoundTripLegs * float64(trips)

	result.Items = []model.LineItem{
		line("Standard labor", RateLabor, result.StandardHours, "hour", laborRate),
		line("Additional labor", RateLabor, result.AdditionalHours, "hour", laborRate),
		line("Installation labor", RateLabor, result.InstallationHours, "hour", laborRate),
		line("Travel mileage", RateMileage, result.Miles, "mile", mileageRate),
		line("Hotel", "", float64(hotelNights), "night", result.HotelRate),
		line("Per diem", "", float64(days*trips*CrewSize), "person-day", PerDiemRate),
	}

	result.StandardLabor = result.Items[0].Subtotal
	result.AdditionalLabor = result.Items[1].Subtotal
	result.InstallationLabor = result.Items[2].Subtotal
	result.Travel = result.Items[3].Subtotal
	result.Hotel = result.Items[4].Subtotal
	result.PerDiem = result.Items[5].Subtotal
	result.Total = sumItems(result.Items)
	return result
}
