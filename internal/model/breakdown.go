package model

// LineItem is one priced row. RateRef names the rate the unit cost came from
// (a rate name or a numeric rate id); it is empty for fixed charges.
type LineItem struct {
	Label    string  `json:"label"`
	RateRef  string  `json:"rate_ref,omitempty"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
	Subtotal float64 `json:"subtotal"`
}

type MaterialsBreakdown struct {
	Area              float64    `json:"area"`
	Items             []LineItem `json:"items"`
	ResurfacerGallons int        `json:"resurfacer_gallons"`
	ResurfacerDrums   int        `json:"resurfacer_drums"`
	Total             float64    `json:"total"`
}

type ColorLine struct {
	Color        string  `json:"color"`
	MaterialID   int     `json:"material_id"`
	Area         float64 `json:"area"`
	Gallons      int     `json:"gallons"`
	Drums        int     `json:"drums"`
	DrumPrice    float64 `json:"drum_price"`
	MaterialCost float64 `json:"material_cost"`
	Freight      float64 `json:"freight"`
	Subtotal     float64 `json:"subtotal"`
}

type ColorCoatBreakdown struct {
	SquareFootage     float64            `json:"square_footage"`
	CourtAreas        map[string]float64 `json:"court_areas"`
	TotalColoredArea  float64            `json:"total_colored_area"`
	RemainingArea     float64            `json:"remaining_area"`
	OverAllocatedArea float64            `json:"over_allocated_area"`
	ApronColor        string             `json:"apron_color"`
	Colors            []ColorLine        `json:"colors"`
	DistinctColors    int                `json:"distinct_colors"`
	Installation      []LineItem         `json:"installation"`
	LinePainting      []LineItem         `json:"line_painting"`
	MaterialsTotal    float64            `json:"materials_total"`
	InstallationTotal float64            `json:"installation_total"`
	LinePaintingTotal float64            `json:"line_painting_total"`
	Total             float64            `json:"total"`
}

type EquipmentLine struct {
	Key               string     `json:"key"`
	Label             string     `json:"label"`
	Package           string     `json:"package"`
	Quantity          float64    `json:"quantity"`
	Unit              string     `json:"unit"`
	UnitCost          float64    `json:"unit_cost"`
	Equipment         float64    `json:"equipment"`
	InstallNeeded     bool       `json:"install_needed"`
	InstallUnitCost   float64    `json:"install_unit_cost"`
	Installation      float64    `json:"installation"`
	InstallationHours float64    `json:"installation_hours"`
	Items             []LineItem `json:"items"`
	Subtotal          float64    `json:"subtotal"`
}

type EquipmentBreakdown struct {
	Lines             []EquipmentLine `json:"lines"`
	InstallationHours float64         `json:"installation_hours"`
	EquipmentTotal    float64         `json:"equipment_total"`
	InstallationTotal float64         `json:"installation_total"`
	Total             float64         `json:"total"`
}

// Visible returns the lines worth showing: categories with a zero count are
// still computed but not displayed.
func (b EquipmentBreakdown) Visible() []EquipmentLine {
	visible := make([]EquipmentLine, 0, len(b.Lines))
	for _, line := range b.Lines {
		if line.Quantity > 0 {
			visible = append(visible, line)
		}
	}
	return visible
}

type LaborBreakdown struct {
	TravelDays        int        `json:"travel_days"`
	Trips             int        `json:"trips"`
	DistanceMiles     float64    `json:"distance_miles"`
	LaborRate         float64    `json:"labor_rate"`
	StandardHours     float64    `json:"standard_hours"`
	StandardLabor     float64    `json:"standard_labor"`
	AdditionalHours   float64    `json:"additional_hours"`
	AdditionalLabor   float64    `json:"additional_labor"`
	InstallationHours float64    `json:"installation_hours"`
	InstallationLabor float64    `json:"installation_labor"`
	Miles             float64    `json:"miles"`
	MileageRate       float64    `json:"mileage_rate"`
	Travel            float64    `json:"travel"`
	HotelNights       int        `json:"hotel_nights"`
	HotelRate         float64    `json:"hotel_rate"`
	Hotel             float64    `json:"hotel"`
	CrewSize          int        `json:"crew_size"`
	PerDiemRate       float64    `json:"per_diem_rate"`
	PerDiem           float64    `json:"per_diem"`
	Notes             string     `json:"notes,omitempty"`
	Items             []LineItem `json:"items"`
	Total             float64    `json:"total"`
}

// EquipmentPackage is an optional add-on quoted outside the taxed base.
type EquipmentPackage struct {
	Name         string          `json:"name"`
	Lines        []EquipmentLine `json:"lines"`
	Equipment    float64         `json:"equipment"`
	Installation float64         `json:"installation"`
	Subtotal     float64         `json:"subtotal"`
}

type CostBreakdown struct {
	Materials     MaterialsBreakdown `json:"materials"`
	ColorCoat     ColorCoatBreakdown `json:"color_coat"`
	Labor         LaborBreakdown     `json:"labor"`
	Equipment     EquipmentBreakdown `json:"equipment"`
	BaseTotal     float64            `json:"base_total"`
	TaxRate       float64            `json:"tax_rate"`
	Tax           float64            `json:"tax"`
	MarginRate    float64            `json:"margin_rate"`
	Margin        float64            `json:"margin"`
	Total         float64            `json:"total"`
	Packages      []EquipmentPackage `json:"packages"`
	PackagesTotal float64            `json:"packages_total"`
	Degraded      bool               `json:"degraded"`
	MissingRates  []string           `json:"missing_rates,omitempty"`
}
