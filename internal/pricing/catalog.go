package pricing

import "github.com/courtcraft/estimates/internal/model"

// Rate names looked up by the materials, equipment and labor calculators.
const (
	RateAcidWash          = "Acid Wash"
	RatePressureWash      = "Pressure Wash"
	RatePatchBinder       = "Patch Binder"
	RateSand              = "Sand"
	RateCement            = "Cement"
	RateMinorCrackFiller  = "Minor Crack Filler"
	RateMajorCrackFiller  = "Major Crack Filler"
	RateResurfacer        = "Resurfacer"
	RateFiberglassMesh    = "Fiberglass Mesh"
	RateCushionSystem     = "Cushion System"
	RateTennisPostSet     = "Tennis Post Set"
	RatePickleballPosts   = "Pickleball Permanent Post Set"
	RatePickleballNet     = "Pickleball Mobile Net"
	RateBasketball60      = "Basketball System Adjustable 60"
	RateBasketball72      = "Basketball System Adjustable 72"
	RateBasketballFixed   = "Basketball System Fixed"
	RateWindscreen        = "Windscreen Standard"
	RateWindscreenHigh    = "Windscreen High Grade"
	RatePostHoleCutting   = "Post Hole Cutting"
	RatePostConcrete      = "Post Concrete"
	RateBasketballFooter  = "Basketball Footer"
	RateBasketballInstall = "Basketball System Installation"
	RateWindscreenInstall = "Windscreen Installation"
	RateMobileNetAssembly = "Mobile Net Assembly"
	RateLabor             = "Labor Rate"
	RateMileage           = "Mileage Rate"
)

// Rate ids looked up by the color-coat calculator.
const (
	RateIDLightBlue  = 20
	RateIDDarkBlue   = 21
	RateIDDarkGreen  = 22
	RateIDLightGreen = 23
	RateIDRed        = 24
	RateIDTan        = 25
	RateIDBeige      = 26
	RateIDPurple     = 27
	RateIDOrange     = 28
	RateIDBlack      = 29
	RateIDGray       = 56

	RateIDColorCoatInstall = 60
	RateIDTwoColorUpcharge = 61
	RateIDThreeColors      = 62
	RateIDFourColors       = 63
	RateIDFiveColors       = 64

	RateIDTennisLines         = 70
	RateIDPickleballLines     = 71
	RateIDBasketballHalfLines = 72
	RateIDBasketballFullLines = 73
	RateIDHighSchoolArc       = 74
	RateIDCollegeArc          = 75
	RateIDNBAArc              = 76
)

const FallbackColor = "gray"

var colorMaterialIDs = map[string]int{
	"light-blue":  RateIDLightBlue,
	"dark-blue":   RateIDDarkBlue,
	"dark-green":  RateIDDarkGreen,
	"light-green": RateIDLightGreen,
	"red":         RateIDRed,
	"tan":         RateIDTan,
	"beige":       RateIDBeige,
	"purple":      RateIDPurple,
	"orange":      RateIDOrange,
	"black":       RateIDBlack,
	"gray":        RateIDGray,
}

// ColorMaterialID maps a coating color to its drum-priced material. Unknown
// colors are priced as gray.
func ColorMaterialID(color string) int {
	if id, ok := colorMaterialIDs[nameKey(color)]; ok {
		return id
	}
	return RateIDGray
}

// DefaultRates is the starting rate table seeded into an empty database.
func DefaultRates() []model.Rate {
	return []model.Rate{
		{ID: 1, Name: RateAcidWash, Category: model.RateCategorySurfacePrep, Value: 0.10, Unit: "sq ft"},
		{ID: 2, Name: RatePressureWash, Category: model.RateCategorySurfacePrep, Value: 0.08, Unit: "sq ft"},
		{ID: 3, Name: RatePatchBinder, Category: model.RateCategorySurfacePrep, Value: 95, Unit: "5 gal pail"},
		{ID: 4, Name: RateSand, Category: model.RateCategorySurfacePrep, Value: 12, Unit: "bag"},
		{ID: 5, Name: RateCement, Category: model.RateCategorySurfacePrep, Value: 120, Unit: "48 qt case"},
		{ID: 6, Name: RateMinorCrackFiller, Category: model.RateCategorySurfacePrep, Value: 45, Unit: "gallon"},
		{ID: 7, Name: RateMajorCrackFiller, Category: model.RateCategorySurfacePrep, Value: 60, Unit: "gallon"},
		{ID: 8, Name: RateResurfacer, Category: model.RateCategoryResurfacing, Value: 8.5, Unit: "gallon"},
		{ID: 9, Name: RateFiberglassMesh, Category: model.RateCategoryResurfacing, Value: 1.25, Unit: "sq ft"},
		{ID: 10, Name: RateCushionSystem, Category: model.RateCategoryResurfacing, Value: 2.75, Unit: "sq ft"},

		{ID: RateIDLightBlue, Name: "Color Coat Light Blue", Category: model.RateCategoryColorCoat, Value: 600, Unit: "drum"},
		{ID: RateIDDarkBlue, Name: "Color Coat Dark Blue", Category: model.RateCategoryColorCoat, Value: 600, Unit: "drum"},
		{ID: RateIDDarkGreen, Name: "Color Coat Dark Green", Category: model.RateCategoryColorCoat, Value: 600, Unit: "drum"},
		{ID: RateIDLightGreen, Name: "Color Coat Light Green", Category: model.RateCategoryColorCoat, Value: 600, Unit: "drum"},
		{ID: RateIDRed, Name: "Color Coat Red", Category: model.RateCategoryColorCoat, Value: 625, Unit: "drum"},
		{ID: RateIDTan, Name: "Color Coat Tan", Category: model.RateCategoryColorCoat, Value: 575, Unit: "drum"},
		{ID: RateIDBeige, Name: "Color Coat Beige", Category: model.RateCategoryColorCoat, Value: 575, Unit: "drum"},
		{ID: RateIDPurple, Name: "Color Coat Purple", Category: model.RateCategoryColorCoat, Value: 650, Unit: "drum"},
		{ID: RateIDOrange, Name: "Color Coat Orange", Category: model.RateCategoryColorCoat, Value: 650, Unit: "drum"},
		{ID: RateIDBlack, Name: "Color Coat Black", Category: model.RateCategoryColorCoat, Value: 625, Unit: "drum"},
		{ID: RateIDGray, Name: "Color Coat Gray", Category: model.RateCategoryColorCoat, Value: 500, Unit: "drum"},

		{ID: 30, Name: RateTennisPostSet, Category: model.RateCategoryEquipment, Value: 950, Unit: "set"},
		{ID: 31, Name: RatePickleballPosts, Category: model.RateCategoryEquipment, Value: 650, Unit: "set"},
		{ID: 32, Name: RatePickleballNet, Category: model.RateCategoryEquipment, Value: 450, Unit: "each"},
		{ID: 33, Name: RateBasketball60, Category: model.RateCategoryEquipment, Value: 3200, Unit: "each"},
		{ID: 34, Name: RateBasketball72, Category: model.RateCategoryEquipment, Value: 3900, Unit: "each"},
		{ID: 35, Name: RateBasketballFixed, Category: model.RateCategoryEquipment, Value: 2200, Unit: "each"},
		{ID: 36, Name: RateWindscreen, Category: model.RateCategoryEquipment, Value: 4.5, Unit: "linear ft"},
		{ID: 37, Name: RateWindscreenHigh, Category: model.RateCategoryEquipment, Value: 7, Unit: "linear ft"},
		{ID: 40, Name: RatePostHoleCutting, Category: model.RateCategoryEquipInstall, Value: 85, Unit: "hole"},
		{ID: 41, Name: RatePostConcrete, Category: model.RateCategoryEquipInstall, Value: 25, Unit: "hole"},
		{ID: 42, Name: RateBasketballFooter, Category: model.RateCategoryEquipInstall, Value: 450, Unit: "each"},
		{ID: 43, Name: RateBasketballInstall, Category: model.RateCategoryEquipInstall, Value: 600, Unit: "each"},
		{ID: 44, Name: RateWindscreenInstall, Category: model.RateCategoryEquipInstall, Value: 1.5, Unit: "linear ft"},
		{ID: 45, Name: RateMobileNetAssembly, Category: model.RateCategoryEquipInstall, Value: 50, Unit: "each"},

		{ID: 50, Name: RateLabor, Category: model.RateCategoryLabor, Value: 65, Unit: "hour"},
		{ID: 51, Name: RateMileage, Category: model.RateCategoryLabor, Value: 0.63, Unit: "mile"},

		{ID: RateIDColorCoatInstall, Name: "Color Coat Installation", Category: model.RateCategoryInstallation, Value: 0.35, Unit: "sq ft"},
		{ID: RateIDTwoColorUpcharge, Name: "Two Color Upcharge", Category: model.RateCategoryInstallation, Value: 250, Unit: "fixed"},
		{ID: RateIDThreeColors, Name: "Three Color Upcharge", Category: model.RateCategoryInstallation, Value: 450, Unit: "fixed"},
		{ID: RateIDFourColors, Name: "Four Color Upcharge", Category: model.RateCategoryInstallation, Value: 650, Unit: "fixed"},
		{ID: RateIDFiveColors, Name: "Five Plus Color Upcharge", Category: model.RateCategoryInstallation, Value: 850, Unit: "fixed"},

		{ID: RateIDTennisLines, Name: "Tennis Lines", Category: model.RateCategoryLinePainting, Value: 650, Unit: "court"},
		{ID: RateIDPickleballLines, Name: "Pickleball Lines", Category: model.RateCategoryLinePainting, Value: 350, Unit: "court"},
		{ID: RateIDBasketballHalfLines, Name: "Basketball Half Court Lines", Category: model.RateCategoryLinePainting, Value: 400, Unit: "court"},
		{ID: RateIDBasketballFullLines, Name: "Basketball Full Court Lines", Category: model.RateCategoryLinePainting, Value: 750, Unit: "court"},
		{ID: RateIDHighSchoolArc, Name: "High School Three Point Arc", Category: model.RateCategoryLinePainting, Value: 150, Unit: "arc"},
		{ID: RateIDCollegeArc, Name: "College Three Point Arc", Category: model.RateCategoryLinePainting, Value: 175, Unit: "arc"},
		{ID: RateIDNBAArc, Name: "NBA Three Point Arc", Category: model.RateCategoryLinePainting, Value: 200, Unit: "arc"},
	}
}
