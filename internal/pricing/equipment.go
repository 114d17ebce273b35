package pricing

import "github.com/courtcraft/estimates/internal/model"

const (
	PackageTennis     = "Tennis"
	PackagePickleball = "Pickleball"
	PackageBasketball = "Basketball"
	PackageWindscreen = "Windscreen"
)

type installPart struct {
	label   string
	rate    string
	perUnit float64
	unit    string
}

// equipmentCategory describes how one kind of equipment is priced. The
// install rate of a unit is the sum of its parts.
type equipmentCategory struct {
	key          string
	label        string
	pkg          string
	rate         string
	unit         string
	install      []installPart
	installHours float64
}

var (
	postInstall = []installPart{
		{label: "Post hole cutting", rate: RatePostHoleCutting, perUnit: 2, unit: "hole"},
		{label: "Post concrete", rate: RatePostConcrete, perUnit: 2, unit: "hole"},
	}
	basketballInstall = []installPart{
		{label: "Basketball footer", rate: RateBasketballFooter, perUnit: 1, unit: "each"},
		{label: "Basketball system installation", rate: RateBasketballInstall, perUnit: 1, unit: "each"},
	}
	windscreenInstall = []installPart{
		{label: "Windscreen installation", rate: RateWindscreenInstall, perUnit: 1, unit: "linear ft"},
	}
)

var (
	tennisPosts = equipmentCategory{
		key: "tennis_posts", label: "Tennis post set", pkg: PackageTennis,
		rate: RateTennisPostSet, unit: "set", install: postInstall, installHours: 4,
	}
	pickleballPosts = equipmentCategory{
		key: "pickleball_permanent_posts", label: "Pickleball permanent post set", pkg: PackagePickleball,
		rate: RatePickleballPosts, unit: "set", install: postInstall, installHours: 3,
	}
	pickleballNets = equipmentCategory{
		key: "pickleball_mobile_nets", label: "Pickleball mobile net", pkg: PackagePickleball,
		rate: RatePickleballNet, unit: "each",
		install:      []installPart{{label: "Mobile net assembly", rate: RateMobileNetAssembly, perUnit: 1, unit: "each"}},
		installHours: 0.5,
	}
	basketball60 = equipmentCategory{
		key: "basketball_adjustable_60", label: `Adjustable basketball system 60"`, pkg: PackageBasketball,
		rate: RateBasketball60, unit: "each", install: basketballInstall, installHours: 8,
	}
	basketball72 = equipmentCategory{
		key: "basketball_adjustable_72", label: `Adjustable basketball system 72"`, pkg: PackageBasketball,
		rate: RateBasketball72, unit: "each", install: basketballInstall, installHours: 8,
	}
	basketballFixed = equipmentCategory{
		key: "basketball_fixed", label: "Fixed basketball system", pkg: PackageBasketball,
		rate: RateBasketballFixed, unit: "each", install: basketballInstall, installHours: 6,
	}
	windscreenStandard = equipmentCategory{
		key: "windscreen_standard", label: "Windscreen (standard)", pkg: PackageWindscreen,
		rate: RateWindscreen, unit: "linear ft", install: windscreenInstall, installHours: 0.05,
	}
	windscreenHighGrade = equipmentCategory{
		key: "windscreen_high_grade", label: "Windscreen (high grade)", pkg: PackageWindscreen,
		rate: RateWindscreenHigh, unit: "linear ft", install: windscreenInstall, installHours: 0.05,
	}
)

// Equipment prices every category independently. Installation, including the
// crew hours at the labor rate, is added only for categories whose install
// flag is set.
func Equipment(spec model.EquipmentSpec, rates RateTable) model.EquipmentBreakdown {
	requests := []struct {
		category equipmentCategory
		quantity float64
		install  bool
	}{
		{tennisPosts, float64(spec.Tennis.Posts), spec.Tennis.Install},
		{pickleballPosts, float64(spec.Pickleball.PermanentPosts), spec.Pickleball.Install},
		{pickleballNets, float64(spec.Pickleball.MobileNets), spec.Pickleball.Install},
		{basketball60, float64(spec.Basketball.Adjustable60), spec.Basketball.Install},
		{basketball72, float64(spec.Basketball.Adjustable72), spec.Basketball.Install},
		{basketballFixed, float64(spec.Basketball.Fixed), spec.Basketball.Install},
		{windscreenStandard, spec.Windscreen.StandardFeet, spec.Windscreen.Install},
		{windscreenHighGrade, spec.Windscreen.HighGradeFeet, spec.Windscreen.Install},
	}

	result := model.EquipmentBreakdown{Lines: make([]model.EquipmentLine, 0, len(requests))}
	for _, req := range requests {
		equipmentLine := priceEquipment(req.category, req.quantity, req.install, rates)
		result.Lines = append(result.Lines, equipmentLine)
		result.EquipmentTotal += equipmentLine.Equipment
		result.InstallationTotal += equipmentLine.Installation
		result.InstallationHours += equipmentLine.InstallationHours
	}
	result.Total = result.EquipmentTotal + result.InstallationTotal
	return result
}

func priceEquipment(category equipmentCategory, quantity float64, install bool, rates RateTable) model.EquipmentLine {
	quantity = qty(quantity)
	equipment := line(category.label, category.rate, quantity, category.unit, rates.PriceByName(category.rate))
	result := model.EquipmentLine{
		Key:           category.key,
		Label:         category.label,
		Package:       category.pkg,
		Quantity:      quantity,
		Unit:          category.unit,
		UnitCost:      equipment.UnitCost,
		Equipment:     equipment.Subtotal,
		InstallNeeded: install,
		Items:         []model.LineItem{equipment},
	}

	if install && quantity > 0 {
		for _, part := range category.install {
			partLine := line(part.label, part.rate, quantity*part.perUnit, part.unit, rates.PriceByName(part.rate))
			result.Items = append(result.Items, partLine)
			result.InstallUnitCost += partLine.UnitCost * part.perUnit
			result.Installation += partLine.Subtotal
		}
		result.InstallationHours = quantity * category.installHours

		// Crew hours stay in the package so declining it removes them too.
		laborLine := line("Installation labor", RateLabor, result.InstallationHours, "hour", rates.PriceByName(RateLabor))
		result.Items = append(result.Items, laborLine)
		result.InstallUnitCost += laborLine.UnitCost * category.installHours
		result.Installation += laborLine.Subtotal
	}

	result.Subtotal = result.Equipment + result.Installation
	return result
}

// Packages groups the displayed equipment lines into independently accepted
// add-ons, in first-seen order.
func Packages(equipment model.EquipmentBreakdown) []model.EquipmentPackage {
	packages := []model.EquipmentPackage{}
	index := make(map[string]int)
	for _, equipmentLine := range equipment.Visible() {
		pos, ok := index[equipmentLine.Package]
		if !ok {
			packages = append(packages, model.EquipmentPackage{Name: equipmentLine.Package})
			pos = len(packages) - 1
			index[equipmentLine.Package] = pos
		}
		pkg := &packages[pos]
		pkg.Lines = append(pkg.Lines, equipmentLine)
		pkg.Equipment += equipmentLine.Equipment
		pkg.Installation += equipmentLine.Installation
		pkg.Subtotal += equipmentLine.Subtotal
	}
	return packages
}
