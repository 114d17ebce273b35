package pricing

import (
	"testing"

	"github.com/courtcraft/estimates/internal/model"
)

func findLine(lines []model.EquipmentLine, key string) (model.EquipmentLine, bool) {
	for _, line := range lines {
		if line.Key == key {
			return line, true
		}
	}
	return model.EquipmentLine{}, false
}

func TestEquipment_Categories(t *testing.T) {
	spec := model.EquipmentSpec{
		Tennis:     model.TennisEquipment{Posts: 2, Install: true},
		Basketball: model.BasketballEquipment{Adjustable72: 1},
		Windscreen: model.WindscreenEquipment{StandardFeet: 120, Install: true},
	}

	got := Equipment(spec, NewRateTable(DefaultRates()))

	tests := []struct {
		key          string
		equipment    float64
		installation float64
		hours        float64
	}{
		{"tennis_posts", 1900, 4*85 + 4*25 + 8*65, 8},
		{"basketball_adjustable_72", 3900, 0, 0},
		{"windscreen_standard", 540, 180 + 6*65, 6},
		{"pickleball_permanent_posts", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			line, ok := findLine(got.Lines, tt.key)
			if !ok {
				t.Fatalf("line %q missing", tt.key)
			}
			approx(t, "Equipment", line.Equipment, tt.equipment)
			approx(t, "Installation", line.Installation, tt.installation)
			approx(t, "InstallationHours", line.InstallationHours, tt.hours)
		})
	}

	if len(got.Lines) != 8 {
		t.Errorf("expected all 8 categories computed, got %d", len(got.Lines))
	}
	if len(got.Visible()) != 3 {
		t.Errorf("expected 3 visible categories, got %d", len(got.Visible()))
	}
	approx(t, "InstallationHours", got.InstallationHours, 14)
	approx(t, "Total", got.Total, 1900+440+8*65+3900+540+180+6*65)
}

func TestEquipment_InstallFlagIsPerCategory(t *testing.T) {
	spec := model.EquipmentSpec{
		Pickleball: model.PickleballEquipment{PermanentPosts: 1, MobileNets: 2, Install: false},
		Basketball: model.BasketballEquipment{Fixed: 1, Install: true},
	}
	got := Equipment(spec, NewRateTable(DefaultRates()))

	nets, _ := findLine(got.Lines, "pickleball_mobile_nets")
	if nets.Installation != 0 || nets.InstallNeeded {
		t.Errorf("pickleball nets installed without flag: %+v", nets)
	}
	fixed, _ := findLine(got.Lines, "basketball_fixed")
	approx(t, "fixed installation", fixed.Installation, 450+600+6*65)
	approx(t, "fixed install unit cost", fixed.InstallUnitCost, 1050+6*65)
}

func TestPackages(t *testing.T) {
	spec := model.EquipmentSpec{
		Tennis:     model.TennisEquipment{Posts: 1},
		Pickleball: model.PickleballEquipment{PermanentPosts: 1, MobileNets: 1},
	}
	packages := Packages(Equipment(spec, NewRateTable(DefaultRates())))

	if len(packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(packages))
	}
	if packages[0].Name != PackageTennis || packages[1].Name != PackagePickleball {
		t.Errorf("package order = %s, %s", packages[0].Name, packages[1].Name)
	}
	if len(packages[1].Lines) != 2 {
		t.Errorf("pickleball package lines = %d, want 2", len(packages[1].Lines))
	}
	approx(t, "pickleball subtotal", packages[1].Subtotal, 650+450)
}

func TestEquipment_Empty(t *testing.T) {
	got := Equipment(model.EquipmentSpec{}, NewRateTable(DefaultRates()))
	if got.Total != 0 || len(got.Visible()) != 0 {
		t.Errorf("empty spec produced total %v with %d visible lines", got.Total, len(got.Visible()))
	}
	if packages := Packages(got); len(packages) != 0 {
		t.Errorf("expected no packages, got %d", len(packages))
	}
}
