package pricing

import (
	"testing"

	"github.com/courtcraft/estimates/internal/model"
)

func TestRateTable_PriceByName(t *testing.T) {
	table := NewRateTable([]model.Rate{
		{ID: 1, Name: "Acid Wash", Value: 0.10},
		{ID: 2, Name: "Sand", Value: 12},
		{ID: 3, Name: "sand", Value: 99},
	})

	tests := []struct {
		name   string
		lookup string
		expect float64
	}{
		{"exact match", "Acid Wash", 0.10},
		{"case insensitive", "ACID WASH", 0.10},
		{"surrounding spaces", "  acid wash ", 0.10},
		{"first duplicate wins", "SAND", 12},
		{"missing name", "nonexistent-material", 0},
		{"empty name", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.PriceByName(tt.lookup); got != tt.expect {
				t.Errorf("PriceByName(%q) = %v, want %v", tt.lookup, got, tt.expect)
			}
		})
	}
}

func TestRateTable_PriceByID(t *testing.T) {
	table := NewRateTable([]model.Rate{{ID: RateIDDarkBlue, Name: "Color Coat Dark Blue", Value: 600}})

	if got := table.PriceByID(RateIDDarkBlue); got != 600 {
		t.Errorf("PriceByID(%d) = %v, want 600", RateIDDarkBlue, got)
	}
	if got := table.PriceByID(999); got != 0 {
		t.Errorf("PriceByID(999) = %v, want 0", got)
	}
}

func TestRateTable_ZeroValue(t *testing.T) {
	var table RateTable
	if got := table.PriceByName(RateLabor); got != 0 {
		t.Errorf("PriceByName on empty table = %v, want 0", got)
	}
	if got := table.PriceByID(RateIDGray); got != 0 {
		t.Errorf("PriceByID on empty table = %v, want 0", got)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestDefaultRates_UniqueIDsAndNames(t *testing.T) {
	ids := map[int]bool{}
	names := map[string]bool{}
	for _, rate := range DefaultRates() {
		if ids[rate.ID] {
			t.Errorf("duplicate rate id %d", rate.ID)
		}
		if names[nameKey(rate.Name)] {
			t.Errorf("duplicate rate name %q", rate.Name)
		}
		ids[rate.ID] = true
		names[nameKey(rate.Name)] = true
		if rate.Value <= 0 {
			t.Errorf("rate %q has non-positive value %v", rate.Name, rate.Value)
		}
	}
	for color, id := range colorMaterialIDs {
		if !ids[id] {
			t.Errorf("color %q maps to unseeded rate id %d", color, id)
		}
	}
}

func TestColorMaterialID(t *testing.T) {
	tests := []struct {
		color  string
		expect int
	}{
		{"dark-blue", RateIDDarkBlue},
		{"Dark-Blue", RateIDDarkBlue},
		{"gray", RateIDGray},
		{"chartreuse", RateIDGray},
		{"", RateIDGray},
	}
	for _, tt := range tests {
		if got := ColorMaterialID(tt.color); got != tt.expect {
			t.Errorf("ColorMaterialID(%q) = %d, want %d", tt.color, got, tt.expect)
		}
	}
}
