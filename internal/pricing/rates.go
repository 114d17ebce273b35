// Package pricing turns project inputs and a rate table into cost breakdowns.
// Every calculator is a pure function: missing rates and missing quantities
// price as zero instead of failing.
package pricing

import (
	"strconv"
	"strings"

	"github.com/courtcraft/estimates/internal/model"
)

// RateTable is an immutable price lookup by rate name or rate id. The zero
// value is an empty table.
type RateTable struct {
	byName map[string]float64
	byID   map[int]float64
}

func NewRateTable(rates []model.Rate) RateTable {
	table := RateTable{
		byName: make(map[string]float64, len(rates)),
		byID:   make(map[int]float64, len(rates)),
	}
	for _, rate := range rates {
		key := nameKey(rate.Name)
		if _, exists := table.byName[key]; key != "" && !exists {
			table.byName[key] = rate.Value
		}
		if _, exists := table.byID[rate.ID]; !exists {
			table.byID[rate.ID] = rate.Value
		}
	}
	return table
}

// PriceByName matches names case-insensitively and returns 0 when absent.
func (t RateTable) PriceByName(name string) float64 {
	return t.byName[nameKey(name)]
}

// PriceByID returns 0 when absent.
func (t RateTable) PriceByID(id int) float64 {
	return t.byID[id]
}

func (t RateTable) Len() int {
	return len(t.byID)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func idRef(id int) string {
	return strconv.Itoa(id)
}
