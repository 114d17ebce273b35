package pricing

import (
	"math"
	"testing"

	"github.com/courtcraft/estimates/internal/model"
)

func approx(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.001 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func rateTable(byName map[string]float64, byID map[int]float64) RateTable {
	rates := make([]model.Rate, 0, len(byName)+len(byID))
	nextID := 1000
	for name, value := range byName {
		rates = append(rates, model.Rate{ID: nextID, Name: name, Value: value})
		nextID++
	}
	for id, value := range byID {
		rates = append(rates, model.Rate{ID: id, Value: value})
	}
	return NewRateTable(rates)
}

func findItem(items []model.LineItem, label string) (model.LineItem, bool) {
	for _, item := range items {
		if item.Label == label {
			return item, true
		}
	}
	return model.LineItem{}, false
}
