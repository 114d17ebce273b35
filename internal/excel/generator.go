package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/courtcraft/estimates/internal/model"
)

const (
	SheetSummary   = "Summary"
	SheetMaterials = "Materials"
	SheetColorCoat = "Color Coat"
	SheetEquipment = "Equipment"
	SheetLabor     = "Labor"
)

var lineItemHeaders = []string{"Item", "Rate", "Quantity", "Unit", "Unit cost", "Subtotal"}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a saved estimate as a workbook with one sheet per section.
func (g *Generator) Generate(estimate model.Estimate) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, sheet := range []string{SheetMaterials, SheetColorCoat, SheetEquipment, SheetLabor} {
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := file.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	w := &writer{file: file, header: headerStyle, money: moneyStyle}
	w.writeSummary(estimate)
	w.writeMaterials(estimate.Result.Materials)
	w.writeColorCoat(estimate.Result.ColorCoat)
	w.writeEquipment(estimate.Result.Equipment, estimate.Result.Packages)
	w.writeLabor(estimate.Result.Labor)
	if w.err != nil {
		return nil, w.err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type writer struct {
	file   *excelize.File
	header int
	money  int
	err    error
}

func (w *writer) set(sheet string, col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.file.SetCellValue(sheet, cell, value)
}

func (w *writer) headerRow(sheet string, row int, headers []string) {
	for i, header := range headers {
		w.set(sheet, i+1, row, header)
	}
	if w.err != nil {
		return
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(headers), row)
	w.err = w.file.SetCellStyle(sheet, start, end, w.header)
}

func (w *writer) moneyColumns(sheet, from, to string, lastRow int) {
	if w.err != nil || lastRow < 2 {
		return
	}
	w.err = w.file.SetCellStyle(sheet, fmt.Sprintf("%s2", from), fmt.Sprintf("%s%d", to, lastRow), w.money)
}

func (w *writer) lineItems(sheet string, row int, items []model.LineItem) int {
	for _, item := range items {
		w.set(sheet, 1, row, item.Label)
		w.set(sheet, 2, row, item.RateRef)
		w.set(sheet, 3, row, item.Quantity)
		w.set(sheet, 4, row, item.Unit)
		w.set(sheet, 5, row, item.UnitCost)
		w.set(sheet, 6, row, item.Subtotal)
		row++
	}
	return row
}

func (w *writer) writeSummary(estimate model.Estimate) {
	sheet := SheetSummary
	result := estimate.Result

	rows := []struct {
		label string
		value interface{}
	}{
		{"Client", estimate.ClientName},
		{"Project", estimate.ProjectName},
		{"Estimate", estimate.ID.String()},
		{"Date", formatDate(estimate.CreatedAt)},
		{"Square footage", result.ColorCoat.SquareFootage},
		{"", nil},
		{"Surface materials", result.Materials.Total},
		{"Color coat", result.ColorCoat.Total},
		{"Labor and travel", result.Labor.Total},
		{"Base total", result.BaseTotal},
		{fmt.Sprintf("Tax (%s)", formatPercent(result.TaxRate)), result.Tax},
		{fmt.Sprintf("Margin (%s)", formatPercent(result.MarginRate)), result.Margin},
		{"Grand total", result.Total},
		{"", nil},
		{"Optional equipment packages", result.PackagesTotal},
	}
	for i, r := range rows {
		if r.label == "" {
			continue
		}
		w.set(sheet, 1, i+1, r.label)
		w.set(sheet, 2, i+1, r.value)
	}
	w.moneyColumns(sheet, "B", "B", len(rows))

	row := len(rows) + 2
	if result.Degraded {
		w.set(sheet, 1, row, "Missing rates")
		w.set(sheet, 2, row, strings.Join(result.MissingRates, ", "))
		row++
	}
	if result.ColorCoat.OverAllocatedArea > 0 {
		w.set(sheet, 1, row, "Over-allocated area (sq ft)")
		w.set(sheet, 2, row, result.ColorCoat.OverAllocatedArea)
	}

	if w.err == nil {
		w.err = w.file.SetColWidth(sheet, "A", "A", 32)
	}
	if w.err == nil {
		w.err = w.file.SetColWidth(sheet, "B", "B", 40)
	}
}

func (w *writer) writeMaterials(materials model.MaterialsBreakdown) {
	sheet := SheetMaterials
	w.headerRow(sheet, 1, lineItemHeaders)
	row := w.lineItems(sheet, 2, materials.Items)
	w.set(sheet, 1, row, "Total")
	w.set(sheet, 6, row, materials.Total)
	w.moneyColumns(sheet, "E", "F", row)
	w.widths(sheet, 34, 18, 12, 12, 14, 14)
}

func (w *writer) writeColorCoat(colorCoat model.ColorCoatBreakdown) {
	sheet := SheetColorCoat
	w.headerRow(sheet, 1, []string{"Color", "Area (sq ft)", "Gallons", "Drums", "Drum price", "Materials", "Freight", "Subtotal"})
	row := 2
	for _, color := range colorCoat.Colors {
		w.set(sheet, 1, row, color.Color)
		w.set(sheet, 2, row, color.Area)
		w.set(sheet, 3, row, color.Gallons)
		w.set(sheet, 4, row, color.Drums)
		w.set(sheet, 5, row, color.DrumPrice)
		w.set(sheet, 6, row, color.MaterialCost)
		w.set(sheet, 7, row, color.Freight)
		w.set(sheet, 8, row, color.Subtotal)
		row++
	}
	w.set(sheet, 1, row, "Remaining (apron)")
	w.set(sheet, 2, row, colorCoat.RemainingArea)
	row += 2

	w.headerRow(sheet, row, lineItemHeaders)
	row = w.lineItems(sheet, row+1, colorCoat.Installation)
	row = w.lineItems(sheet, row, colorCoat.LinePainting)
	w.set(sheet, 1, row, "Total")
	w.set(sheet, 6, row, colorCoat.Total)
	w.widths(sheet, 34, 18, 12, 12, 14, 14, 12, 14)
}

func (w *writer) writeEquipment(equipment model.EquipmentBreakdown, packages []model.EquipmentPackage) {
	sheet := SheetEquipment
	w.headerRow(sheet, 1, []string{"Package", "Item", "Quantity", "Unit", "Unit cost", "Equipment", "Installation", "Subtotal"})
	row := 2
	for _, pkg := range packages {
		for _, equipmentLine := range pkg.Lines {
			w.set(sheet, 1, row, pkg.Name)
			w.set(sheet, 2, row, equipmentLine.Label)
			w.set(sheet, 3, row, equipmentLine.Quantity)
			w.set(sheet, 4, row, equipmentLine.Unit)
			w.set(sheet, 5, row, equipmentLine.UnitCost)
			w.set(sheet, 6, row, equipmentLine.Equipment)
			w.set(sheet, 7, row, equipmentLine.Installation)
			w.set(sheet, 8, row, equipmentLine.Subtotal)
			row++
		}
		w.set(sheet, 1, row, pkg.Name+" total")
		w.set(sheet, 8, row, pkg.Subtotal)
		row++
	}
	w.set(sheet, 1, row, "Installation hours")
	w.set(sheet, 3, row, equipment.InstallationHours)
	w.widths(sheet, 20, 34, 12, 12, 14, 14, 14, 14)
}

func (w *writer) writeLabor(labor model.LaborBreakdown) {
	sheet := SheetLabor
	w.headerRow(sheet, 1, lineItemHeaders)
	row := w.lineItems(sheet, 2, labor.Items)
	w.set(sheet, 1, row, "Total")
	w.set(sheet, 6, row, labor.Total)
	row += 2
	w.set(sheet, 1, row, "Travel days")
	w.set(sheet, 2, row, labor.TravelDays)
	w.set(sheet, 1, row+1, "Trips")
	w.set(sheet, 2, row+1, labor.Trips)
	w.set(sheet, 1, row+2, "Crew size")
	w.set(sheet, 2, row+2, labor.CrewSize)
	if labor.Notes != "" {
		w.set(sheet, 1, row+3, "Notes")
		w.set(sheet, 2, row+3, labor.Notes)
	}
	w.widths(sheet, 34, 18, 12, 12, 14, 14)
}

func (w *writer) widths(sheet string, widths ...float64) {
	for i, width := range widths {
		if w.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.file.SetColWidth(sheet, col, col, width)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatPercent(rate float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", rate*100), "0"), ".") + "%"
}
