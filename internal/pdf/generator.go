package pdf

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/courtcraft/estimates/internal/model"
)

const fontFamily = "Helvetica"

var itemColumns = []float64{80, 25, 25, 25, 25}

type Generator struct {
	company string
}

func NewGenerator(company string) (*Generator, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, fmt.Errorf("company name is empty")
	}
	return &Generator{company: company}, nil
}

// Generate renders a customer-facing proposal for a saved estimate. The base
// project and the optional equipment packages are priced separately.
func (g *Generator) Generate(estimate model.Estimate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFillColor(230, 230, 230)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	result := estimate.Result

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(g.company), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, "Court Surfacing Proposal", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Client: %s", safeValue(estimate.ClientName))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Project: %s", safeValue(estimate.ProjectName))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s", formatDate(estimate.CreatedAt)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Area: %s sq ft", formatQuantity(result.ColorCoat.SquareFootage)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, "Surface preparation and materials")
	drawItems(pdf, tr, result.Materials.Items)
	totalLine(pdf, "Materials total", result.Materials.Total)

	section(pdf, "Color coating")
	colorHeaders := []string{"Color", "Area (sq ft)", "Drums", "Freight", "Subtotal"}
	drawTableRow(pdf, colorHeaders, itemColumns, true)
	for _, color := range result.ColorCoat.Colors {
		drawTableRow(pdf, []string{
			tr(color.Color),
			formatQuantity(color.Area),
			strconv.Itoa(color.Drums),
			formatMoney(color.Freight),
			formatMoney(color.Subtotal),
		}, itemColumns, false)
	}
	drawItems(pdf, tr, append(append([]model.LineItem{}, result.ColorCoat.Installation...), result.ColorCoat.LinePainting...))
	totalLine(pdf, "Color coat total", result.ColorCoat.Total)

	section(pdf, "Labor and travel")
	drawItems(pdf, tr, result.Labor.Items)
	totalLine(pdf, "Labor total", result.Labor.Total)

	pdf.Ln(2)
	pdf.SetFont(fontFamily, "", 11)
	totalLine(pdf, "Base total", result.BaseTotal)
	totalLine(pdf, fmt.Sprintf("Tax (%s)", formatPercent(result.TaxRate)), result.Tax)
	totalLine(pdf, fmt.Sprintf("Margin (%s)", formatPercent(result.MarginRate)), result.Margin)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Project total: %s", formatMoney(result.Total)), "T", 1, "R", false, 0, "")

	if len(result.Packages) > 0 {
		section(pdf, "Optional equipment packages")
		pdf.SetFont(fontFamily, "", 9)
		pdf.MultiCell(0, 5, "Each package may be accepted independently and is not included in the project total.", "", "L", false)
		for _, pkg := range result.Packages {
			pdf.SetFont(fontFamily, "B", 10)
			pdf.CellFormat(0, 7, tr(pkg.Name), "", 1, "L", false, 0, "")
			drawTableRow(pdf, []string{"Item", "Quantity", "Equipment", "Install", "Subtotal"}, itemColumns, true)
			for _, equipmentLine := range pkg.Lines {
				drawTableRow(pdf, []string{
					tr(equipmentLine.Label),
					formatQuantity(equipmentLine.Quantity) + " " + equipmentLine.Unit,
					formatMoney(equipmentLine.Equipment),
					formatMoney(equipmentLine.Installation),
					formatMoney(equipmentLine.Subtotal),
				}, itemColumns, false)
			}
			totalLine(pdf, tr(pkg.Name)+" package", pkg.Subtotal)
		}
	}

	if result.Degraded || result.ColorCoat.OverAllocatedArea > 0 {
		pdf.Ln(3)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetFont(fontFamily, "", 9)
		if result.Degraded {
			pdf.MultiCell(0, 5, "Some rates were unavailable and priced at zero: "+strings.Join(result.MissingRates, ", "), "", "L", false)
		}
		if over := result.ColorCoat.OverAllocatedArea; over > 0 {
			pdf.MultiCell(0, 5, fmt.Sprintf("Court layouts exceed the stated area by %s sq ft.", formatQuantity(over)), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
	}

	if notes := strings.TrimSpace(result.Labor.Notes); notes != "" {
		section(pdf, "Notes")
		pdf.SetFont(fontFamily, "", 10)
		pdf.MultiCell(0, 5, tr(notes), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont(fontFamily, "", 11)
	signatureBlock(pdf, "Accepted by")
	signatureBlock(pdf, "Date")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func drawItems(pdf *gofpdf.Fpdf, tr func(string) string, items []model.LineItem) {
	visible := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			visible = append(visible, item)
		}
	}
	if len(visible) == 0 {
		return
	}
	drawTableRow(pdf, []string{"Item", "Quantity", "Unit", "Unit cost", "Subtotal"}, itemColumns, true)
	for _, item := range visible {
		drawTableRow(pdf, []string{
			tr(item.Label),
			formatQuantity(item.Quantity),
			tr(item.Unit),
			formatMoney(item.UnitCost),
			formatMoney(item.Subtotal),
		}, itemColumns, false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 6, col, "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}

func totalLine(pdf *gofpdf.Fpdf, label string, value float64) {
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", label, formatMoney(value)), "", 1, "R", false, 0, "")
}

func signatureBlock(pdf *gofpdf.Fpdf, label string) {
	pdf.CellFormat(0, 8, fmt.Sprintf("%s: ______________________________", label), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// formatMoney renders dollars with thousands separators, e.g. $12,345.60.
func formatMoney(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	raw := strconv.FormatFloat(value, 'f', 2, 64)
	whole, frac, _ := strings.Cut(raw, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return sign + "$" + grouped.String() + "." + frac
}

func formatQuantity(value float64) string {
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
}

func formatPercent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*10000)/100, 'f', -1, 64) + "%"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}
