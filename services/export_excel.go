package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates a one-sheet workbook mirroring the PDF document
// and returns the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := data.Name
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Preventive"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 48); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true, Size: 13},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	rowNum := 1

	setLabel := func(label string, style int) {
		ref := fmt.Sprintf("A%d", rowNum)
		f.SetCellValue(sheetName, ref, sanitizeExcelCell(label))
		if style != 0 {
			f.SetCellStyle(sheetName, ref, ref, style)
		}
	}
	setPair := func(label, value string) {
		setLabel(label, 0)
		ref := fmt.Sprintf("B%d", rowNum)
		f.SetCellValue(sheetName, ref, sanitizeExcelCell(value))
		f.SetCellStyle(sheetName, ref, ref, valueStyle)
		rowNum++
	}
	setSection := func(title string) {
		rowNum++
		setLabel(title, sectionStyle)
		rowNum++
	}

	// ── Header ──────────────────────────────────────────────────────────

	setLabel(fmt.Sprintf("Trip configuration request for %s", data.Name), titleStyle)
	rowNum++
	setPair("Created", data.CreatedDate)

	// ── Arrival and departure ───────────────────────────────────────────

	setSection("Arrival and departure")
	setPair("Number of guests", fmt.Sprintf("%d (+ %d free)", data.NumberOfGuests, data.FreeQuote))
	setPair("Check in", data.CheckIn)
	setPair("Check out", data.CheckOut)
	setPair("Number of nights", fmt.Sprintf("%d", data.Nights))
	setPair("Total cost for bases", FormatEUR(data.Breakdown.BasesCost))

	// ── Rooms ───────────────────────────────────────────────────────────

	setSection("Rooms")
	setPair("Double rooms", fmt.Sprintf("%d", data.DoubleRooms))
	setPair("Single rooms", fmt.Sprintf("%d", data.SingleRooms))

	// ── Meals ───────────────────────────────────────────────────────────

	setSection("Meals")
	if len(data.Days) == 0 {
		setLabel("Check-in and check-out dates are the same, so meal selection is disabled", 0)
		rowNum++
	} else {
		for i, day := range data.Days {
			setLabel(fmt.Sprintf("Day %d (%s)", i+1, day.Date), 0)
			rowNum++
			setPair("Lunch: "+day.LunchName, FormatEUR(day.LunchCost))
			setPair("Dinner: "+day.DinnerName, FormatEUR(day.DinnerCost))
		}
		setPair("Total cost for meals per number of guests", FormatEUR(data.Breakdown.MealsCost))
	}

	// ── Services ────────────────────────────────────────────────────────

	setSection("Services")
	if len(data.Services) == 0 {
		setLabel("No services were selected", 0)
		rowNum++
	} else {
		for _, svc := range data.Services {
			name := svc.Name
			if svc.RequiredVan {
				name += " (Required van)"
			}
			setPair(name, FormatEUR(svc.Cost))
		}
		setPair("Total cost for services", FormatEUR(data.Breakdown.ServicesCost))
	}

	// ── Description and vans ────────────────────────────────────────────

	if data.Description != "" {
		setSection("Description")
		setLabel(data.Description, 0)
		rowNum++
	}
	if data.ShowVans {
		setSection("Number of vans")
		setLabel(fmt.Sprintf("%d", data.NumberOfVans), 0)
		rowNum++
	}

	// ── Totals ──────────────────────────────────────────────────────────

	setSection("Total cost")
	setPair("Total", FormatEUR(data.Breakdown.TotalCost))
	setPair(fmt.Sprintf("Total with tax (+%.0f%%)", data.Rates.TaxPercent), FormatEUR(data.Breakdown.TotalWithTax))

	ref := fmt.Sprintf("A%d", rowNum)
	f.SetCellValue(sheetName, ref, fmt.Sprintf("Total pay for guests (%d)", data.PayingGuests))
	bRef := fmt.Sprintf("B%d", rowNum)
	f.SetCellValue(sheetName, bRef, FormatEUR(data.Breakdown.PerGuestCost))
	f.SetCellStyle(sheetName, bRef, bRef, totalStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
