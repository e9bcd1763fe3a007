package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateExcel(t *testing.T) {
	result, err := GenerateExcel(sampleExportData(t))
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
	// XLSX files are zip archives starting with PK.
	if string(result[:2]) != "PK" {
		t.Errorf("result does not look like a zip archive, got %q", string(result[:2]))
	}
}

func TestGenerateExcel_Content(t *testing.T) {
	data := sampleExportData(t)

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != data.Name {
		t.Errorf("sheet name = %q, want %q", sheet, data.Name)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	joined := ""
	for _, cell := range flat {
		joined += cell + "\n"
	}

	for _, want := range []string{
		"Trip configuration request for Bianchi reunion",
		"Arrival and departure",
		"Welcome dinner",
		"Vineyard tour (Required van)",
		"Total cost",
	} {
		if !bytes.Contains([]byte(joined), []byte(want)) {
			t.Errorf("workbook missing %q", want)
		}
	}
}

func TestGenerateExcel_LongNameTruncated(t *testing.T) {
	draft := Draft{
		Name:           "An exceptionally long preventive name that overflows",
		CheckIn:        date(2024, time.June, 1),
		CheckOut:       date(2024, time.June, 2),
		NumberOfGuests: 2,
		DoubleRooms:    1,
	}

	data, err := BuildExportData(draft, nil, nil, DefaultRates(), date(2024, time.May, 20))
	if err != nil {
		t.Fatalf("BuildExportData() error = %v", err)
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); len(got) > 31 {
		t.Errorf("sheet name longer than 31 chars: %q", got)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"normal text", "normal text"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1234", "'+1234"},
		{"-offset", "'-offset"},
		{"@cmd", "'@cmd"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
