package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateVendorExcel(t *testing.T) {
	result, err := GenerateVendorExcel(sampleVendors())
	if err != nil {
		t.Fatalf("GenerateVendorExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateVendorExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Vendors" {
		t.Errorf("expected sheet name 'Vendors', got %v", sheets)
	}

	firstName, _ := f.GetCellValue("Vendors", "A5")
	if firstName != "Royal Banquets" {
		t.Errorf("expected first vendor 'Royal Banquets', got %q", firstName)
	}

	eventTypes, _ := f.GetCellValue("Vendors", "C5")
	if eventTypes != "Wedding, Birthday" {
		t.Errorf("expected joined event types, got %q", eventTypes)
	}
}

func TestGenerateVendorExcel_Empty(t *testing.T) {
	result, err := GenerateVendorExcel(nil)
	if err != nil {
		t.Fatalf("GenerateVendorExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateVendorExcel() returned empty bytes")
	}
}

func TestGenerateVendorTemplate(t *testing.T) {
	result, err := GenerateVendorTemplate()
	if err != nil {
		t.Fatalf("GenerateVendorTemplate() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	// Required headers carry a " *" marker.
	header, _ := f.GetCellValue("Vendors", "A1")
	if header != "Name *" {
		t.Errorf("expected 'Name *' header, got %q", header)
	}
	contact, _ := f.GetCellValue("Vendors", "G1")
	if contact != "Contact" {
		t.Errorf("expected optional 'Contact' header, got %q", contact)
	}
}

func TestGenerateVendorTemplate_RoundTripsThroughParser(t *testing.T) {
	// A template with a data row filled in must be importable as-is.
	tmpl, err := GenerateVendorTemplate()
	if err != nil {
		t.Fatalf("GenerateVendorTemplate() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(tmpl))
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	f.SetCellValue("Vendors", "A2", "Royal Banquets")
	f.SetCellValue("Vendors", "B2", "Mumbai")
	f.SetCellValue("Vendors", "C2", "Wedding")
	f.SetCellValue("Vendors", "D2", "4.5")
	f.SetCellValue("Vendors", "E2", "50000")
	f.SetCellValue("Vendors", "F2", "200000")
	f.SetCellValue("Vendors", "G2", "9876543210")

	buf, err := f.WriteToBuffer()
	f.Close()
	if err != nil {
		t.Fatalf("write filled template: %v", err)
	}

	result, err := ParseVendorFile(buf, "vendors.xlsx")
	if err != nil {
		t.Fatalf("ParseVendorFile() error = %v", err)
	}
	if result.ErrorRows != 0 {
		t.Errorf("expected clean import, got errors: %+v", result.Errors)
	}
	if result.ParsedRows[0]["name"] != "Royal Banquets" {
		t.Errorf("unexpected parsed row: %v", result.ParsedRows[0])
	}
}
