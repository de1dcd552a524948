package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const validVendorCSV = "name,city,event_types,rating,min_budget,max_budget,contact\n" +
	"Royal Banquets,Mumbai,\"Wedding, Birthday\",4.5,50000,200000,9876543210\n" +
	"City Caterers,Delhi,\"Wedding, Conference\",4.2,30000,120000,bookings@citycaterers.in\n"

func TestParseVendorFile_ValidCSV(t *testing.T) {
	result, err := ParseVendorFile(strings.NewReader(validVendorCSV), "vendor_data.csv")
	if err != nil {
		t.Fatalf("ParseVendorFile() error = %v", err)
	}

	if result.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", result.TotalRows)
	}
	if result.ErrorRows != 0 {
		t.Errorf("ErrorRows = %d, want 0; errors: %+v", result.ErrorRows, result.Errors)
	}
	if result.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.ValidRows)
	}

	first := result.ParsedRows[0]
	if first["name"] != "Royal Banquets" || first["city"] != "Mumbai" {
		t.Errorf("unexpected first row: %v", first)
	}
}

func TestParseVendorFile_TemplateLabels(t *testing.T) {
	// Headers in template label form (with required markers) map the same way.
	input := "Name *,City *,Event Types *,Rating *,Min Budget *,Max Budget *,Contact\n" +
		"Party Hub,Mumbai,Birthday,3.9,10000,60000,9765432109\n"

	result, err := ParseVendorFile(strings.NewReader(input), "upload.csv")
	if err != nil {
		t.Fatalf("ParseVendorFile() error = %v", err)
	}
	if result.ErrorRows != 0 {
		t.Errorf("expected no error rows, got %+v", result.Errors)
	}
	if result.ParsedRows[0]["min_budget"] != "10000" {
		t.Errorf("min_budget = %q, want \"10000\"", result.ParsedRows[0]["min_budget"])
	}
}

func TestParseVendorFile_MissingRequiredColumns(t *testing.T) {
	input := "name,city\nRoyal Banquets,Mumbai\n"

	_, err := ParseVendorFile(strings.NewReader(input), "vendor_data.csv")
	if err == nil {
		t.Fatal("expected error for missing columns")
	}

	var malformed *MalformedDatasetError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDatasetError, got %T: %v", err, err)
	}
	if !strings.Contains(malformed.Reason, "Rating") {
		t.Errorf("error should name the missing columns, got %q", malformed.Reason)
	}
}

func TestParseVendorFile_HeaderOnly(t *testing.T) {
	input := "name,city,event_types,rating,min_budget,max_budget,contact\n"

	_, err := ParseVendorFile(strings.NewReader(input), "vendor_data.csv")
	var malformed *MalformedDatasetError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDatasetError, got %T: %v", err, err)
	}
}

func TestParseVendorFile_UnsupportedFormat(t *testing.T) {
	_, err := ParseVendorFile(strings.NewReader("whatever"), "vendors.pdf")
	if err == nil || !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseVendorFile_RowErrors(t *testing.T) {
	input := "name,city,event_types,rating,min_budget,max_budget,contact\n" +
		",Mumbai,Wedding,4.5,50000,200000,9876543210\n" + // missing name
		"Beta,Delhi,Wedding,9.9,30000,120000,9812345678\n" + // rating out of range
		"Gamma,Pune,Wedding,4.0,120000,30000,9812345678\n" + // min > max
		"Delta,Pune,Wedding,4.0,30000,120000,12345\n" + // bad contact
		"Epsilon,Goa,Wedding,4.1,30000,120000,9876501234\n" // clean

	result, err := ParseVendorFile(strings.NewReader(input), "vendor_data.csv")
	if err != nil {
		t.Fatalf("ParseVendorFile() error = %v", err)
	}

	if result.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", result.TotalRows)
	}
	if result.ErrorRows != 4 {
		t.Errorf("ErrorRows = %d, want 4; errors: %+v", result.ErrorRows, result.Errors)
	}
	if result.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", result.ValidRows)
	}

	fieldsWithErrors := make(map[string]bool)
	for _, e := range result.Errors {
		fieldsWithErrors[e.Field] = true
	}
	for _, field := range []string{"Name", "Rating", "Min Budget", "Contact"} {
		if !fieldsWithErrors[field] {
			t.Errorf("expected a validation error on field %q", field)
		}
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		contact string
		valid   bool
	}{
		{"", true},
		{"9876543210", true},
		{"bookings@citycaterers.in", true},
		{"12345", false},
		{"1234567890", false}, // mobile numbers start with 6-9
		{"not-an-email@", false},
	}

	for _, tt := range tests {
		if got := ValidateContact(tt.contact); got != tt.valid {
			t.Errorf("ValidateContact(%q) = %v, want %v", tt.contact, got, tt.valid)
		}
	}
}

func TestSplitEventTypes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Wedding, Birthday", []string{"Wedding", "Birthday"}},
		{"Conference", []string{"Conference"}},
		{"", nil},
		{" Wedding , , Birthday ", []string{"Wedding", "Birthday"}},
	}

	for _, tt := range tests {
		if got := SplitEventTypes(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitEventTypes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVendorFromRow(t *testing.T) {
	row := map[string]string{
		"name":        "Royal Banquets",
		"city":        "Mumbai",
		"event_types": "Wedding, Birthday",
		"rating":      "4.5",
		"min_budget":  "50000",
		"max_budget":  "200000",
		"contact":     "9876543210",
	}

	v := VendorFromRow(row)
	if v.Name != "Royal Banquets" || v.City != "Mumbai" {
		t.Errorf("unexpected vendor: %+v", v)
	}
	if v.Rating != 4.5 || v.MinBudget != 50000 || v.MaxBudget != 200000 {
		t.Errorf("numeric fields wrong: %+v", v)
	}
	if !reflect.DeepEqual(v.EventTypes, []string{"Wedding", "Birthday"}) {
		t.Errorf("EventTypes = %v", v.EventTypes)
	}
}

func TestMapVendorHeaders(t *testing.T) {
	fields := VendorTemplateFields()

	t.Run("key form", func(t *testing.T) {
		mapped := mapVendorHeaders([]string{"name", "event_types", "min_budget"}, fields)
		want := []string{"name", "event_types", "min_budget"}
		if !reflect.DeepEqual(mapped, want) {
			t.Errorf("mapped = %v, want %v", mapped, want)
		}
	})

	t.Run("label form case-insensitive", func(t *testing.T) {
		mapped := mapVendorHeaders([]string{"NAME", "Event Types", "min budget *"}, fields)
		want := []string{"name", "event_types", "min_budget"}
		if !reflect.DeepEqual(mapped, want) {
			t.Errorf("mapped = %v, want %v", mapped, want)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		mapped := mapVendorHeaders([]string{"name", "website"}, fields)
		if mapped[1] != "" {
			t.Errorf("unknown column should map to empty key, got %q", mapped[1])
		}
	})
}

func TestGenerateErrorReport(t *testing.T) {
	errs := []ValidationError{
		{Row: 2, Field: "Rating", Message: "Rating must be a number between 0 and 5"},
		{Row: 3, Field: "Contact", Message: "Contact must be a 10-digit mobile number or an email address"},
	}

	out, err := GenerateErrorReport(errs)
	if err != nil {
		t.Fatalf("GenerateErrorReport() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GenerateErrorReport() returned empty bytes")
	}
}
