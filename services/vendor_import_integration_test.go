package services_test

import (
	"testing"

	"eventplanner/services"
	"eventplanner/testhelpers"
)

func validRows() []map[string]string {
	return []map[string]string{
		{
			"name": "Royal Banquets", "city": "Mumbai",
			"event_types": "Wedding, Birthday",
			"rating":      "4.5", "min_budget": "50000", "max_budget": "200000",
			"contact": "9876543210",
		},
		{
			"name": "City Caterers", "city": "Delhi",
			"event_types": "Wedding, Conference",
			"rating":      "4.2", "min_budget": "30000", "max_budget": "120000",
			"contact": "bookings@citycaterers.in",
		},
	}
}

func TestCommitVendorImport_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	result, err := services.CommitVendorImport(app, validRows())
	if err != nil {
		t.Fatalf("CommitVendorImport() error: %v", err)
	}
	if result.Inserted != 2 {
		t.Errorf("Inserted = %d, want 2", result.Inserted)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %+v", result.Errors)
	}

	col, _ := app.FindCollectionByNameOrId("vendors")
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query vendors: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	vendors := services.VendorsFromRecords(records)
	for _, v := range vendors {
		if v.Name == "Royal Banquets" {
			if v.Rating != 4.5 || v.MinBudget != 50000 || v.MaxBudget != 200000 {
				t.Errorf("typed fields wrong: %+v", v)
			}
			if len(v.EventTypes) != 2 {
				t.Errorf("EventTypes = %v", v.EventTypes)
			}
		}
	}
}

func TestCommitVendorImport_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	result, err := services.CommitVendorImport(app, nil)
	if err != nil {
		t.Fatalf("CommitVendorImport() error: %v", err)
	}
	if result.Inserted != 0 {
		t.Errorf("Inserted = %d, want 0", result.Inserted)
	}
}

func TestCommitVendorImport_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rows := validRows()
	rows[0]["rating"] = "11" // out of range

	result, err := services.CommitVendorImport(app, rows)
	if err != nil {
		t.Fatalf("CommitVendorImport() error: %v", err)
	}
	if result.Inserted != 0 {
		t.Errorf("Inserted = %d, want 0 when any row is invalid", result.Inserted)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected validation errors")
	}

	// Nothing was written.
	col, _ := app.FindCollectionByNameOrId("vendors")
	records, _ := app.FindAllRecords(col)
	if len(records) != 0 {
		t.Errorf("expected no records after failed commit, got %d", len(records))
	}
}
