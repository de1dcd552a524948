package collections_test

import (
	"os"
	"path/filepath"
	"testing"

	"eventplanner/collections"
	"eventplanner/testhelpers"
)

const seedCSV = "name,city,event_types,rating,min_budget,max_budget,contact\n" +
	"Royal Banquets,Mumbai,\"Wedding, Birthday\",4.5,50000,200000,9876543210\n" +
	"City Caterers,Delhi,\"Wedding, Conference\",4.2,30000,120000,9812345678\n"

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendor_data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedFromFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	path := writeSeedFile(t, seedCSV)

	inserted, err := collections.SeedFromFile(app, path)
	if err != nil {
		t.Fatalf("SeedFromFile() error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	col, _ := app.FindCollectionByNameOrId("vendors")
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query vendors: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 vendor records, got %d", len(records))
	}
}

func TestSeedFromFile_Missing(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	_, err := collections.SeedFromFile(app, filepath.Join(t.TempDir(), "nope.csv"))
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestSeedFromFile_InvalidRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	path := writeSeedFile(t, "name,city,event_types,rating,min_budget,max_budget,contact\n"+
		"Broken,Mumbai,Wedding,9.9,50000,200000,9876543210\n")

	if _, err := collections.SeedFromFile(app, path); err == nil {
		t.Fatal("expected error for dataset with invalid rows")
	}

	// Nothing should have been inserted.
	col, _ := app.FindCollectionByNameOrId("vendors")
	records, _ := app.FindAllRecords(col)
	if len(records) != 0 {
		t.Errorf("expected no vendor records after failed seed, got %d", len(records))
	}
}

func TestSeed_MissingFileIsRecoverable(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// The test working directory has no vendor_data.csv; Seed must treat
	// that as a notice, not a failure.
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() with missing dataset should not fail, got: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("vendors")
	records, _ := app.FindAllRecords(col)
	if len(records) != 0 {
		t.Errorf("expected empty vendors collection, got %d records", len(records))
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestVendor(t, app, "Existing Vendor")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("vendors")
	records, _ := app.FindAllRecords(col)
	if len(records) != 1 {
		t.Errorf("Seed() should not touch a populated collection, got %d records", len(records))
	}
}
