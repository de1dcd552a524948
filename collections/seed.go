package collections

import (
	"fmt"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"

	"eventplanner/services"
)

// DataFile is the vendor dataset loaded on first start, looked up relative
// to the working directory.
const DataFile = "vendor_data.csv"

// Seed loads the vendor dataset into the vendors collection on first start.
// A missing dataset file is a recoverable condition: the planner starts with
// an empty vendor list and a dataset can be uploaded from the Vendors page.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return fmt.Errorf("vendors collection not found: %w", err)
	}

	existing, err := app.CountRecords(col)
	if err != nil {
		return fmt.Errorf("count vendors: %w", err)
	}
	if existing > 0 {
		log.Printf("Vendors collection already has %d records, skipping seed.", existing)
		return nil
	}

	inserted, err := SeedFromFile(app, DataFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Seed file %q not found; upload a vendor dataset from the Vendors page.", DataFile)
			return nil
		}
		return err
	}

	log.Printf("Seeded %d vendors from %s", inserted, DataFile)
	return nil
}

// SeedFromFile parses and inserts vendors from a dataset file. Rows that
// fail validation abort the seed so a broken dataset is noticed immediately
// rather than producing a silently partial vendor list.
func SeedFromFile(app *pocketbase.PocketBase, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	result, err := services.ParseVendorFile(f, path)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	if result.ErrorRows > 0 {
		return 0, fmt.Errorf("%s has %d invalid rows (first: row %d, %s: %s)",
			path, result.ErrorRows,
			result.Errors[0].Row, result.Errors[0].Field, result.Errors[0].Message)
	}

	commit, err := services.CommitVendorImport(app, result.ParsedRows)
	if err != nil {
		return 0, fmt.Errorf("seed vendors: %w", err)
	}
	return commit.Inserted, nil
}
