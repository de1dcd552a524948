package collections_test

import (
	"testing"

	"eventplanner/collections"
	"eventplanner/testhelpers"
)

func TestSetup_VendorsCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("vendors collection not found after Setup(): %v", err)
	}

	for _, field := range []string{"name", "city", "event_types", "rating", "min_budget", "max_budget", "contact"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("vendors collection missing field %q", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId("vendors")
	firstID := col.Id

	collections.Setup(app)

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("vendors collection missing after second Setup(): %v", err)
	}
	if col.Id != firstID {
		t.Errorf("collection was recreated: id %q != %q", col.Id, firstID)
	}
}
