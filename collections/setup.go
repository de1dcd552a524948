// Package collections creates the PocketBase collections used by the
// event planner and seeds the vendor dataset.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the vendors collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "city", Required: true})
		// Comma-separated event type list, as in the dataset column.
		c.Fields.Add(&core.TextField{Name: "event_types", Required: true})
		c.Fields.Add(&core.NumberField{Name: "rating", Required: true})
		c.Fields.Add(&core.NumberField{Name: "min_budget", Required: true})
		c.Fields.Add(&core.NumberField{Name: "max_budget", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
