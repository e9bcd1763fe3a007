package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the meals, service_categories,
// services and preventives collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "meals", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "day_type",
			Required:  true,
			Values:    []string{"first_day", "default_day", "last_day"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "meal_type",
			Required:  true,
			Values:    []string{"lunch", "dinner"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "cost", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	categories := ensureCollection(app, "service_categories", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "services", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:          "category",
			Required:      true,
			CollectionId:  categories.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "cost_per_person", Required: false})
		c.Fields.Add(&core.NumberField{Name: "group_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "van_cost", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_required_van"})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "preventives", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.DateField{Name: "check_in", Required: true})
		c.Fields.Add(&core.DateField{Name: "check_out", Required: true})
		c.Fields.Add(&core.NumberField{Name: "number_of_guests", Required: true})
		c.Fields.Add(&core.NumberField{Name: "double_rooms", Required: false})
		c.Fields.Add(&core.NumberField{Name: "single_rooms", Required: false})
		c.Fields.Add(&core.NumberField{Name: "free_quote", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "number_of_vans", Required: false})
		c.Fields.Add(&core.TextField{Name: "meals", Required: false})
		c.Fields.Add(&core.TextField{Name: "services", Required: false})

		// Rate snapshot taken at creation time; see MigrateRateSnapshots.
		c.Fields.Add(&core.NumberField{Name: "tax", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_per_night", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_per_double_room", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_per_single_room", Required: false})

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
