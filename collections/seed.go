package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type mealDef struct {
	name        string
	dayType     string
	mealType    string
	cost        float64
	description string
}

type serviceDef struct {
	name          string
	costPerPerson float64
	groupCost     float64
	vanCost       float64
	isRequiredVan bool
	description   string
}

type categoryDef struct {
	name     string
	services []serviceDef
}

var seedMeals = []mealDef{
	{"Welcome buffet", "first_day", "lunch", 18, "Cold cuts, cheeses and bruschetta"},
	{"Tagliatelle al ragù", "first_day", "dinner", 28, ""},
	{"Garden lunch", "default_day", "lunch", 20, "Seasonal vegetables from the estate"},
	{"Pizza night", "default_day", "dinner", 22, "Wood oven pizza with local toppings"},
	{"Arrosto misto", "default_day", "dinner", 30, ""},
	{"Packed lunch", "last_day", "lunch", 12, "For the trip home"},
	{"Farewell dinner", "last_day", "dinner", 35, "Five course tasting menu"},
}

var seedCategories = []categoryDef{
	{
		name: "Experiences",
		services: []serviceDef{
			{"Vineyard tour", 25, 0, 80, true, "Guided visit with transport"},
			{"Cooking class", 45, 120, 0, false, "Hands-on pasta workshop"},
			{"Olive oil tasting", 15, 60, 0, false, ""},
		},
	},
	{
		name: "Transfers",
		services: []serviceDef{
			{"Airport transfer", 0, 0, 150, true, "Van pickup from FCO"},
		},
	},
	{
		name: "Wellness",
		services: []serviceDef{
			{"Poolside massage", 70, 0, 0, false, ""},
		},
	},
}

// Seed populates the catalog collections with a starter data set. It is a
// no-op when the meals collection already has records.
func Seed(app *pocketbase.PocketBase) error {
	mealsCol, err := app.FindCollectionByNameOrId("meals")
	if err != nil {
		return fmt.Errorf("find meals collection: %w", err)
	}

	existing, err := app.FindAllRecords(mealsCol)
	if err != nil {
		return fmt.Errorf("check existing meals: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, def := range seedMeals {
		record := core.NewRecord(mealsCol)
		record.Set("name", def.name)
		record.Set("day_type", def.dayType)
		record.Set("meal_type", def.mealType)
		record.Set("cost", def.cost)
		record.Set("description", def.description)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed meal %q: %w", def.name, err)
		}
	}

	categoriesCol, err := app.FindCollectionByNameOrId("service_categories")
	if err != nil {
		return fmt.Errorf("find service_categories collection: %w", err)
	}
	servicesCol, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		return fmt.Errorf("find services collection: %w", err)
	}

	for _, catDef := range seedCategories {
		category := core.NewRecord(categoriesCol)
		category.Set("name", catDef.name)
		if err := app.Save(category); err != nil {
			return fmt.Errorf("seed category %q: %w", catDef.name, err)
		}

		for _, svcDef := range catDef.services {
			record := core.NewRecord(servicesCol)
			record.Set("name", svcDef.name)
			record.Set("category", category.Id)
			record.Set("cost_per_person", svcDef.costPerPerson)
			record.Set("group_cost", svcDef.groupCost)
			record.Set("van_cost", svcDef.vanCost)
			record.Set("is_required_van", svcDef.isRequiredVan)
			record.Set("description", svcDef.description)
			if err := app.Save(record); err != nil {
				return fmt.Errorf("seed service %q: %w", svcDef.name, err)
			}
		}
	}

	return nil
}
